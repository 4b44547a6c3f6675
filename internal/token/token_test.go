package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblane-backend/internal/models"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret")

	tokenString, err := m.Generate("64f1c0ffee0000000000abcd", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	wantExpiry := time.Now().Add(Validity)
	assert.WithinDuration(t, wantExpiry, claims.ExpiresAt.Time, time.Minute)
}

func TestParse_WrongSecret(t *testing.T) {
	issued := NewManager("secret-a")
	verifier := NewManager("secret-b")

	tokenString, err := issued.Generate("user-1", models.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Tampered(t *testing.T) {
	m := NewManager("test-secret")

	tokenString, err := m.Generate("user-1", models.RoleUser)
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = m.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	m := NewManager("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
		Role:   models.RoleUser,
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_UnsignedTokenRejected(t *testing.T) {
	m := NewManager("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
		Role:   models.RoleAdmin,
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
