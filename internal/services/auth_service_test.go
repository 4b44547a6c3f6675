package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"joblane-backend/internal/dto"
	"joblane-backend/internal/models"
	"joblane-backend/internal/token"
)

type fakeUserStore struct {
	users map[string]*models.User

	findErr   error
	insertErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if _, ok := f.users[user.Email]; ok {
		return "", ErrUserExists
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user.ID.Hex(), nil
}

func newAuthService(store UserStore) *AuthService {
	return NewAuthService(store, token.NewManager("test-secret"))
}

func TestRegister_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	role, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw12345",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	saved := store.users["a@x.com"]
	require.NotNil(t, saved)
	assert.NotEqual(t, "pw12345", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("pw12345")))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"no username", dto.RegisterRequest{Email: "a@x.com", Password: "pw"}},
		{"no email", dto.RegisterRequest{Username: "alice", Password: "pw"}},
		{"no password", dto.RegisterRequest{Username: "alice", Email: "a@x.com"}},
		{"empty", dto.RegisterRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw12345",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "other", Email: "a@x.com", Password: "different",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

// Registration grants the admin role to anyone who literally requests it.
// This pins the site's current behavior; changing the policy must break this
// test on purpose.
func TestRegister_RoleResolution(t *testing.T) {
	tests := []struct {
		requested string
		want      models.Role
	}{
		{"admin", models.RoleAdmin},
		{"", models.RoleUser},
		{"user", models.RoleUser},
		{"Admin", models.RoleUser},
		{"superadmin", models.RoleUser},
	}
	for _, tt := range tests {
		t.Run("role "+tt.requested, func(t *testing.T) {
			svc := newAuthService(newFakeUserStore())
			role, err := svc.Register(context.Background(), &dto.RegisterRequest{
				Username: "alice", Email: "a@x.com", Password: "pw12345", Role: tt.requested,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRegister_StoreError(t *testing.T) {
	store := newFakeUserStore()
	store.findErr = errors.New("connection reset")
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw12345",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingFields)
	assert.NotErrorIs(t, err, ErrUserExists)
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	tokens := token.NewManager("test-secret")
	svc := NewAuthService(store, tokens)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw12345",
	})
	require.NoError(t, err)

	tokenString, user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "a@x.com", Password: "pw12345",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)

	claims, err := tokens.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw12345",
	})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "a@x.com", Password: "nope",
	})
	_, _, unknownEmail := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ghost@x.com", Password: "pw12345",
	})

	// Both failures must be indistinguishable.
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{Password: "pw12345"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
