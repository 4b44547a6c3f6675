package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/crypto/bcrypt"

	"joblane-backend/internal/dto"
	"joblane-backend/internal/models"
	"joblane-backend/internal/token"
)

// UserStore is the credential store. FindByEmail returns (nil, nil) when no
// record matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens *token.Manager
}

func NewAuthService(users UserStore, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user and returns the effective role. The "admin"
// role is granted to anyone who literally asks for it at registration; any
// other requested value falls back to "user". That matches the site's
// current behavior and is pinned by tests.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (models.Role, error) {
	var fields *multierror.Error
	if req.Username == "" {
		fields = multierror.Append(fields, errors.New("username is required"))
	}
	if req.Email == "" {
		fields = multierror.Append(fields, errors.New("email is required"))
	}
	if req.Password == "" {
		fields = multierror.Append(fields, errors.New("password is required"))
	}
	if err := fields.ErrorOrNil(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if _, err := s.users.Insert(ctx, user); err != nil {
		// The unique index can still reject a concurrent duplicate that
		// slipped past the existence check.
		if errors.Is(err, ErrUserExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return role, nil
}

// Login verifies credentials and issues a signed token embedding the user id
// and role.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *dto.UserSummary, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	summary := &dto.UserSummary{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	return tokenString, summary, nil
}
