package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/storage"
	"go.uber.org/zap"
)

const invalidCredentials = "Invalid username or password"

// RegisterRequest represents the registration request payload
// @Description Registration request structure
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,max=150,username" example:"karim"`      // Unique username
	Email           string `json:"email" validate:"omitempty,email,max=254" example:"karim@example.com"` // Optional email address
	Password        string `json:"password" validate:"required,min=6" example:"securepass123"`          // Password
	PasswordConfirm string `json:"password_confirm" validate:"required,min=6" example:"securepass123"`  // Must match password
	FirstName       string `json:"first_name" validate:"max=150" example:"Karim"`                       // First name
	LastName        string `json:"last_name" validate:"max=150" example:"Uddin"`                        // Last name
}

// LoginRequest represents the login request payload
// @Description Login request structure
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"karim"`
	Password string `json:"password" validate:"required" example:"securepass123"`
}

// RefreshRequest carries a refresh token.
// @Description Token refresh / logout request structure
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// LoginResult is a successful login.
type LoginResult struct {
	Tokens auth.TokenPair
	User   *models.User
}

type AuthService struct {
	users     storage.UserStore
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	validator *ValidationHelper
	logger    *zap.Logger
}

func NewAuthService(users storage.UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: NewValidationHelper(),
		logger:    logger.Named("auth"),
	}
}

// Register creates a user after checking the password confirmation and username uniqueness.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := s.validator.Check(&req); err != nil {
		return nil, err
	}
	if req.Password != req.PasswordConfirm {
		return nil, NewValidationError("Validation failed", "password", "Passwords do not match")
	}

	if _, err := s.users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, duplicateUsername()
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashed,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return nil, duplicateUsername()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

func duplicateUsername() error {
	return NewValidationError("Validation failed", "username", "A user with that username already exists.")
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.validator.Check(&req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("login failed, unknown user", zap.String("username", req.Username))
		return nil, &ValidationError{Message: invalidCredentials}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.logger.Info("login failed, wrong password", zap.Int64("user_id", user.ID))
		return nil, &ValidationError{Message: invalidCredentials}
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.logger.Info("login successful", zap.Int64("user_id", user.ID))
	return &LoginResult{Tokens: pair, User: user}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (string, error) {
	if err := s.validator.Check(&req); err != nil {
		return "", err
	}

	access, err := s.tokens.Refresh(ctx, req.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrRevokedToken) {
			return "", &AuthenticationError{Message: "Token is invalid or expired", Err: err}
		}
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return access, nil
}

// Logout revokes the given tokens until they expire. Tokens that are
// already invalid are skipped; revocation store failures are logged.
func (s *AuthService) Logout(ctx context.Context, tokens ...string) {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if err := s.tokens.Revoke(ctx, token); err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				s.logger.Debug("logout with invalid token", zap.Error(err))
				continue
			}
			s.logger.Error("failed to revoke token", zap.Error(err))
		}
	}
}

// Authenticate resolves a bearer access token to a user id.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	claims, err := s.tokens.Verify(ctx, accessToken, auth.AccessToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrRevokedToken) {
			return 0, &AuthenticationError{Message: "Given token not valid for any token type", Err: err}
		}
		return 0, fmt.Errorf("verify token: %w", err)
	}
	return claims.UserID, nil
}
