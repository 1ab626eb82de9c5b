// Package service implements the business logic behind the API,
// orchestrating the store, the balance calculator, and authentication.
package service

import (
	"context"
	"log/slog"

	"github.com/spliteasy/spliteasy/internal/auth"
	"github.com/spliteasy/spliteasy/internal/models"
)

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := s.authenticator.Register(ctx, name, email, password)
	if err != nil {
		slog.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email)
		return "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", err
	}

	slog.Info("Login successful", "user_id", user.ID)
	return token, nil
}
