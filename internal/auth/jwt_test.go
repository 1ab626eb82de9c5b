package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/models"
)

func TestJWTManager(t *testing.T) {
	user := &models.User{
		ID:    "user-1",
		Email: "alice@example.com",
	}

	t.Run("valid token round-trips claims", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
		}
		if claims.Email != user.Email {
			t.Errorf("Email = %s, want %s", claims.Email, user.Email)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Hour)

		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("Validate error = %v, want %v", err, apperr.ErrUnauthorized)
		}
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		_, err := manager.Validate("not-a-token")
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("Validate error = %v, want %v", err, apperr.ErrUnauthorized)
		}
	})

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		other := NewJWTManager("other-secret", time.Hour)

		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("Validate error = %v, want %v", err, apperr.ErrUnauthorized)
		}
	})
}
