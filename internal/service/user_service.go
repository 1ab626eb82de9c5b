package service

import (
	"context"
	"log/slog"

	"github.com/spliteasy/spliteasy/internal/models"
	"github.com/spliteasy/spliteasy/internal/storage"
)

// UserService handles user profile reads and updates.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		slog.Warn("GetUser failed", "user_id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial profile update. Nil fields keep their
// current value.
func (s *UserService) UpdateUser(ctx context.Context, id string, name, email *string) error {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		slog.Warn("UpdateUser failed", "user_id", id, "error", err)
		return err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		slog.Error("UpdateUser failed", "user_id", id, "error", err)
		return err
	}

	slog.Info("User updated", "user_id", id)
	return nil
}
