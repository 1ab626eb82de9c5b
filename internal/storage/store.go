// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/spliteasy/spliteasy/internal/models"
)

// GroupSnapshot holds a group's membership and expenses read in a single
// transaction, so the balance calculation sees a consistent view.
type GroupSnapshot struct {
	Group    *models.Group
	Members  []models.GroupMember
	Expenses []models.Expense
}

// Store defines the persistence operations for SplitEasy entities.
// The abstraction allows swapping storage backends (SQLite, PostgreSQL,
// ...) without changing the service layer. Entities that do not exist
// are reported with apperr.ErrNotFound.
type Store interface {
	// CreateUser persists a new user. The user's ID and timestamps are
	// populated by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUser updates a user's name and email.
	UpdateUser(ctx context.Context, user *models.User) error

	// CreateGroup persists a new group, populating its ID.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// AddGroupMember adds a user to a group, populating the membership ID.
	AddGroupMember(ctx context.Context, member *models.GroupMember) error

	// CreateExpense persists a new expense, populating its ID and date.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// ListGroupExpenses retrieves all expenses for a group.
	ListGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// UpdateExpense updates an expense's amount and description.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, id string) error

	// GetGroupSnapshot reads a group with its members and expenses in
	// one transaction.
	GetGroupSnapshot(ctx context.Context, groupID string) (*GroupSnapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
