package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/spliteasy/spliteasy/internal/models"
	"github.com/spliteasy/spliteasy/internal/storage"
)

// ExpenseService handles expense CRUD.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense records a new expense paid by a user in a group.
func (s *ExpenseService) AddExpense(ctx context.Context, expense *models.Expense) error {
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Warn("AddExpense failed",
			"group_id", expense.GroupID,
			"user_id", expense.UserID,
			"error", err,
		)
		return err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount.String(),
	)
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		slog.Warn("GetExpense failed", "expense_id", id, "error", err)
		return nil, err
	}
	return expense, nil
}

// ListGroupExpenses retrieves all expenses for a group.
func (s *ExpenseService) ListGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	expenses, err := s.store.ListGroupExpenses(ctx, groupID)
	if err != nil {
		slog.Error("ListGroupExpenses failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return expenses, nil
}

// UpdateExpense applies a partial update to an expense's amount and
// description. Nil fields keep their current value.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, amount *decimal.Decimal, description *string) error {
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		slog.Warn("UpdateExpense failed", "expense_id", id, "error", err)
		return err
	}

	if amount != nil {
		expense.Amount = *amount
	}
	if description != nil {
		expense.Description = *description
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", id, "error", err)
		return err
	}

	slog.Info("Expense updated", "expense_id", id)
	return nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		slog.Warn("DeleteExpense failed", "expense_id", id, "error", err)
		return err
	}

	slog.Info("Expense deleted", "expense_id", id)
	return nil
}
