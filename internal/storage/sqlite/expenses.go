package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/models"
)

// querier covers *sql.DB and *sql.Tx for shared read helpers.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// CreateExpense inserts a new expense, assigning its ID and defaulting
// the date to the creation time.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date == 0 {
		expense.Date = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, group_id, amount, description, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.UserID, expense.GroupID,
		expense.Amount.String(), expense.Description, expense.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("referenced user or group %w", apperr.ErrNotFound)
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense := &models.Expense{}
	var amount string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, group_id, amount, description, date
		 FROM expenses WHERE id = ?`, id,
	).Scan(
		&expense.ID,
		&expense.UserID,
		&expense.GroupID,
		&amount,
		&expense.Description,
		&expense.Date,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount: %w", err)
	}

	return expense, nil
}

// ListGroupExpenses retrieves all expenses for a group ordered by date.
func (s *SQLiteStore) ListGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	return listGroupExpenses(ctx, s.db, groupID)
}

func listGroupExpenses(ctx context.Context, q querier, groupID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, user_id, group_id, amount, description, date
		 FROM expenses WHERE group_id = ? ORDER BY date, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		var amount string
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.GroupID,
			&amount,
			&expense.Description,
			&expense.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense updates an expense's amount and description.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET amount = ?, description = ? WHERE id = ?",
		expense.Amount.String(), expense.Description, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %w", apperr.ErrNotFound)
	}

	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %w", apperr.ErrNotFound)
	}

	return nil
}
