package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/models"
	"github.com/spliteasy/spliteasy/internal/storage"
)

// CreateGroup inserts a new group, assigning its ID and creation time.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, group_name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_name, created_at FROM groups WHERE id = ?", id,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// ListGroups retrieves all groups ordered by creation time.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_name, created_at FROM groups ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// AddGroupMember links a user to a group, assigning the membership ID.
// The group and user must both exist; joining the same group twice is a
// validation failure.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, member *models.GroupMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", member.GroupID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("group %w", apperr.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check group: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (id, group_id, user_id) VALUES (?, ?, ?)",
		member.ID, member.GroupID, member.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user is already a member of the group", apperr.ErrValidation)
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroupSnapshot reads a group together with its members and expenses
// inside one transaction, so balance calculations see a consistent view.
func (s *SQLiteStore) GetGroupSnapshot(ctx context.Context, groupID string) (*storage.GroupSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	group := &models.Group{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, group_name, created_at FROM groups WHERE id = ?", groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT id, group_id, user_id FROM group_members WHERE group_id = ? ORDER BY user_id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	expenses, err := listGroupExpenses(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &storage.GroupSnapshot{
		Group:    group,
		Members:  members,
		Expenses: expenses,
	}, nil
}
