package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/calculator"
	"github.com/spliteasy/spliteasy/internal/models"
	"github.com/spliteasy/spliteasy/internal/storage"
)

// GroupService handles groups, membership, and balance queries.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	group := &models.Group{Name: name}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID)
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, id)
	if err != nil {
		slog.Warn("GetGroup failed", "group_id", id, "error", err)
		return nil, err
	}
	return group, nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, err
	}
	return groups, nil
}

// AddMember joins the user with the given email to the group.
func (s *GroupService) AddMember(ctx context.Context, groupID, email string) (*models.GroupMember, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		slog.Warn("AddMember failed", "group_id", groupID, "error", err)
		return nil, err
	}

	member := &models.GroupMember{GroupID: groupID, UserID: user.ID}
	if err := s.store.AddGroupMember(ctx, member); err != nil {
		slog.Warn("AddMember failed", "group_id", groupID, "user_id", user.ID, "error", err)
		return nil, err
	}

	slog.Info("Member added", "group_id", groupID, "user_id", user.ID, "member_id", member.ID)
	return member, nil
}

// GroupBalances computes each member's net balance for the group.
// Positive means the member owes money into the pool, negative means the
// member is owed money back.
func (s *GroupService) GroupBalances(ctx context.Context, groupID string) (map[string]decimal.Decimal, error) {
	snapshot, err := s.store.GetGroupSnapshot(ctx, groupID)
	if err != nil {
		slog.Warn("GroupBalances failed", "group_id", groupID, "error", err)
		return nil, err
	}

	memberIDs := make([]string, len(snapshot.Members))
	for i, m := range snapshot.Members {
		memberIDs[i] = m.UserID
	}

	expenses := make([]calculator.Expense, len(snapshot.Expenses))
	for i, e := range snapshot.Expenses {
		expenses[i] = calculator.Expense{PayerID: e.UserID, Amount: e.Amount}
	}

	balances, err := calculator.SplitEqually(memberIDs, expenses)
	if err != nil {
		slog.Warn("GroupBalances calculation failed", "group_id", groupID, "error", err)
		switch {
		case errors.Is(err, calculator.ErrNoMembers):
			return nil, apperr.ErrInvalidGroupState
		case errors.Is(err, calculator.ErrUnknownPayer):
			return nil, fmt.Errorf("%w: %v", apperr.ErrInconsistentData, err)
		}
		return nil, err
	}

	slog.Info("GroupBalances computed",
		"group_id", groupID,
		"members_count", len(memberIDs),
		"expenses_count", len(expenses),
	)
	return balances, nil
}
