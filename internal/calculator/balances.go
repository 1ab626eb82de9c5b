// Package calculator implements the equal-split balance engine.
//
// The engine is pure: it takes a group's membership and expenses and
// returns each member's net balance, with no storage access or side
// effects.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoMembers is returned when a balance is requested for a group
	// with no members; the split is undefined.
	ErrNoMembers = errors.New("group has no members")

	// ErrUnknownPayer is returned when an expense's payer is not in the
	// member list.
	ErrUnknownPayer = errors.New("expense payer is not a group member")
)

// Expense carries the minimal expense data needed for balance
// calculation.
type Expense struct {
	PayerID string
	Amount  decimal.Decimal
}

// SplitEqually computes each member's net balance after settling the
// group's expenses with an equal split.
//
// Every member's share is total/len(memberIDs); each member starts owing
// their share, and every expense is subtracted from its payer's balance.
// A positive balance means the member owes money into the pool; a
// negative balance means the member is owed money back. With no expenses
// every balance is zero.
func SplitEqually(memberIDs []string, expenses []Expense) (map[string]decimal.Decimal, error) {
	if len(memberIDs) == 0 {
		return nil, ErrNoMembers
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	share := total.Div(decimal.NewFromInt(int64(len(memberIDs))))

	balances := make(map[string]decimal.Decimal, len(memberIDs))
	for _, id := range memberIDs {
		balances[id] = share
	}

	for _, expense := range expenses {
		balance, ok := balances[expense.PayerID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPayer, expense.PayerID)
		}
		balances[expense.PayerID] = balance.Sub(expense.Amount)
	}

	return balances, nil
}
