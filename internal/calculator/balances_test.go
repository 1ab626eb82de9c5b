package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name         string
		memberIDs    []string
		expenses     []Expense
		wantErr      error
		validateFunc func(t *testing.T, balances map[string]decimal.Decimal)
	}{
		{
			name:      "no members fails without dividing",
			memberIDs: []string{},
			expenses:  []Expense{{PayerID: "alice", Amount: dec("10")}},
			wantErr:   ErrNoMembers,
		},
		{
			name:      "payer outside the group fails",
			memberIDs: []string{"alice", "bob"},
			expenses:  []Expense{{PayerID: "mallory", Amount: dec("10")}},
			wantErr:   ErrUnknownPayer,
		},
		{
			name:      "no expenses - every balance is zero",
			memberIDs: []string{"alice", "bob", "carol"},
			expenses:  nil,
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				for id, balance := range balances {
					if !balance.IsZero() {
						t.Errorf("%s balance = %s, want 0", id, balance)
					}
				}
			},
		},
		{
			name:      "single payer covers the whole total",
			memberIDs: []string{"alice", "bob", "carol"},
			expenses:  []Expense{{PayerID: "alice", Amount: dec("90")}},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				// share = 30; alice paid 90 so she is owed 60 back
				if got := balances["alice"]; !got.Equal(dec("-60")) {
					t.Errorf("alice balance = %s, want -60", got)
				}
				if got := balances["bob"]; !got.Equal(dec("30")) {
					t.Errorf("bob balance = %s, want 30", got)
				}
				if got := balances["carol"]; !got.Equal(dec("30")) {
					t.Errorf("carol balance = %s, want 30", got)
				}
			},
		},
		{
			name:      "member who paid exactly their share owes nothing",
			memberIDs: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: dec("50")},
				{PayerID: "bob", Amount: dec("50")},
			},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				for id, balance := range balances {
					if !balance.IsZero() {
						t.Errorf("%s balance = %s, want 0", id, balance)
					}
				}
			},
		},
		{
			name:      "member who paid nothing owes the full share",
			memberIDs: []string{"alice", "bob"},
			expenses:  []Expense{{PayerID: "alice", Amount: dec("40")}},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				if got := balances["bob"]; !got.Equal(dec("20")) {
					t.Errorf("bob balance = %s, want 20", got)
				}
			},
		},
		{
			name:      "negative amount acts as a refund",
			memberIDs: []string{"alice", "bob"},
			expenses: []Expense{
				{PayerID: "alice", Amount: dec("30")},
				{PayerID: "alice", Amount: dec("-10")},
			},
			validateFunc: func(t *testing.T, balances map[string]decimal.Decimal) {
				// total = 20, share = 10, alice = 10 - 20 = -10
				if got := balances["alice"]; !got.Equal(dec("-10")) {
					t.Errorf("alice balance = %s, want -10", got)
				}
				if got := balances["bob"]; !got.Equal(dec("10")) {
					t.Errorf("bob balance = %s, want 10", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := SplitEqually(tt.memberIDs, tt.expenses)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitEqually error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitEqually failed: %v", err)
			}
			if len(balances) != len(tt.memberIDs) {
				t.Fatalf("balances count = %d, want %d", len(balances), len(tt.memberIDs))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

// The split is zero-sum: balances always cancel out, even when the
// share has a non-terminating decimal expansion.
func TestSplitEquallyZeroSum(t *testing.T) {
	tolerance := decimal.New(1, -12)

	cases := []struct {
		name      string
		memberIDs []string
		expenses  []Expense
	}{
		{
			name:      "even division",
			memberIDs: []string{"a", "b", "c"},
			expenses:  []Expense{{PayerID: "a", Amount: dec("90")}},
		},
		{
			name:      "repeating share",
			memberIDs: []string{"a", "b", "c"},
			expenses: []Expense{
				{PayerID: "a", Amount: dec("100")},
				{PayerID: "b", Amount: dec("0.01")},
			},
		},
		{
			name:      "seven members mixed amounts",
			memberIDs: []string{"a", "b", "c", "d", "e", "f", "g"},
			expenses: []Expense{
				{PayerID: "a", Amount: dec("12.34")},
				{PayerID: "c", Amount: dec("56.78")},
				{PayerID: "g", Amount: dec("-9.99")},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			balances, err := SplitEqually(tc.memberIDs, tc.expenses)
			if err != nil {
				t.Fatalf("SplitEqually failed: %v", err)
			}

			sum := decimal.Zero
			for _, balance := range balances {
				sum = sum.Add(balance)
			}
			if sum.Abs().GreaterThan(tolerance) {
				t.Errorf("balances sum = %s, want 0 within %s", sum, tolerance)
			}
		})
	}
}
