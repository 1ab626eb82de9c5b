package models

import "github.com/shopspring/decimal"

// Expense represents a single amount paid by one group member on behalf
// of the group. The balance calculator settles expenses equally across
// the group's membership.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// UserID references the payer.
	UserID string

	// GroupID references the group the expense belongs to.
	GroupID string

	// Amount is the amount paid. Stored as an exact decimal; negative
	// amounts are allowed and act as refunds against the pool.
	Amount decimal.Decimal

	// Description is optional free text.
	Description string

	// Date is the Unix timestamp of the expense, defaulting to the
	// creation time when not supplied.
	Date int64
}
