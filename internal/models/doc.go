// Package models defines the core domain models for SplitEasy.
//
// The model set mirrors the persisted schema: User, Group, GroupMember,
// and Expense. Relationships are expressed as ID strings rather than
// pointers to avoid circular references and hidden lazy loading; callers
// that need a related entity fetch it explicitly through the store.
//
// IDs are UUID strings assigned by the store on insert. Timestamps are
// Unix seconds. Monetary amounts use decimal.Decimal so that values
// round-trip exactly through storage and JSON.
package models
