package models

// Group represents a named set of users who split expenses together.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates").
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupMember links a user to a group. A user may belong to many groups
// and a group may have many members; each (group, user) pair appears at
// most once.
type GroupMember struct {
	// ID is the unique identifier for the membership (UUID format).
	ID string

	// GroupID references the group the user belongs to.
	GroupID string

	// UserID references the member.
	UserID string
}
