package models

// Group represents a set of users who split expenses together.
type Group struct {
	// ID is the unique identifier for the group.
	ID string `json:"id"`

	// Name is the display name of the group (e.g. "Roommates").
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	// AvatarURL is an optional group picture URL.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// CreatedBy is the user ID of the group creator.
	CreatedBy string `json:"createdBy"`

	// Members lists the member user IDs.
	Members []string `json:"members"`

	// MemberDetails optionally expands Members with display info.
	MemberDetails []GroupMember `json:"memberDetails,omitempty"`

	// TotalExpenses is the running sum of expense amounts in the group.
	TotalExpenses float64 `json:"totalExpenses"`

	// Currency is the ISO 4217 code for the group's expenses.
	Currency string `json:"currency"`

	// IsActive is false for archived groups.
	IsActive bool `json:"isActive"`

	// CreatedAt is when the group was created (RFC 3339).
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is when the group was last modified (RFC 3339).
	UpdatedAt string `json:"updatedAt"`
}

// GroupMember is the display expansion of a group member reference.
type GroupMember struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// CreateGroupRequest is the payload for POST /groups.
type CreateGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Members     []string `json:"members"`
}
