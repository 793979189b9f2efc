package models

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique).
	// Used for login and notifications.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// AvatarURL is an optional profile picture URL.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// FirebaseUID links the account to its push-notification identity.
	FirebaseUID string `json:"firebaseUid"`

	// IsActive is false for deactivated accounts. Accounts are never
	// hard-deleted.
	IsActive bool `json:"isActive"`

	// PreferredCurrency is the ISO 4217 code used for display (e.g. "INR").
	PreferredCurrency string `json:"preferredCurrency"`

	// CreatedAt is when the account was created (RFC 3339).
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is when the account was last modified (RFC 3339).
	UpdatedAt string `json:"updatedAt"`
}

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	FirebaseUID       string `json:"firebaseUid"`
	PreferredCurrency string `json:"preferredCurrency,omitempty"`
}

// UpdateUserRequest is the payload for PUT /users/:id. Empty fields are
// left unchanged by the backend.
type UpdateUserRequest struct {
	Name              string `json:"name,omitempty"`
	Phone             string `json:"phone,omitempty"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	PreferredCurrency string `json:"preferredCurrency,omitempty"`
}
