package models

// FriendStatus is the lifecycle state of a friend connection.
type FriendStatus string

const (
	FriendPending  FriendStatus = "PENDING"
	FriendAccepted FriendStatus = "ACCEPTED"
	FriendRejected FriendStatus = "REJECTED"
)

// BalanceStatus describes the direction of an outstanding balance.
type BalanceStatus string

const (
	BalanceOwe     BalanceStatus = "OWE"
	BalanceOwed    BalanceStatus = "OWED"
	BalanceSettled BalanceStatus = "SETTLED"
)

// Friend represents a friend connection and the running balance with them.
type Friend struct {
	// ID is the unique identifier for the connection.
	ID string `json:"id"`

	// UserID is the owner of this connection record.
	UserID string `json:"userId"`

	// FriendID is the other user.
	FriendID string `json:"friendId"`

	// FriendName is the denormalized friend display name.
	FriendName string `json:"friendName"`

	// FriendEmail is the denormalized friend email.
	FriendEmail string `json:"friendEmail"`

	// FriendAvatar is an optional friend picture URL.
	FriendAvatar string `json:"friendAvatar,omitempty"`

	// Status is the connection lifecycle state.
	Status FriendStatus `json:"status"`

	// Balance is the net amount between the two users. Positive means the
	// friend owes the owner; direction is also carried in BalanceStatus.
	Balance float64 `json:"balance"`

	// BalanceStatus is OWE, OWED, or SETTLED from the owner's perspective.
	BalanceStatus BalanceStatus `json:"balanceStatus"`

	// SharedGroups lists group IDs both users belong to.
	SharedGroups []string `json:"sharedGroups,omitempty"`

	// CreatedAt is when the connection was requested (RFC 3339).
	CreatedAt string `json:"createdAt"`

	// AcceptedAt is set when Status becomes ACCEPTED.
	AcceptedAt string `json:"acceptedAt,omitempty"`

	// RejectedAt is set when Status becomes REJECTED.
	RejectedAt string `json:"rejectedAt,omitempty"`
}
