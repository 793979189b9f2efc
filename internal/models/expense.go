package models

// SplitMethod describes how an expense is divided among participants.
type SplitMethod string

const (
	SplitEqual      SplitMethod = "EQUAL"
	SplitExact      SplitMethod = "EXACT"
	SplitPercentage SplitMethod = "PERCENTAGE"
	SplitShares     SplitMethod = "SHARES"
)

// ExpenseStatus marks an expense as live or soft-deleted.
type ExpenseStatus string

const (
	ExpenseActive  ExpenseStatus = "ACTIVE"
	ExpenseDeleted ExpenseStatus = "DELETED"
)

// Expense represents a shared expense within a group.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"groupId"`

	// GroupName is the denormalized group display name.
	GroupName string `json:"groupName,omitempty"`

	// Description is what the expense was for (e.g. "Dinner").
	Description string `json:"description"`

	// Amount is the full expense amount.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 code for Amount.
	Currency string `json:"currency"`

	// Category is the expense category key (e.g. "food").
	Category string `json:"category"`

	// CategoryIcon is the display icon for Category.
	CategoryIcon string `json:"categoryIcon,omitempty"`

	// PaidBy is the user ID of whoever paid.
	PaidBy string `json:"paidBy"`

	// PaidByName is the denormalized payer display name.
	PaidByName string `json:"paidByName,omitempty"`

	// SplitMethod is how the amount is divided.
	SplitMethod SplitMethod `json:"splitMethod"`

	// SplitAmong lists the user IDs sharing the expense.
	SplitAmong []string `json:"splitAmong"`

	// SplitDetails carries per-user amounts for non-equal splits.
	SplitDetails []SplitDetail `json:"splitDetails,omitempty"`

	// ExpenseDate is when the expense occurred (RFC 3339).
	ExpenseDate string `json:"expenseDate"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// ReceiptURL is an optional receipt image URL.
	ReceiptURL string `json:"receiptUrl,omitempty"`

	// Status is ACTIVE or DELETED. Deleted expenses are kept for history;
	// no route currently filters on this field.
	Status ExpenseStatus `json:"status"`

	// CreatedBy is the user ID that recorded the expense.
	CreatedBy string `json:"createdBy"`

	// CreatedAt is when the expense was recorded (RFC 3339).
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is when the expense was last modified (RFC 3339).
	UpdatedAt string `json:"updatedAt"`
}

// SplitDetail is one participant's share of an expense.
type SplitDetail struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name,omitempty"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage,omitempty"`
}

// CreateExpenseRequest is the payload for POST /expenses.
type CreateExpenseRequest struct {
	GroupID      string        `json:"groupId"`
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	Category     string        `json:"category"`
	PaidBy       string        `json:"paidBy"`
	SplitMethod  SplitMethod   `json:"splitMethod"`
	SplitAmong   []string      `json:"splitAmong"`
	SplitDetails []SplitDetail `json:"splitDetails,omitempty"`
	ExpenseDate  string        `json:"expenseDate"`
	Notes        string        `json:"notes,omitempty"`
}
