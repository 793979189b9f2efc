package models

// PaymentMethod is how a settlement was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentPaytm        PaymentMethod = "PAYTM"
	PaymentPhonePe      PaymentMethod = "PHONEPE"
	PaymentGPay         PaymentMethod = "GPAY"
	PaymentOther        PaymentMethod = "OTHER"
)

// SettlementStatus is the lifecycle state of a settlement.
type SettlementStatus string

const (
	SettlementCompleted SettlementStatus = "COMPLETED"
	SettlementPending   SettlementStatus = "PENDING"
	SettlementCancelled SettlementStatus = "CANCELLED"
)

// Settlement represents a payment between group members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement.
	ID string `json:"id"`

	// GroupID is the group this settlement belongs to.
	GroupID string `json:"groupId"`

	// GroupName is the denormalized group display name.
	GroupName string `json:"groupName,omitempty"`

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string `json:"fromUserId"`

	// FromUserName is the denormalized payer display name.
	FromUserName string `json:"fromUserName,omitempty"`

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string `json:"toUserId"`

	// ToUserName is the denormalized recipient display name.
	ToUserName string `json:"toUserName,omitempty"`

	// Amount is the payment amount.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 code for Amount.
	Currency string `json:"currency"`

	// PaymentMethod is how the payment was made.
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	// PaymentReference is an optional external transaction reference.
	PaymentReference string `json:"paymentReference,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// Status is the settlement lifecycle state.
	Status SettlementStatus `json:"status"`

	// SettledAt is when the payment completed (RFC 3339).
	SettledAt string `json:"settledAt,omitempty"`

	// CreatedAt is when the settlement was recorded (RFC 3339).
	CreatedAt string `json:"createdAt"`
}

// RecordSettlementRequest is the payload for POST /settlements.
type RecordSettlementRequest struct {
	GroupID          string        `json:"groupId"`
	FromUserID       string        `json:"fromUserId"`
	ToUserID         string        `json:"toUserId"`
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference,omitempty"`
	Notes            string        `json:"notes,omitempty"`
}
