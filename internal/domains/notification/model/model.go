package model

import "time"

const (
	TableName  = "booking_notifications"
	EntityName = "booking_notification"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldCreatedAt = "created_at"
)

const (
	TypePaymentInstructions = "payment_instructions"
	TypeApproved            = "approved"
	TypeCancelled           = "cancelled"
	TypePaymentReceived     = "payment_received"
	TypeReceiptUploaded     = "receipt_uploaded"
)

// Notification is an append-only ledger row shown to the customer when they
// track a booking. Rows are removed only when their booking is deleted.
type Notification struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// Event describes something that happened to a booking. Amount and Reference
// are only meaningful for payment events; BookingStatus for payment_received.
type Event struct {
	Type          string
	BookingID     string
	Email         string
	Phone         string
	BookingStatus string
	Amount        int64
	Reference     string
	OccurredAt    time.Time
}
