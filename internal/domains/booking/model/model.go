package model

import (
	"time"

	"salon/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                          = "id"
	FieldEmail                       = "email"
	FieldPaymentStatus               = "payment_status"
	FieldPaymentProvider             = "payment_provider"
	FieldPaymentReference            = "payment_reference"
	FieldMonnifyTransactionReference = "monnify_transaction_reference"
	FieldPaidAmount                  = "paid_amount"
	FieldAmountRemaining             = "amount_remaining"
	FieldBankTransferReference       = "bank_transfer_reference"
	FieldStyleImage                  = "style_image"
	FieldImageApproved               = "image_approved"
	FieldImageApprovedAt             = "image_approved_at"
	FieldPaymentReceiptFile          = "payment_receipt_file"
	FieldPaymentReceiptUploadedAt    = "payment_receipt_uploaded_at"
	FieldPaymentReceiptStatus        = "payment_receipt_status"
	FieldPaymentInitiatedAt          = "payment_initiated_at"
	FieldPaymentVerifiedAt           = "payment_verified_at"
	FieldPaymentWebhookProcessedAt   = "payment_webhook_processed_at"
	FieldStatus                      = "status"
	FieldUpdatedAt                   = "updated_at"
	FieldCreatedAt                   = "created_at"
)

const (
	PlanFull      = "full"
	PlanDeposit50 = "deposit_50"
)

const (
	PaymentStatusPending          = "pending"
	PaymentStatusInitiated        = "initiated"
	PaymentStatusPaid             = "paid"
	PaymentStatusFailed           = "failed"
	PaymentStatusReceiptSubmitted = "receipt_submitted"
)

const (
	ProviderNone     = ""
	ProviderPaystack = "paystack"
	ProviderMonnify  = "monnify"
)

const (
	ServiceModeHome    = "home"
	ServiceModeInSalon = "in_salon"
)

const (
	ReceiptStatusNone      = ""
	ReceiptStatusSubmitted = "submitted"
)

const DefaultRefreshment = "No"

// Booking is the central aggregate. Amounts are whole naira. ServiceName and
// Price are snapshots of the catalog entry at creation time.
type Booking struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`

	ServiceID   int64  `db:"service_id"`
	ServiceName string `db:"service_name"`
	Price       int64  `db:"price"`
	Date        string `db:"date"`
	Time        string `db:"time"`
	Language    string `db:"language"`

	PaymentMethod               string     `db:"payment_method"`
	PaymentPlan                 string     `db:"payment_plan"`
	AmountDueNow                int64      `db:"amount_due_now"`
	AmountRemaining             int64      `db:"amount_remaining"`
	PaymentStatus               string     `db:"payment_status"`
	PaymentProvider             string     `db:"payment_provider"`
	PaymentReference            string     `db:"payment_reference"`
	MonnifyTransactionReference string     `db:"monnify_transaction_reference"`
	PaidAmount                  int64      `db:"paid_amount"`
	BankTransferReference       string     `db:"bank_transfer_reference"`
	PaymentInitiatedAt          *time.Time `db:"payment_initiated_at"`
	PaymentVerifiedAt           *time.Time `db:"payment_verified_at"`
	PaymentWebhookProcessedAt   *time.Time `db:"payment_webhook_processed_at"`

	ServiceMode        string `db:"service_mode"`
	HomeServiceAddress string `db:"home_service_address"`
	Refreshment        string `db:"refreshment"`
	SpecialRequests    string `db:"special_requests"`

	StyleImage      string     `db:"style_image"`
	ImageApproved   bool       `db:"image_approved"`
	ImageApprovedAt *time.Time `db:"image_approved_at"`

	PaymentReceiptFile       string     `db:"payment_receipt_file"`
	PaymentReceiptUploadedAt *time.Time `db:"payment_receipt_uploaded_at"`
	PaymentReceiptStatus     string     `db:"payment_receipt_status"`

	Status string `db:"status"`
	model.Metadata
}

// PaymentMethodKind resolves the free-text payment method into its closed form.
func (b *Booking) PaymentMethodKind() PaymentMethod {
	return ParsePaymentMethod(b.PaymentMethod)
}

// IsPaid reports whether a provider has confirmed payment.
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// LockKey names the lock that serializes writes to one booking.
func LockKey(id string) string {
	return EntityName + ":" + id
}
