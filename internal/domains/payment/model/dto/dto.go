package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"salon/internal/domains/booking/model"
)

type PaystackStatusResponse struct {
	Configured    bool   `json:"configured"`
	CallbackURL   string `json:"callbackUrl"`
	PublicBaseURL string `json:"publicBaseUrl"`
	Message       string `json:"message"`
}

type MonnifyStatusResponse struct {
	Configured    bool   `json:"configured"`
	CallbackURL   string `json:"callbackUrl"`
	PublicBaseURL string `json:"publicBaseUrl"`
	BaseURL       string `json:"baseUrl"`
	Message       string `json:"message"`
}

type PaystackInitializeRequest struct {
	BookingID      string `json:"bookingId"`
	Email          string `json:"email"`
	PaymentChannel string `json:"paymentChannel"`
}

type PaystackInitializeResponse struct {
	Message          string `json:"message"`
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

type MonnifyInitializeRequest struct {
	BookingID      string      `json:"bookingId"`
	Email          string      `json:"email"`
	PaymentMethods MethodsList `json:"paymentMethods"`
}

type MonnifyInitializeResponse struct {
	Message              string `json:"message"`
	CheckoutURL          string `json:"checkoutUrl"`
	PaymentReference     string `json:"paymentReference"`
	TransactionReference string `json:"transactionReference"`
}

// MethodsList is a list of Monnify payment methods, upper-cased with blanks
// dropped. Anything other than a JSON array decodes as empty.
type MethodsList []string

func (l *MethodsList) UnmarshalJSON(data []byte) error {
	var raw []any
	if json.Unmarshal(data, &raw) != nil {
		*l = nil

		return nil
	}

	methods := make(MethodsList, 0, len(raw))

	for _, v := range raw {
		if v == nil {
			continue
		}

		if m := strings.ToUpper(strings.TrimSpace(fmt.Sprint(v))); m != "" {
			methods = append(methods, m)
		}
	}

	*l = methods

	return nil
}

// VerifyBooking is the booking summary returned after a verification.
type VerifyBooking struct {
	ID                   string  `json:"id"`
	Status               string  `json:"status"`
	PaymentStatus        string  `json:"paymentStatus"`
	PaymentPlan          string  `json:"paymentPlan"`
	AmountDueNow         int64   `json:"amountDueNow"`
	AmountRemaining      int64   `json:"amountRemaining"`
	PaidAmount           int64   `json:"paidAmount"`
	PaymentReference     string  `json:"paymentReference"`
	TransactionReference *string `json:"transactionReference,omitempty"`
}

func (v *VerifyBooking) FromModel(m model.Booking) {
	v.ID = m.ID
	v.Status = m.Status
	v.PaymentStatus = m.PaymentStatus
	v.PaymentPlan = m.PaymentPlan
	v.AmountDueNow = m.AmountDueNow
	v.AmountRemaining = m.AmountRemaining
	v.PaidAmount = m.PaidAmount
	v.PaymentReference = m.PaymentReference
}

type VerifyResponse struct {
	OK      bool          `json:"ok"`
	Paid    bool          `json:"paid"`
	Status  string        `json:"status,omitempty"`
	Booking VerifyBooking `json:"booking"`
}

// WebhookPayload is the part of a Monnify webhook the service reads.
type WebhookPayload struct {
	EventType string `json:"eventType"`
	EventData struct {
		PaymentReference     string `json:"paymentReference"`
		TransactionReference string `json:"transactionReference"`
	} `json:"eventData"`
}

type WebhookResponse struct {
	Received bool  `json:"received"`
	Verified *bool `json:"verified,omitempty"`
}

// Deferred reports whether the webhook was accepted without being verified.
func (r WebhookResponse) Deferred() bool {
	return r.Verified != nil && !*r.Verified
}
