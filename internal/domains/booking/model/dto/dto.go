package dto

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"salon/internal/domains/booking/model"
	catalogModel "salon/internal/domains/catalog/model"
	notificationDto "salon/internal/domains/notification/model/dto"
	"salon/shared"
	gDto "salon/shared/dto"
	gModel "salon/shared/model"
)

// CreateBookingRequest is built from the multipart booking form.
type CreateBookingRequest struct {
	Name                 string `json:"name"                 validate:"max=120"`
	Email                string `json:"email"                validate:"max=254"`
	Phone                string `json:"phone"                validate:"max=50"`
	ServiceID            string `json:"serviceId"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Language             string `json:"language"`
	PaymentMethod        string `json:"paymentMethod"`
	PaymentPlan          string `json:"paymentPlan"`
	HomeServiceRequested string `json:"homeServiceRequested"`
	HomeServiceAddress   string `json:"homeServiceAddress"`
	Refreshment          string `json:"refreshment"`
	SpecialRequests      string `json:"specialRequests"`

	StyleImage     *multipart.FileHeader `json:"styleImage"`
	StyleImageFile multipart.File        `json:"-"`
}

// HasRequiredFields reports whether every mandatory form field is present.
func (r *CreateBookingRequest) HasRequiredFields() bool {
	for _, v := range []string{r.Name, r.Email, r.Phone, r.ServiceID, r.Date, r.Time, r.PaymentMethod, strings.TrimSpace(r.PaymentPlan)} {
		if v == "" {
			return false
		}
	}

	return true
}

func (r *CreateBookingRequest) HomeService() bool {
	return shared.IsTruthy(r.HomeServiceRequested)
}

// ParsedServiceID mirrors the lenient integer parsing of the booking form:
// leading digits are used and anything else is rejected.
func (r *CreateBookingRequest) ParsedServiceID() (int64, bool) {
	raw := strings.TrimSpace(r.ServiceID)

	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || end == 0 && (raw[end] == '-' || raw[end] == '+')) {
		end++
	}

	id, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func (r *CreateBookingRequest) ToModel(id string, service catalogModel.Service, styleImageURL string, now time.Time) model.Booking {
	plan := strings.TrimSpace(r.PaymentPlan)
	dueNow, remaining := model.SplitAmount(service.Price, plan)

	booking := model.Booking{
		ID:                   id,
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		ServiceID:            service.ID,
		ServiceName:          service.Name,
		Price:                service.Price,
		Date:                 r.Date,
		Time:                 r.Time,
		Language:             r.Language,
		PaymentMethod:        r.PaymentMethod,
		PaymentPlan:          plan,
		AmountDueNow:         dueNow,
		AmountRemaining:      remaining,
		PaymentStatus:        model.PaymentStatusPending,
		PaymentProvider:      model.ProviderNone,
		ServiceMode:          model.ServiceModeInSalon,
		Refreshment:          shared.FirstNonEmpty(r.Refreshment, model.DefaultRefreshment),
		SpecialRequests:      r.SpecialRequests,
		StyleImage:           styleImageURL,
		PaymentReceiptStatus: model.ReceiptStatusNone,
		Status:               model.StatusPending,
		Metadata:             gModel.NewMetadata(now),
	}

	if r.HomeService() {
		booking.ServiceMode = model.ServiceModeHome
		booking.HomeServiceAddress = strings.TrimSpace(r.HomeServiceAddress)
	}

	return booking
}

// BookingResponse is the full admin view of a booking.
type BookingResponse struct {
	ID                          string  `json:"id"`
	Name                        string  `json:"name"`
	Email                       string  `json:"email"`
	Phone                       string  `json:"phone"`
	ServiceID                   int64   `json:"serviceId"`
	ServiceName                 string  `json:"serviceName"`
	Price                       int64   `json:"price"`
	Date                        string  `json:"date"`
	Time                        string  `json:"time"`
	Language                    string  `json:"language"`
	PaymentMethod               string  `json:"paymentMethod"`
	PaymentPlan                 string  `json:"paymentPlan"`
	AmountDueNow                int64   `json:"amountDueNow"`
	AmountRemaining             int64   `json:"amountRemaining"`
	PaymentStatus               string  `json:"paymentStatus"`
	PaymentProvider             string  `json:"paymentProvider"`
	PaymentReference            string  `json:"paymentReference"`
	MonnifyTransactionReference string  `json:"monnifyTransactionReference,omitempty"`
	PaidAmount                  int64   `json:"paidAmount"`
	BankTransferReference       string  `json:"bankTransferReference"`
	PaymentInitiatedAt          *string `json:"paymentInitiatedAt,omitempty"`
	PaymentVerifiedAt           *string `json:"paymentVerifiedAt,omitempty"`
	PaymentWebhookProcessedAt   *string `json:"paymentWebhookProcessedAt,omitempty"`
	ServiceMode                 string  `json:"serviceMode"`
	HomeServiceAddress          string  `json:"homeServiceAddress"`
	Refreshment                 string  `json:"refreshment"`
	SpecialRequests             string  `json:"specialRequests"`
	StyleImage                  *string `json:"styleImage"`
	ImageApproved               bool    `json:"imageApproved"`
	ImageApprovedAt             *string `json:"imageApprovedAt,omitempty"`
	PaymentReceiptFile          *string `json:"paymentReceiptFile,omitempty"`
	PaymentReceiptUploadedAt    *string `json:"paymentReceiptUploadedAt,omitempty"`
	PaymentReceiptStatus        string  `json:"paymentReceiptStatus,omitempty"`
	Status                      string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.ServiceID = m.ServiceID
	r.ServiceName = m.ServiceName
	r.Price = m.Price
	r.Date = m.Date
	r.Time = m.Time
	r.Language = m.Language
	r.PaymentMethod = m.PaymentMethod
	r.PaymentPlan = m.PaymentPlan
	r.AmountDueNow = m.AmountDueNow
	r.AmountRemaining = m.AmountRemaining
	r.PaymentStatus = m.PaymentStatus
	r.PaymentProvider = m.PaymentProvider
	r.PaymentReference = m.PaymentReference
	r.MonnifyTransactionReference = m.MonnifyTransactionReference
	r.PaidAmount = m.PaidAmount
	r.BankTransferReference = m.BankTransferReference
	r.PaymentInitiatedAt = gDto.OptionalTime(m.PaymentInitiatedAt)
	r.PaymentVerifiedAt = gDto.OptionalTime(m.PaymentVerifiedAt)
	r.PaymentWebhookProcessedAt = gDto.OptionalTime(m.PaymentWebhookProcessedAt)
	r.ServiceMode = m.ServiceMode
	r.HomeServiceAddress = m.HomeServiceAddress
	r.Refreshment = m.Refreshment
	r.SpecialRequests = m.SpecialRequests
	r.StyleImage = optionalString(m.StyleImage)
	r.ImageApproved = m.ImageApproved
	r.ImageApprovedAt = gDto.OptionalTime(m.ImageApprovedAt)
	r.PaymentReceiptFile = optionalString(m.PaymentReceiptFile)
	r.PaymentReceiptUploadedAt = gDto.OptionalTime(m.PaymentReceiptUploadedAt)
	r.PaymentReceiptStatus = m.PaymentReceiptStatus
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// PaymentBankDetails is what a customer needs to make a manual transfer.
type PaymentBankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Reference     string `json:"reference"`
	AmountDueNow  int64  `json:"amountDueNow"`
}

type CreateBookingResponse struct {
	Message            string              `json:"message"`
	PaymentBankDetails *PaymentBankDetails `json:"paymentBankDetails"`
	Booking            BookingResponse     `json:"booking"`
}

type BankDetailsResponse struct {
	PaymentBankDetails
	BookingID string `json:"bookingId"`
}

// TrackBookingView is the customer-safe projection of a booking.
type TrackBookingView struct {
	ID                    string  `json:"id"`
	Status                string  `json:"status"`
	ServiceName           string  `json:"serviceName"`
	Date                  string  `json:"date"`
	Time                  string  `json:"time"`
	Price                 int64   `json:"price"`
	PaymentMethod         string  `json:"paymentMethod"`
	PaymentPlan           string  `json:"paymentPlan"`
	AmountDueNow          int64   `json:"amountDueNow"`
	AmountRemaining       int64   `json:"amountRemaining"`
	PaymentStatus         string  `json:"paymentStatus"`
	PaymentProvider       string  `json:"paymentProvider"`
	PaymentReference      string  `json:"paymentReference"`
	PaidAmount            int64   `json:"paidAmount"`
	BankTransferReference string  `json:"bankTransferReference"`
	PaymentReceiptFile    *string `json:"paymentReceiptFile"`
	PaymentReceiptStatus  string  `json:"paymentReceiptStatus"`
	ServiceMode           string  `json:"serviceMode"`
	HomeServiceAddress    string  `json:"homeServiceAddress"`
}

func (v *TrackBookingView) FromModel(m model.Booking) {
	v.ID = m.ID
	v.Status = m.Status
	v.ServiceName = m.ServiceName
	v.Date = m.Date
	v.Time = m.Time
	v.Price = m.Price
	v.PaymentMethod = m.PaymentMethod
	v.PaymentPlan = m.PaymentPlan
	v.AmountDueNow = m.AmountDueNow
	v.AmountRemaining = m.AmountRemaining
	v.PaymentStatus = m.PaymentStatus
	v.PaymentProvider = m.PaymentProvider
	v.PaymentReference = m.PaymentReference
	v.PaidAmount = m.PaidAmount
	v.BankTransferReference = m.BankTransferReference
	v.PaymentReceiptFile = optionalString(m.PaymentReceiptFile)
	v.PaymentReceiptStatus = m.PaymentReceiptStatus
	v.ServiceMode = m.ServiceMode
	v.HomeServiceAddress = m.HomeServiceAddress
}

type TrackResponse struct {
	Booking       TrackBookingView                       `json:"booking"`
	Notifications []notificationDto.NotificationResponse `json:"notifications"`
}

type UploadReceiptRequest struct {
	BookingID   string                `json:"bookingId"`
	Email       string                `json:"email"`
	Receipt     *multipart.FileHeader `json:"receipt"`
	ReceiptFile multipart.File        `json:"-"`
}

type ReceiptBookingView struct {
	ID                   string `json:"id"`
	PaymentStatus        string `json:"paymentStatus"`
	PaymentReceiptStatus string `json:"paymentReceiptStatus"`
}

type UploadReceiptResponse struct {
	Message     string             `json:"message"`
	ReceiptFile string             `json:"receiptFile"`
	Booking     ReceiptBookingView `json:"booking"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ApproveImageRequest struct {
	Approved FlexBool `json:"approved"`
}

type UpdateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// FlexBool accepts both a JSON boolean and the string "true"; everything
// else decodes as false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = FlexBool(asBool)

		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*b = FlexBool(asString == "true")

		return nil
	}

	*b = false

	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
