package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/monnify"
	"salon/infras/otel"
	"salon/infras/paystack"
	"salon/infras/postgres"
	bookingModel "salon/internal/domains/booking/model"
	bookingRepo "salon/internal/domains/booking/repository"
	notificationModel "salon/internal/domains/notification/model"
	notificationService "salon/internal/domains/notification/service"
	"salon/internal/domains/payment/model/dto"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/lock"
	"salon/shared/timezone"
)

const (
	msgInitialized        = "Payment initialized"
	msgParamsRequired     = "bookingId and email are required"
	msgBookingNotFound    = "Booking not found"
	msgReferenceNotFound  = "Booking not found for this payment reference"
	msgNoPayableAmount    = "No payable amount found for this booking"
	msgVerifyFailed       = "Failed to verify payment"
	msgVerificationFailed = "Verification failed"
)

// Payment drives the hosted-checkout providers and reconciles their results
// onto bookings.
type Payment interface {
	PaystackStatus(ctx context.Context) dto.PaystackStatusResponse
	PaystackInitialize(ctx context.Context, req dto.PaystackInitializeRequest) (dto.PaystackInitializeResponse, error)
	PaystackVerify(ctx context.Context, reference string) (dto.VerifyResponse, error)

	MonnifyStatus(ctx context.Context) dto.MonnifyStatusResponse
	MonnifyInitialize(ctx context.Context, req dto.MonnifyInitializeRequest) (dto.MonnifyInitializeResponse, error)
	MonnifyVerify(ctx context.Context, paymentReference, transactionReference string) (dto.VerifyResponse, error)
	MonnifyWebhook(ctx context.Context, signature string, body []byte) (dto.WebhookResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	tx       postgres.Transactor
	ledger   notificationService.Ledger
	locker   lock.Locker
	paystack paystack.Paystack
	monnify  monnify.Monnify
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	bookings bookingRepo.Booking,
	tx postgres.Transactor,
	ledger notificationService.Ledger,
	locker lock.Locker,
	paystack paystack.Paystack,
	monnify monnify.Monnify,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		bookings: bookings,
		tx:       tx,
		ledger:   ledger,
		locker:   locker,
		paystack: paystack,
		monnify:  monnify,
		cfg:      cfg,
		otel:     otel,
	}
}

// mutation applies a provider result to a freshly loaded booking and returns
// the columns to persist together with the events to record.
type mutation func(booking *bookingModel.Booking) (map[string]any, []notificationModel.Event)

func (s *serviceImpl) mutate(ctx context.Context, id, notFound string, fn mutation) (booking bookingModel.Booking, err error) {
	err = s.locker.WithLock(ctx, bookingModel.LockKey(id), func(ctx context.Context) error {
		booking, err = s.findBy(ctx, bookingModel.FieldID, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(notFound)
		}

		changes, events := fn(&booking)

		var recorded []notificationModel.Notification

		err = s.tx.WithTx(ctx, func(sqltx *sqlx.Tx) error {
			if err := s.bookings.UpdateTx(ctx, sqltx, changes, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName)); err != nil {
				return fmt.Errorf("failed to update booking payment: %w", err)
			}

			for _, event := range events {
				notification, err := s.ledger.Record(ctx, sqltx, event)
				if err != nil {
					return fmt.Errorf("failed to record %s notification: %w", event.Type, err)
				}

				recorded = append(recorded, notification)
			}

			return nil
		})
		if err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to save payment state")

			return err
		}

		if len(recorded) > 0 {
			s.ledger.Publish(ctx, recorded...)
		}

		return nil
	})

	return booking, err
}

// settle records a verified provider result. An unpaid result sets
// unpaidStatus, or leaves the payment state untouched when it is empty. Only
// a transition into paid appends a payment_received notification, so repeated
// verification of the same payment is idempotent.
func settle(booking *bookingModel.Booking, paid bool, amount int64, unpaidStatus string, changes map[string]any) []notificationModel.Event {
	wasPaid := booking.IsPaid()

	switch {
	case paid:
		booking.PaidAmount = amount
		booking.PaymentStatus = bookingModel.PaymentStatusPaid
		booking.AmountRemaining = bookingModel.RemainingAfter(booking.Price, amount)
		changes[bookingModel.FieldAmountRemaining] = booking.AmountRemaining
	case unpaidStatus != "":
		booking.PaidAmount = 0
		booking.PaymentStatus = unpaidStatus
	default:
		return nil
	}

	changes[bookingModel.FieldPaidAmount] = booking.PaidAmount
	changes[bookingModel.FieldPaymentStatus] = booking.PaymentStatus

	if !paid || wasPaid {
		return nil
	}

	return []notificationModel.Event{{
		Type:          notificationModel.TypePaymentReceived,
		BookingID:     booking.ID,
		Email:         booking.Email,
		Phone:         booking.Phone,
		BookingStatus: booking.Status,
		Amount:        amount,
		OccurredAt:    timezone.Now(),
	}}
}

func (s *serviceImpl) findBy(ctx context.Context, field, value string) (bookingModel.Booking, error) {
	if strings.TrimSpace(value) == "" {
		return bookingModel.Booking{}, nil
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByField(field, strings.TrimSpace(value), bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to look up booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// authorize loads the booking a customer wants to pay for, matching the email
// it was made with.
func (s *serviceImpl) authorize(ctx context.Context, id, email string) (bookingModel.Booking, error) {
	if strings.TrimSpace(id) == "" || shared.NormalizeEmail(email) == "" {
		return bookingModel.Booking{}, failure.BadRequestFromString(msgParamsRequired)
	}

	booking, err := s.findBy(ctx, bookingModel.FieldID, id)
	if err != nil {
		return booking, err
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound)
	}

	if !shared.EmailMatches(booking.Email, email) {
		return booking, failure.EmailMismatchError
	}

	return booking, nil
}

func (s *serviceImpl) callbackURL(page string) string {
	return s.cfg.App.PublicBaseURL + "/" + page
}

// providerError maps a provider client error onto the response the caller
// sees: rejected requests become a 502 carrying the provider payload.
func providerError(err error, gatewayMsg, fallbackMsg string, notConfigured error) error {
	var (
		fail        *failure.Failure
		paystackErr *paystack.APIError
		monnifyErr  *monnify.APIError
	)

	switch {
	case errors.As(err, &fail):
		return err
	case errors.As(err, &paystackErr):
		return failure.BadGateway(gatewayMsg, paystackErr.Payload)
	case errors.As(err, &monnifyErr):
		return failure.BadGateway(gatewayMsg, monnifyErr.Payload)
	case errors.Is(err, paystack.ErrNotConfigured), errors.Is(err, monnify.ErrNotConfigured):
		return notConfigured
	default:
		log.Error().Err(err).Msg(fallbackMsg)

		return failure.InternalError(errors.New(fallbackMsg))
	}
}

func head(value string, n int) string {
	if len(value) <= n {
		return value
	}

	return value[:n]
}
