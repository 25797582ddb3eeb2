package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"salon/infras/paystack"
	bookingModel "salon/internal/domains/booking/model"
	notificationModel "salon/internal/domains/notification/model"
	"salon/internal/domains/payment/model/dto"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
)

const (
	paystackCallbackPage = "paystack-callback.html"

	msgPaystackConfigured    = "Paystack is configured"
	msgPaystackNotConfigured = "Paystack is not configured on the server"
	hintPaystack             = "Set PAYSTACK_SECRET_KEY in .env and restart the server."
	msgPaystackInitFailed    = "Failed to initialize payment"
	msgReferenceRequired     = "reference is required"
)

func (s *serviceImpl) PaystackStatus(_ context.Context) dto.PaystackStatusResponse {
	res := dto.PaystackStatusResponse{
		Configured:    s.paystack.Configured(),
		CallbackURL:   s.callbackURL(paystackCallbackPage),
		PublicBaseURL: s.cfg.App.PublicBaseURL,
		Message:       msgPaystackConfigured,
	}

	if !res.Configured {
		res.Message = msgPaystackNotConfigured + ". " + hintPaystack
	}

	return res
}

func (s *serviceImpl) PaystackInitialize(ctx context.Context, req dto.PaystackInitializeRequest) (res dto.PaystackInitializeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.PaystackInitialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.authorize(ctx, req.BookingID, req.Email)
	if err != nil {
		return res, err
	}

	amountKobo := max(0, booking.AmountDueNow) * constant.NairaToKobo
	if amountKobo == 0 {
		return res, failure.BadRequestFromString(msgNoPayableAmount)
	}

	notConfigured := failure.ServiceUnavailable(msgPaystackNotConfigured, hintPaystack)
	if !s.paystack.Configured() {
		return res, notConfigured
	}

	var channels []string
	if channel := strings.TrimSpace(req.PaymentChannel); channel != "" {
		channels = []string{channel}
	}

	auth, err := s.paystack.Initialize(ctx, paystack.InitializeRequest{
		Email:       booking.Email,
		Amount:      amountKobo,
		CallbackURL: s.callbackURL(paystackCallbackPage),
		Channels:    channels,
		Metadata: paystack.Metadata{
			BookingID:    booking.ID,
			ServiceName:  booking.ServiceName,
			PaymentPlan:  booking.PaymentPlan,
			AmountDueNow: booking.AmountDueNow,
			Phone:        booking.Phone,
		},
	})
	if err != nil {
		return res, providerError(err, msgPaystackInitFailed, msgPaystackInitFailed, notConfigured)
	}

	_, err = s.mutate(ctx, booking.ID, msgBookingNotFound, func(b *bookingModel.Booking) (map[string]any, []notificationModel.Event) {
		now := timezone.Now()

		b.PaymentProvider = bookingModel.ProviderPaystack
		b.PaymentReference = auth.Reference
		b.PaymentStatus = bookingModel.PaymentStatusInitiated
		b.PaymentInitiatedAt = &now

		return map[string]any{
			bookingModel.FieldPaymentProvider:    b.PaymentProvider,
			bookingModel.FieldPaymentReference:   b.PaymentReference,
			bookingModel.FieldPaymentStatus:      b.PaymentStatus,
			bookingModel.FieldPaymentInitiatedAt: now,
		}, nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingId", booking.ID).Str("reference", auth.Reference).Msg("paystack payment initialized")

	return dto.PaystackInitializeResponse{
		Message:          msgInitialized,
		AuthorizationURL: auth.AuthorizationURL,
		Reference:        auth.Reference,
	}, nil
}

func (s *serviceImpl) PaystackVerify(ctx context.Context, reference string) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.PaystackVerify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reference = strings.TrimSpace(reference)
	if reference == "" {
		return res, failure.BadRequestFromString(msgReferenceRequired)
	}

	notConfigured := failure.ServiceUnavailable(msgPaystackNotConfigured, hintPaystack)
	if !s.paystack.Configured() {
		return res, notConfigured
	}

	charge, err := s.paystack.Verify(ctx, reference)
	if err != nil {
		return res, providerError(err, msgVerifyFailed, msgVerificationFailed, notConfigured)
	}

	var booking bookingModel.Booking

	if bookingID := charge.BookingID(); bookingID != "" {
		booking, err = s.findBy(ctx, bookingModel.FieldID, bookingID)
	} else {
		booking, err = s.findBy(ctx, bookingModel.FieldPaymentReference, reference)
	}

	if err != nil {
		return res, err
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgReferenceNotFound)
	}

	paid := charge.Succeeded()
	amount := int64(math.Round(charge.Amount / constant.NairaToKobo))

	booking, err = s.mutate(ctx, booking.ID, msgReferenceNotFound, func(b *bookingModel.Booking) (map[string]any, []notificationModel.Event) {
		now := timezone.Now()

		b.PaymentProvider = bookingModel.ProviderPaystack
		b.PaymentReference = reference
		b.PaymentVerifiedAt = &now

		changes := map[string]any{
			bookingModel.FieldPaymentProvider:   b.PaymentProvider,
			bookingModel.FieldPaymentReference:  b.PaymentReference,
			bookingModel.FieldPaymentVerifiedAt: now,
		}

		return changes, settle(b, paid, amount, bookingModel.PaymentStatusFailed, changes)
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingId", booking.ID).Bool("paid", paid).Msg("paystack payment verified")

	res.OK = true
	res.Paid = paid
	res.Booking.FromModel(booking)

	return res, nil
}
