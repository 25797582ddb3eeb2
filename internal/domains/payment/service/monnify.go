package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"salon/infras/monnify"
	bookingModel "salon/internal/domains/booking/model"
	notificationModel "salon/internal/domains/notification/model"
	"salon/internal/domains/payment/model/dto"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
)

const (
	monnifyCallbackPage      = "monnify-callback.html"
	monnifyDescriptionPrefix = "CEO UNISEX SALON - "
	monnifyReferenceIDLength = 12

	msgMonnifyConfigured     = "Monnify is configured"
	msgMonnifyNotConfigured  = "Monnify is not configured on the server"
	hintMonnify              = "Set MONNIFY_API_KEY, MONNIFY_SECRET_KEY, and MONNIFY_CONTRACT_CODE in .env and restart the server."
	msgMonnifyInitFailed     = "Failed to initialize Monnify payment"
	msgMonnifyRefRequired    = "paymentReference or transactionReference is required"
	msgWebhookMissingPayload = "Missing monnify-signature header or raw body"
	msgWebhookMissingRefs    = "Webhook missing paymentReference/transactionReference"
)

func (s *serviceImpl) MonnifyStatus(_ context.Context) dto.MonnifyStatusResponse {
	res := dto.MonnifyStatusResponse{
		Configured:    s.monnify.Configured(),
		CallbackURL:   s.callbackURL(monnifyCallbackPage),
		PublicBaseURL: s.cfg.App.PublicBaseURL,
		BaseURL:       s.monnify.BaseURL(),
		Message:       msgMonnifyConfigured,
	}

	if !res.Configured {
		res.Message = msgMonnifyNotConfigured + ". " + hintMonnify
	}

	return res
}

func (s *serviceImpl) MonnifyInitialize(ctx context.Context, req dto.MonnifyInitializeRequest) (res dto.MonnifyInitializeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.MonnifyInitialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.BookingID) == "" || shared.NormalizeEmail(req.Email) == "" {
		return res, failure.BadRequestFromString(msgParamsRequired)
	}

	if !s.monnify.Configured() {
		return res, failure.ServiceUnavailable(msgMonnifyNotConfigured, hintMonnify)
	}

	booking, err := s.authorize(ctx, req.BookingID, req.Email)
	if err != nil {
		return res, err
	}

	amount := max(0, booking.AmountDueNow)
	if amount == 0 {
		return res, failure.BadRequestFromString(msgNoPayableAmount)
	}

	reference := s.cfg.Bank.ReferencePrefix + "-" + head(booking.ID, monnifyReferenceIDLength) + "-" + strconv.FormatInt(timezone.Now().UnixMilli(), 10)

	methods := []string(req.PaymentMethods)
	if len(methods) == 0 {
		methods = booking.PaymentMethodKind().MonnifyMethods()
	}

	checkout, err := s.monnify.InitTransaction(ctx, monnify.InitTransactionRequest{
		Amount:             amount,
		CustomerName:       booking.Name,
		CustomerEmail:      booking.Email,
		PaymentReference:   reference,
		PaymentDescription: monnifyDescriptionPrefix + booking.ServiceName,
		RedirectURL:        s.callbackURL(monnifyCallbackPage),
		PaymentMethods:     methods,
		MetaData: monnify.Metadata{
			BookingID:    booking.ID,
			ServiceName:  booking.ServiceName,
			PaymentPlan:  booking.PaymentPlan,
			AmountDueNow: booking.AmountDueNow,
			Phone:        booking.Phone,
		},
	})
	if err != nil {
		return res, providerError(err, msgMonnifyInitFailed, msgMonnifyInitFailed, failure.ServiceUnavailable(msgMonnifyNotConfigured, ""))
	}

	booking, err = s.mutate(ctx, booking.ID, msgBookingNotFound, func(b *bookingModel.Booking) (map[string]any, []notificationModel.Event) {
		now := timezone.Now()

		b.PaymentProvider = bookingModel.ProviderMonnify
		b.PaymentReference = shared.FirstNonEmpty(checkout.PaymentReference, reference)
		b.MonnifyTransactionReference = strings.TrimSpace(checkout.TransactionReference)
		b.PaymentStatus = bookingModel.PaymentStatusInitiated
		b.PaymentInitiatedAt = &now

		return map[string]any{
			bookingModel.FieldPaymentProvider:             b.PaymentProvider,
			bookingModel.FieldPaymentReference:            b.PaymentReference,
			bookingModel.FieldMonnifyTransactionReference: b.MonnifyTransactionReference,
			bookingModel.FieldPaymentStatus:               b.PaymentStatus,
			bookingModel.FieldPaymentInitiatedAt:          now,
		}, nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingId", booking.ID).Str("reference", booking.PaymentReference).Msg("monnify payment initialized")

	return dto.MonnifyInitializeResponse{
		Message:              msgInitialized,
		CheckoutURL:          checkout.CheckoutURL,
		PaymentReference:     booking.PaymentReference,
		TransactionReference: booking.MonnifyTransactionReference,
	}, nil
}

func (s *serviceImpl) MonnifyVerify(ctx context.Context, paymentReference, transactionReference string) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.MonnifyVerify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	paymentReference = strings.TrimSpace(paymentReference)
	transactionReference = strings.TrimSpace(transactionReference)

	if paymentReference == "" && transactionReference == "" {
		return res, failure.BadRequestFromString(msgMonnifyRefRequired)
	}

	notConfigured := failure.ServiceUnavailable(msgMonnifyNotConfigured, hintMonnify)
	if !s.monnify.Configured() {
		return res, notConfigured
	}

	txn, err := s.monnify.QueryTransaction(ctx, paymentReference, transactionReference)
	if err != nil {
		return res, providerError(err, msgVerifyFailed, msgVerificationFailed, notConfigured)
	}

	booking, err := s.findByMonnifyReferences(ctx, txn, paymentReference, transactionReference)
	if err != nil {
		return res, err
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgReferenceNotFound)
	}

	booking, err = s.mutate(ctx, booking.ID, msgReferenceNotFound, func(b *bookingModel.Booking) (map[string]any, []notificationModel.Event) {
		now := timezone.Now()
		changes := applyMonnifyReferences(b, txn)

		b.PaymentVerifiedAt = &now
		changes[bookingModel.FieldPaymentVerifiedAt] = now

		return changes, settle(b, txn.Paid(), txn.Settled(), bookingModel.PaymentStatusFailed, changes)
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingId", booking.ID).Str("status", txn.Status()).Msg("monnify payment verified")

	res.OK = true
	res.Paid = txn.Paid()
	res.Status = txn.Status()
	res.Booking.FromModel(booking)
	res.Booking.TransactionReference = &booking.MonnifyTransactionReference

	return res, nil
}

// MonnifyWebhook authenticates a Monnify callback and reconciles the booking
// against a fresh transaction query. Once the signature is accepted, failures
// are acknowledged as unverified so Monnify does not keep retrying.
func (s *serviceImpl) MonnifyWebhook(ctx context.Context, signature string, body []byte) (res dto.WebhookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.MonnifyWebhook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.monnify.Configured() {
		return res, failure.ServiceUnavailable(msgMonnifyNotConfigured, "")
	}

	if strings.TrimSpace(signature) == "" || len(body) == 0 {
		return res, failure.BadRequestFromString(msgWebhookMissingPayload)
	}

	if !s.monnify.VerifySignature(body, signature) {
		log.Warn().Msg("monnify webhook signature mismatch")

		return res, failure.SignatureInvalidError
	}

	var payload dto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn().Err(err).Int("bytes", len(body)).Msg("monnify webhook payload could not be decoded")
	}

	paymentReference := strings.TrimSpace(payload.EventData.PaymentReference)
	transactionReference := strings.TrimSpace(payload.EventData.TransactionReference)

	if paymentReference == "" && transactionReference == "" {
		return res, failure.BadRequestFromString(msgWebhookMissingRefs)
	}

	res.Received = true

	if err := s.reconcileWebhook(ctx, paymentReference, transactionReference); err != nil {
		log.Warn().Err(err).Str("paymentReference", paymentReference).Msg("monnify webhook not verified")

		verified := false
		res.Verified = &verified
	}

	return res, nil
}

func (s *serviceImpl) reconcileWebhook(ctx context.Context, paymentReference, transactionReference string) error {
	txn, err := s.monnify.QueryTransaction(ctx, paymentReference, transactionReference)
	if err != nil {
		return err
	}

	booking, err := s.findByMonnifyReferences(ctx, txn, paymentReference, transactionReference)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		log.Info().Str("paymentReference", paymentReference).Msg("monnify webhook for unknown booking")

		return nil
	}

	_, err = s.mutate(ctx, booking.ID, msgReferenceNotFound, func(b *bookingModel.Booking) (map[string]any, []notificationModel.Event) {
		now := timezone.Now()
		changes := applyMonnifyReferences(b, txn)

		b.PaymentWebhookProcessedAt = &now
		changes[bookingModel.FieldPaymentWebhookProcessedAt] = now

		return changes, settle(b, txn.Paid(), txn.Settled(), "", changes)
	})

	return err
}

// findByMonnifyReferences looks a booking up by payment reference first and
// by Monnify transaction reference second, preferring the values Monnify
// reported over the ones supplied by the caller.
func (s *serviceImpl) findByMonnifyReferences(ctx context.Context, txn monnify.Transaction, paymentReference, transactionReference string) (bookingModel.Booking, error) {
	booking, err := s.findBy(ctx, bookingModel.FieldPaymentReference, shared.FirstNonEmpty(txn.PaymentReference, paymentReference))
	if err != nil || booking.ID != constant.Empty {
		return booking, err
	}

	return s.findBy(ctx, bookingModel.FieldMonnifyTransactionReference, shared.FirstNonEmpty(txn.TransactionReference, transactionReference))
}

func applyMonnifyReferences(b *bookingModel.Booking, txn monnify.Transaction) map[string]any {
	b.PaymentProvider = bookingModel.ProviderMonnify
	b.PaymentReference = shared.FirstNonEmpty(txn.PaymentReference, b.PaymentReference)
	b.MonnifyTransactionReference = shared.FirstNonEmpty(txn.TransactionReference, b.MonnifyTransactionReference)

	return map[string]any{
		bookingModel.FieldPaymentProvider:             b.PaymentProvider,
		bookingModel.FieldPaymentReference:            b.PaymentReference,
		bookingModel.FieldMonnifyTransactionReference: b.MonnifyTransactionReference,
	}
}
