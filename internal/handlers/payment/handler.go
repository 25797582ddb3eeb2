package payment

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"salon/infras/otel"
	"salon/internal/domains/payment/model/dto"
	"salon/internal/domains/payment/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"salon/transport/http/response"
)

const (
	queryParamPaymentReference     = "paymentReference"
	queryParamTransactionReference = "transactionReference"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments/paystack", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.PaystackStatus)
		routerGroup.Post("/initialize", handler.PaystackInitialize)
		routerGroup.Get("/verify/{reference}", handler.PaystackVerify)
	})

	router.Route("/payments/monnify", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.MonnifyStatus)
		routerGroup.Post("/initialize", handler.MonnifyInitialize)
		routerGroup.Get("/verify", handler.MonnifyVerify)
		routerGroup.Post("/webhook", handler.MonnifyWebhook)
	})
}

// PaystackStatus reports whether Paystack is configured.
// @Summary Paystack configuration status
// @Tags Payment
// @Produce json
// @Success 200 {object} dto.PaystackStatusResponse
// @Router /api/payments/paystack/status [get]
func (handler *Handler) PaystackStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaystackStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.PaystackStatus(ctx))
}

// PaystackInitialize starts a Paystack checkout for the amount due now.
// @Summary Initialize a Paystack payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.PaystackInitializeRequest true "Booking to pay for"
// @Success 200 {object} dto.PaystackInitializeResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/payments/paystack/initialize [post]
func (handler *Handler) PaystackInitialize(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaystackInitialize")
	defer scope.End()

	req := dto.PaystackInitializeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.PaystackInitialize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to initialize paystack payment")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Paystack payment initialized " + res.Reference)

	response.WithJSON(w, http.StatusOK, res)
}

// PaystackVerify reconciles a Paystack transaction onto its booking.
// @Summary Verify a Paystack payment
// @Tags Payment
// @Produce json
// @Param reference path string true "Paystack reference"
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/payments/paystack/verify/{reference} [get]
func (handler *Handler) PaystackVerify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaystackVerify")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	res, err := handler.service.PaystackVerify(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reference", reference).Msg("failed to verify paystack payment")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MonnifyStatus reports whether Monnify is configured.
// @Summary Monnify configuration status
// @Tags Payment
// @Produce json
// @Success 200 {object} dto.MonnifyStatusResponse
// @Router /api/payments/monnify/status [get]
func (handler *Handler) MonnifyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MonnifyStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.MonnifyStatus(ctx))
}

// MonnifyInitialize starts a Monnify checkout for the amount due now.
// @Summary Initialize a Monnify payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.MonnifyInitializeRequest true "Booking to pay for"
// @Success 200 {object} dto.MonnifyInitializeResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/payments/monnify/initialize [post]
func (handler *Handler) MonnifyInitialize(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MonnifyInitialize")
	defer scope.End()

	req := dto.MonnifyInitializeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.MonnifyInitialize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to initialize monnify payment")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monnify payment initialized " + res.PaymentReference)

	response.WithJSON(w, http.StatusOK, res)
}

// MonnifyVerify reconciles a Monnify transaction onto its booking.
// @Summary Verify a Monnify payment
// @Tags Payment
// @Produce json
// @Param paymentReference query string false "Payment reference"
// @Param transactionReference query string false "Transaction reference"
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/payments/monnify/verify [get]
func (handler *Handler) MonnifyVerify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MonnifyVerify")
	defer scope.End()

	query := r.URL.Query()
	paymentReference := query.Get(queryParamPaymentReference)

	res, err := handler.service.MonnifyVerify(ctx, paymentReference, query.Get(queryParamTransactionReference))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("paymentReference", paymentReference).Msg("failed to verify monnify payment")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MonnifyWebhook receives Monnify's server-to-server completion callbacks.
// The signature covers the exact bytes sent, so the body is read raw.
// @Summary Monnify webhook
// @Tags Payment
// @Accept json
// @Produce json
// @Param Monnify-Signature header string true "HMAC-SHA512 of the body"
// @Success 200 {object} dto.WebhookResponse
// @Success 202 {object} dto.WebhookResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /api/payments/monnify/webhook [post]
func (handler *Handler) MonnifyWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MonnifyWebhook")
	defer scope.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, constant.RequestMaxMemory))
	if err != nil {
		err = failure.BadRequest(err)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.MonnifyWebhook(ctx, r.Header.Get(constant.RequestHeaderMonnifySignature), body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process monnify webhook")
		response.WithError(w, err)

		return
	}

	if res.Deferred() {
		response.WithJSON(w, http.StatusAccepted, res)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
