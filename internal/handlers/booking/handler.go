package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/service"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/validator"
	"salon/transport/http/request"
	"salon/transport/http/response"
)

const (
	queryParamEmail     = "email"
	queryParamBookingID = "bookingId"

	msgBookingDeleted = "Booking deleted successfully"
)

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}/track", handler.TrackBooking)
		routerGroup.Post("/{id}/upload-receipt", handler.UploadReceipt)
	})

	router.Get("/payments/bank/details", handler.BankDetails)
}

// AdminRouter mounts the booking management routes. The caller guards them.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Put("/{id}", handler.UpdateStatus)
		routerGroup.Put("/{id}/approve-image", handler.ApproveImage)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a booking
// @Description Create a booking for a catalog service, optionally with a style image.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Customer name"
// @Param email formData string true "Customer email"
// @Param phone formData string true "Customer phone"
// @Param serviceId formData integer true "Catalog service id"
// @Param date formData string true "Appointment date"
// @Param time formData string true "Appointment time"
// @Param paymentMethod formData string true "Payment method"
// @Param paymentPlan formData string true "full or deposit_50"
// @Param homeServiceRequested formData string false "true, 1 or yes"
// @Param homeServiceAddress formData string false "Required for home service"
// @Param styleImage formData file false "Style reference image"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	if err := request.ParseForm(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateBookingRequest{
		Name:                 request.FormValue(r, "name"),
		Email:                request.FormValue(r, "email"),
		Phone:                request.FormValue(r, "phone"),
		ServiceID:            request.FormValue(r, "serviceId"),
		Date:                 request.FormValue(r, "date"),
		Time:                 request.FormValue(r, "time"),
		Language:             request.FormValue(r, "language"),
		PaymentMethod:        request.FormValue(r, "paymentMethod"),
		PaymentPlan:          request.FormValue(r, "paymentPlan"),
		HomeServiceRequested: request.FormValue(r, "homeServiceRequested"),
		HomeServiceAddress:   request.FormValue(r, "homeServiceAddress"),
		Refreshment:          request.FormValue(r, "refreshment"),
		SpecialRequests:      request.FormValue(r, "specialRequests"),
	}

	file, fileHeader := request.FormFile(r, constant.FormFileStyleImage)
	if file != nil {
		defer file.Close()

		if err := validator.ValidateFile(fileHeader, constant.FormFileStyleImage, constant.MimeTypesImage, handler.cfg.App.Upload.ImageMaxMB); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("invalid style image")
			response.WithError(w, err)

			return
		}

		req.StyleImage = fileHeader
		req.StyleImageFile = file
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + res.Booking.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// TrackBooking returns a booking and its notifications to its owner.
// @Summary Track a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Booking email"
// @Success 200 {object} dto.TrackResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id}/track [get]
func (handler *Handler) TrackBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Track(ctx, id, r.URL.Query().Get(queryParamEmail))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Msg("failed to track booking")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadReceipt attaches a bank transfer receipt to a booking.
// @Summary Upload a payment receipt
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Booking ID"
// @Param email formData string true "Booking email"
// @Param receipt formData file true "Receipt image or PDF"
// @Success 201 {object} dto.UploadReceiptResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id}/upload-receipt [post]
func (handler *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadReceipt")
	defer scope.End()

	if err := request.ParseForm(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse receipt form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadReceiptRequest{
		BookingID: chi.URLParam(r, constant.RequestParamID),
		Email:     request.FormValue(r, "email"),
	}

	file, fileHeader := request.FormFile(r, constant.FormFileReceipt)
	if file != nil {
		defer file.Close()

		if err := validator.ValidateFile(fileHeader, constant.FormFileReceipt, constant.MimeTypesReceipt, handler.cfg.App.Upload.ReceiptMaxMB); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("invalid receipt file")
			response.WithError(w, err)

			return
		}

		req.Receipt = fileHeader
		req.ReceiptFile = file
	}

	res, err := handler.service.UploadReceipt(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to upload receipt")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// BankDetails returns the salon account and transfer reference for a booking.
// @Summary Bank transfer details
// @Tags Payment
// @Produce json
// @Param bookingId query string true "Booking ID"
// @Param email query string true "Booking email"
// @Success 200 {object} dto.BankDetailsResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/payments/bank/details [get]
func (handler *Handler) BankDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BankDetails")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.BankDetails(ctx, query.Get(queryParamBookingID), query.Get(queryParamEmail))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bank details")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookings lists every booking for the dashboard.
// @Summary List bookings
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/bookings [get]
// @Security AdminToken
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	bookings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateStatus moves a booking through its status lifecycle.
// @Summary Update booking status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.UpdateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/bookings/{id} [put]
// @Security AdminToken
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking status")
		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)
	scope.AddEvent("Booking " + id + " set to " + res.Booking.Status + " by " + admin)

	response.WithJSON(w, http.StatusOK, res)
}

// ApproveImage records the admin decision on a style image.
// @Summary Approve a style image
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApproveImageRequest true "Approval"
// @Success 200 {object} dto.UpdateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/bookings/{id}/approve-image [put]
// @Security AdminToken
func (handler *Handler) ApproveImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ApproveImageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ApproveImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Msg("failed to approve image")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking removes a booking and its notifications.
// @Summary Delete a booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/bookings/{id} [delete]
// @Security AdminToken
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Msg("failed to delete booking")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msgBookingDeleted)
}
