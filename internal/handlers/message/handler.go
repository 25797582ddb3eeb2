package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/message/model/dto"
	"salon/internal/domains/message/service"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/validator"
	"salon/transport/http/request"
	"salon/transport/http/response"
)

const msgMessageDeleted = "Message deleted successfully"

type Handler struct {
	service service.Message
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Message, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/messages", handler.CreateMessage)
}

// AdminRouter mounts the inbox routes. The caller guards them.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Put("/{id}", handler.UpdateStatus)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})
}

// CreateMessage stores a contact message or service report.
// @Summary Send a message
// @Tags Message
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Sender name"
// @Param email formData string true "Sender email"
// @Param subject formData string true "Subject"
// @Param message formData string true "Message body"
// @Param reportType formData string false "Report type"
// @Param reportFile formData file false "Supporting image"
// @Success 201 {object} dto.MessageEnvelope
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/messages [post]
func (handler *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	if err := request.ParseForm(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse message form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateMessageRequest{
		Name:       request.FormValue(r, "name"),
		Email:      request.FormValue(r, "email"),
		Subject:    request.FormValue(r, "subject"),
		Message:    request.FormValue(r, "message"),
		ReportType: request.FormValue(r, "reportType"),
	}

	file, fileHeader := request.FormFile(r, constant.FormFileReport)
	if file != nil {
		defer file.Close()

		if err := validator.ValidateFile(fileHeader, constant.FormFileReport, constant.MimeTypesImage, handler.cfg.App.Upload.ImageMaxMB); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("invalid report file")
			response.WithError(w, err)

			return
		}

		req.ReportFile = fileHeader
		req.ReportFileReader = file
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create message")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message created " + res.Data.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMessages lists the inbox.
// @Summary List messages
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/messages [get]
// @Security AdminToken
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	messages, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get messages")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, messages)
}

// UpdateStatus sets the inbox status of a message.
// @Summary Update message status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MessageEnvelope
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/messages/{id} [put]
// @Security AdminToken
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMessageStatus")
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
		log.Error().Err(err).Str("messageId", id).Msg("failed to update message")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteMessage removes a message.
// @Summary Delete a message
// @Tags Admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/messages/{id} [delete]
// @Security AdminToken
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("messageId", id).Msg("failed to delete message")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msgMessageDeleted)
}
