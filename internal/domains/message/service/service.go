package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Message=MockMessageService

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"salon/infras/otel"
	"salon/infras/s3"
	"salon/internal/domains/message/model"
	"salon/internal/domains/message/model/dto"
	"salon/internal/domains/message/repository"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	"salon/shared/timezone"
)

const (
	msgMissingFields   = "Missing required fields"
	msgMessageNotFound = "Message not found"
	msgMessageSent     = "Message sent successfully"
	msgMessageUpdated  = "Message updated successfully"
)

type Message interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) (dto.MessageEnvelope, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.MessageResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.MessageEnvelope, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Message
	s3   s3.S3
	otel otel.Otel
}

func New(repo repository.Message, s3 s3.S3, otel otel.Otel) Message {
	return &serviceImpl{
		repo: repo,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (res dto.MessageEnvelope, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.HasRequiredFields() {
		return res, failure.BadRequestFromString(msgMissingFields)
	}

	var reportFileURL string

	if req.HasReportFile() {
		reportFileURL, err = s.s3.UploadFile(ctx, constant.UploadDirectoryReports, req.ReportFileReader, req.ReportFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload report file")

			return res, fmt.Errorf("failed to upload report file: %w", err)
		}
	}

	msg := req.ToModel(reportFileURL, timezone.Now())

	if err = s.repo.Insert(ctx, msg); err != nil {
		log.Error().Err(err).Msg("failed to insert message")

		return res, fmt.Errorf("failed to insert message: %w", err)
	}

	res.Message = msgMessageSent
	res.Data.FromModel(msg)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.SortBy == "" {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	res = make([]dto.MessageResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.MessageEnvelope, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	msg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("messageId", id).Msg("failed to get message")

		return res, fmt.Errorf("failed to get message: %w", err)
	}

	if msg.ID == constant.Empty {
		return res, failure.NotFound(msgMessageNotFound)
	}

	msg.Status = strings.TrimSpace(req.Status)
	msg.UpdatedAt = timezone.Now()

	changes := map[string]any{
		model.FieldStatus:    msg.Status,
		model.FieldUpdatedAt: msg.UpdatedAt,
	}

	if err = s.repo.Update(ctx, changes, filter); err != nil {
		log.Error().Err(err).Str("messageId", id).Msg("failed to update message")

		return res, fmt.Errorf("failed to update message: %w", err)
	}

	res.Message = msgMessageUpdated
	res.Data.FromModel(msg)

	return res, nil
}

// Delete is idempotent: removing an unknown message succeeds.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	msg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("messageId", id).Msg("failed to get message")

		return fmt.Errorf("failed to get message: %w", err)
	}

	if msg.ID == constant.Empty {
		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("messageId", id).Msg("failed to delete message")

		return fmt.Errorf("failed to delete message: %w", err)
	}

	if msg.ReportFile != nil && *msg.ReportFile != "" {
		url := *msg.ReportFile

		go func() {
			if err := s.s3.DeleteFile(context.WithoutCancel(ctx), url); err != nil {
				log.Warn().Err(err).Str("url", url).Msg("failed to delete report file")
			}
		}()
	}

	return nil
}
