package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/internal/domains/notification/model"
	"salon/internal/domains/notification/model/dto"
	"salon/internal/domains/notification/repository"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/timezone"
)

const (
	messageApproved        = "✅ Your booking has been approved! We will contact you shortly using the email and phone number you provided."
	messageCancelled       = "❌ Your booking was cancelled. Please contact the salon if you believe this was a mistake."
	messageReceiptUploaded = "📎 Payment receipt uploaded successfully. Our team will confirm your payment shortly."
)

// Ledger turns booking events into ledger rows and fans them out to
// the notification topic for downstream delivery. Record writes inside the
// caller's transaction; Publish is called once that transaction commits.
type Ledger interface {
	Record(ctx context.Context, sqltx *sqlx.Tx, event model.Event) (model.Notification, error)
	Publish(ctx context.Context, notifications ...model.Notification)
	ListByBooking(ctx context.Context, bookingID string) ([]model.Notification, error)
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Ledger {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, sqltx *sqlx.Tx, event model.Event) (res model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.id":        event.BookingID,
		"notification.type": event.Type,
	})

	message, err := s.render(event)
	if err != nil {
		return res, err
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = timezone.Now()
	}

	res = model.Notification{
		ID:        uuid.NewString(),
		BookingID: event.BookingID,
		Email:     event.Email,
		Phone:     event.Phone,
		Type:      event.Type,
		Message:   message,
		CreatedAt: createdAt,
	}

	if err = s.repo.InsertTx(ctx, sqltx, res); err != nil {
		log.Error().Err(err).Str("bookingId", event.BookingID).Str("type", event.Type).Msg("failed to record booking notification")

		return res, fmt.Errorf("failed to record booking notification: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListByBooking(ctx context.Context, bookingID string) (res []model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.ListByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	res, err = s.repo.GetAll(ctx, params, shared.FilterByField(model.FieldBookingID, bookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to list booking notifications")

		return nil, fmt.Errorf("failed to list booking notifications: %w", err)
	}

	slices.SortStableFunc(res, func(a, b model.Notification) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return res, nil
}

func (s *serviceImpl) render(event model.Event) (string, error) {
	switch event.Type {
	case model.TypePaymentInstructions:
		bank := s.cfg.Bank

		return fmt.Sprintf("🏦 Bank Transfer Details: %s %s (%s). Use reference: %s. Amount due now: ₦%s.",
			bank.Name, bank.AccountNumber, bank.AccountName, event.Reference, shared.FormatAmount(event.Amount)), nil
	case model.TypeApproved:
		return messageApproved, nil
	case model.TypeCancelled:
		return messageCancelled, nil
	case model.TypePaymentReceived:
		return fmt.Sprintf("💳 Payment received successfully (₦%s). Your booking remains %s.",
			shared.FormatAmount(event.Amount), event.BookingStatus), nil
	case model.TypeReceiptUploaded:
		return messageReceiptUploaded, nil
	default:
		return "", fmt.Errorf("unknown notification type %q", event.Type)
	}
}

// Publish is best effort: the ledger row is the source of truth.
func (s *serviceImpl) Publish(ctx context.Context, notifications ...model.Notification) {
	if len(notifications) == 0 || !s.kafka.Enabled() {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Publish")
	defer scope.End()

	messages := make([]kafka.Message, len(notifications))

	for i, notification := range notifications {
		var payload dto.NotificationResponse
		payload.FromModel(notification)

		messages[i] = kafka.Message{
			Key:   notification.BookingID,
			Value: payload,
		}
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.NotificationTopic, messages...); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int("count", len(messages)).Msg("failed to publish booking notifications")
	}
}
