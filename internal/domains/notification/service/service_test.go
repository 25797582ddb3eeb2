package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/kafka"
	kafkaMocks "salon/infras/kafka/mocks"
	"salon/infras/otel/mocks"
	notificationMocks "salon/internal/domains/notification/mocks"
	"salon/internal/domains/notification/model"
	"salon/internal/domains/notification/service"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Bank.Name = "GTBank"
	cfg.Bank.AccountNumber = "0204661552"
	cfg.Bank.AccountName = "CEO Saloon"
	cfg.Kafka.NotificationTopic = "booking.notifications"

	return cfg
}

func TestNotificationService_Record(t *testing.T) {
	occurredAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		event       model.Event
		wantMessage string
		wantErr     bool
	}{
		{
			name: "payment instructions carry bank details",
			event: model.Event{
				Type:      model.TypePaymentInstructions,
				BookingID: "b-1",
				Reference: "CEOSALOON-ABCDEF12",
				Amount:    2500,
			},
			wantMessage: "🏦 Bank Transfer Details: GTBank 0204661552 (CEO Saloon). Use reference: CEOSALOON-ABCDEF12. Amount due now: ₦2,500.",
		},
		{
			name:        "approved",
			event:       model.Event{Type: model.TypeApproved, BookingID: "b-1"},
			wantMessage: "✅ Your booking has been approved! We will contact you shortly using the email and phone number you provided.",
		},
		{
			name:        "cancelled",
			event:       model.Event{Type: model.TypeCancelled, BookingID: "b-1"},
			wantMessage: "❌ Your booking was cancelled. Please contact the salon if you believe this was a mistake.",
		},
		{
			name: "payment received names the booking status",
			event: model.Event{
				Type:          model.TypePaymentReceived,
				BookingID:     "b-1",
				Amount:        15000,
				BookingStatus: "pending",
			},
			wantMessage: "💳 Payment received successfully (₦15,000). Your booking remains pending.",
		},
		{
			name:        "receipt uploaded",
			event:       model.Event{Type: model.TypeReceiptUploaded, BookingID: "b-1"},
			wantMessage: "📎 Payment receipt uploaded successfully. Our team will confirm your payment shortly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := notificationMocks.NewMockNotification(ctrl)
			mockKafka := kafkaMocks.NewMockClient(ctrl)

			svc := service.New(mockRepo, mockKafka, newConfig(), mocks.NewOtel())

			tt.event.OccurredAt = occurredAt

			mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, n model.Notification) error {
				assert.Equal(t, tt.wantMessage, n.Message)
				assert.Equal(t, tt.event.Type, n.Type)
				assert.Equal(t, occurredAt, n.CreatedAt)
				assert.NotEmpty(t, n.ID)

				return nil
			})
			got, err := svc.Record(context.Background(), nil, tt.event)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestNotificationService_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockKafka, newConfig(), mocks.NewOtel())

	notifications := []model.Notification{
		{ID: "n-1", BookingID: "b-2", Type: model.TypeApproved},
		{ID: "n-2", BookingID: "b-2", Type: model.TypePaymentReceived},
	}

	t.Run("sends one message per notification keyed by booking", func(t *testing.T) {
		mockKafka.EXPECT().Enabled().Return(true)
		mockKafka.EXPECT().SendMessages(gomock.Any(), "booking.notifications", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 2)
				assert.Equal(t, "b-2", messages[0].Key)

				return errors.New("broker down")
			})

		svc.Publish(context.Background(), notifications...)
	})

	t.Run("disabled producer is skipped", func(t *testing.T) {
		mockKafka.EXPECT().Enabled().Return(false)

		svc.Publish(context.Background(), notifications...)
	})

	t.Run("nothing to publish", func(_ *testing.T) {
		svc.Publish(context.Background())
	})
}

func TestNotificationService_RecordErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockKafka, newConfig(), mocks.NewOtel())

	_, err := svc.Record(context.Background(), nil, model.Event{Type: "completed", BookingID: "b-3"})
	assert.Error(t, err)

	mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err = svc.Record(context.Background(), nil, model.Event{Type: model.TypeCancelled, BookingID: "b-3"})
	assert.Error(t, err)
}

func TestNotificationService_ListByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockKafka, newConfig(), mocks.NewOtel())

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Notification{
		{ID: "n-3", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "n-1", CreatedAt: base},
		{ID: "n-2", CreatedAt: base.Add(time.Minute)},
	}, nil)

	got, err := svc.ListByBooking(context.Background(), "b-1")
	assert.NoError(t, err)

	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
	}

	assert.Equal(t, []string{"n-1", "n-2", "n-3"}, ids)
}
