package message_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	otelMocks "salon/infras/otel/mocks"
	messageMocks "salon/internal/domains/message/mocks"
	"salon/internal/domains/message/model/dto"
	"salon/internal/handlers/message"
)

func setup(t *testing.T) (chi.Router, chi.Router, *messageMocks.MockMessageService) {
	ctrl := gomock.NewController(t)
	svc := messageMocks.NewMockMessageService(ctrl)

	cfg := &config.Config{}
	cfg.App.Upload.ImageMaxMB = 5

	handler := message.New(svc, cfg, otelMocks.NewOtel())

	public := chi.NewRouter()
	handler.Router(public)

	admin := chi.NewRouter()
	handler.AdminRouter(admin)

	return public, admin, svc
}

func TestHandler_CreateMessage(t *testing.T) {
	t.Run("url encoded form", func(t *testing.T) {
		public, _, svc := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateMessageRequest) (dto.MessageEnvelope, error) {
			assert.Equal(t, "Ada", req.Name)
			assert.Equal(t, "Late stylist", req.Subject)
			assert.False(t, req.HasReportFile())

			return dto.MessageEnvelope{Message: "Message sent successfully", Data: dto.MessageResponse{ID: "m1"}}, nil
		})

		form := url.Values{
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"subject": {"Late stylist"},
			"message": {"An hour late."},
		}

		req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"m1"`)
	})

	t.Run("report file without image type", func(t *testing.T) {
		public, _, _ := setup(t)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("name", "Ada"))

		part, err := writer.CreateFormFile("reportFile", "proof.exe")
		require.NoError(t, err)
		_, err = part.Write([]byte("MZ"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/messages", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_AdminRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]dto.MessageResponse{}, nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})

	t.Run("status is required", func(t *testing.T) {
		_, admin, _ := setup(t)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/messages/m1", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().UpdateStatus(gomock.Any(), "m1", dto.UpdateStatusRequest{Status: "read"}).
			Return(dto.MessageEnvelope{Message: "Message updated successfully"}, nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/messages/m1", strings.NewReader(`{"status":"read"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().Delete(gomock.Any(), "m1").Return(nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/messages/m1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"message":"Message deleted successfully"}`, rec.Body.String())
	})
}
