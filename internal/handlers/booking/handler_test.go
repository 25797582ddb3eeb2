package booking_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	otelMocks "salon/infras/otel/mocks"
	bookingMocks "salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/handlers/booking"
	"salon/shared/failure"
)

func setup(t *testing.T) (chi.Router, chi.Router, *bookingMocks.MockBookingService) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	cfg := &config.Config{}
	cfg.App.Upload.ImageMaxMB = 5
	cfg.App.Upload.ReceiptMaxMB = 8

	handler := booking.New(svc, cfg, otelMocks.NewOtel())

	public := chi.NewRouter()
	handler.Router(public)

	admin := chi.NewRouter()
	handler.AdminRouter(admin)

	return public, admin, svc
}

type formFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, file *formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		header.Set("Content-Type", file.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(file.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateBooking(t *testing.T) {
	fields := map[string]string{
		"name":          " Ada ",
		"email":         "ada@example.com",
		"phone":         "08012345678",
		"serviceId":     "2",
		"date":          "2026-11-02",
		"time":          "10:00",
		"paymentMethod": "bank_transfer",
		"paymentPlan":   "deposit_50",
	}

	t.Run("passes the form and image to the service", func(t *testing.T) {
		public, _, svc := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
			assert.Equal(t, "Ada", req.Name)
			assert.Equal(t, "2", req.ServiceID)
			assert.Equal(t, "deposit_50", req.PaymentPlan)
			require.NotNil(t, req.StyleImage)
			assert.Equal(t, "look.png", req.StyleImage.Filename)
			assert.NotNil(t, req.StyleImageFile)

			return dto.CreateBookingResponse{
				Message: "Booking created",
				Booking: dto.BookingResponse{ID: "b1"},
			}, nil
		})

		body, contentType := multipartBody(t, fields, &formFile{
			field: "styleImage", filename: "look.png", contentType: "image/png", content: []byte("png"),
		})

		req := httptest.NewRequest(http.MethodPost, "/bookings", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Booking created", decode(t, rec)["message"])
	})

	t.Run("rejects non image uploads", func(t *testing.T) {
		public, _, _ := setup(t)

		body, contentType := multipartBody(t, fields, &formFile{
			field: "styleImage", filename: "notes.txt", contentType: "text/plain", content: []byte("hi"),
		})

		req := httptest.NewRequest(http.MethodPost, "/bookings", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure maps to its status", func(t *testing.T) {
		public, _, svc := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.BadRequestFromString("Invalid service selected"))

		body, contentType := multipartBody(t, fields, nil)

		req := httptest.NewRequest(http.MethodPost, "/bookings", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid service selected", decode(t, rec)["error"])
	})
}

func TestHandler_TrackBooking(t *testing.T) {
	public, _, svc := setup(t)

	svc.EXPECT().Track(gomock.Any(), "b1", "ada@example.com").Return(dto.TrackResponse{
		Booking: dto.TrackBookingView{ID: "b1", Status: "pending"},
	}, nil)

	rec := httptest.NewRecorder()
	public.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/b1/track?email=ada@example.com", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	booking, ok := decode(t, rec)["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", booking["status"])
}

func TestHandler_UploadReceipt(t *testing.T) {
	t.Run("accepts pdf receipts", func(t *testing.T) {
		public, _, svc := setup(t)

		svc.EXPECT().UploadReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.UploadReceiptRequest) (dto.UploadReceiptResponse, error) {
			assert.Equal(t, "b1", req.BookingID)
			assert.Equal(t, "ada@example.com", req.Email)
			require.NotNil(t, req.Receipt)

			return dto.UploadReceiptResponse{Message: "Receipt uploaded"}, nil
		})

		body, contentType := multipartBody(t, map[string]string{"email": "ada@example.com"}, &formFile{
			field: "receipt", filename: "receipt.pdf", contentType: "application/pdf", content: []byte("%PDF"),
		})

		req := httptest.NewRequest(http.MethodPost, "/bookings/b1/upload-receipt", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("oversized receipt", func(t *testing.T) {
		public, _, _ := setup(t)

		body, contentType := multipartBody(t, map[string]string{"email": "ada@example.com"}, &formFile{
			field: "receipt", filename: "receipt.png", contentType: "image/png", content: bytes.Repeat([]byte{1}, 8*1024*1024+1),
		})

		req := httptest.NewRequest(http.MethodPost, "/bookings/b1/upload-receipt", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		public.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_BankDetails(t *testing.T) {
	public, _, svc := setup(t)

	svc.EXPECT().BankDetails(gomock.Any(), "b1", "eve@example.com").Return(dto.BankDetailsResponse{}, failure.EmailMismatchError)

	rec := httptest.NewRecorder()
	public.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/bank/details?bookingId=b1&email=eve@example.com", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Email does not match this booking", decode(t, rec)["error"])
}

func TestHandler_AdminRoutes(t *testing.T) {
	t.Run("list returns a bare array", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]dto.BookingResponse{{ID: "b1"}, {ID: "b2"}}, nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("update status", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().UpdateStatus(gomock.Any(), "b1", dto.UpdateStatusRequest{Status: "approved"}).Return(dto.UpdateBookingResponse{
			Message: "Booking updated",
			Booking: dto.BookingResponse{ID: "b1", Status: "approved"},
		}, nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/bookings/b1", strings.NewReader(`{"status":"approved"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, admin, _ := setup(t)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/bookings/b1", strings.NewReader(`{"status":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approve image accepts string true", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().ApproveImage(gomock.Any(), "b1", dto.ApproveImageRequest{Approved: true}).Return(dto.UpdateBookingResponse{}, nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/bookings/b1/approve-image", strings.NewReader(`{"approved":"true"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		_, admin, svc := setup(t)

		svc.EXPECT().Delete(gomock.Any(), "b1").Return(nil)

		rec := httptest.NewRecorder()
		admin.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/bookings/b1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Booking deleted successfully", decode(t, rec)["message"])
	})
}
