package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/shared/failure"
	"salon/shared/validator"
)

type statusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
	Note   string `json:"note"   validate:"omitempty,max=10"`
}

type adminLogin struct {
	Email    string `json:"email"    validate:"required,email"`
	Attempts int    `json:"attempts" validate:"gte=0,lte=5"`
	Internal string `json:"-"        validate:"required"`
}

func assertBadRequest(t *testing.T, err error, msg string) {
	t.Helper()

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusBadRequest, fail.Code)
	assert.Equal(t, msg, fail.Message)
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    *adminLogin
		wantMsg string
	}{
		{
			name: "valid",
			data: &adminLogin{Email: "owner@salon.test", Attempts: 2, Internal: "x"},
		},
		{
			name:    "required uses the json name",
			data:    &adminLogin{Attempts: 1, Internal: "x"},
			wantMsg: "email is required",
		},
		{
			name:    "email format",
			data:    &adminLogin{Email: "not-an-email", Internal: "x"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "upper bound",
			data:    &adminLogin{Email: "owner@salon.test", Attempts: 9, Internal: "x"},
			wantMsg: "attempts must be less than or equal to 5",
		},
		{
			name:    "lower bound",
			data:    &adminLogin{Email: "owner@salon.test", Attempts: -1, Internal: "x"},
			wantMsg: "attempts must be greater than or equal to 0",
		},
		{
			name:    "hidden json name falls back to the struct field",
			data:    &adminLogin{Email: "owner@salon.test"},
			wantMsg: "Internal is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assertBadRequest(t, err, tt.wantMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    statusUpdate
		wantMsg string
	}{
		{
			name: "valid",
			body: `{"status":"confirmed","note":"ok"}`,
			want: statusUpdate{Status: "confirmed", Note: "ok"},
		},
		{
			name:    "not in the allowed set",
			body:    `{"status":"archived"}`,
			wantMsg: "status must be one of pending confirmed cancelled",
		},
		{
			name:    "too long",
			body:    `{"status":"pending","note":"far too long for this"}`,
			wantMsg: "note must be at most 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got statusUpdate

			err := validator.Validate(strings.NewReader(tt.body), &got)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			assertBadRequest(t, err, tt.wantMsg)
		})
	}
}

func TestValidate_MalformedBody(t *testing.T) {
	var got statusUpdate

	err := validator.Validate(strings.NewReader(`{"status":`), &got)

	assert.True(t, failure.Is(err, http.StatusBadRequest))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func upload(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "upload", Header: header, Size: size}
}

func TestValidateFile(t *testing.T) {
	const images = "image/jpeg image/png image/webp"

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantMsg string
	}{
		{name: "accepted", file: upload("image/png", 512*1024)},
		{name: "content type is case insensitive", file: upload(" IMAGE/JPEG ", 1024)},
		{name: "exactly at the limit", file: upload("image/webp", 2*1024*1024)},
		{name: "missing", file: nil, wantMsg: "styleImage is required"},
		{name: "wrong type", file: upload("application/pdf", 1024), wantMsg: "styleImage must be one of " + images},
		{name: "too large", file: upload("image/png", 2*1024*1024+1), wantMsg: "styleImage must not exceed 2 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFile(tt.file, "styleImage", images, 2)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assertBadRequest(t, err, tt.wantMsg)
		})
	}
}

func TestValidateFile_FractionalLimit(t *testing.T) {
	err := validator.ValidateFile(upload("image/png", 1024*1024), "receipt", "image/png", 0.5)

	assertBadRequest(t, err, "receipt must not exceed 0.5 MB")
}
