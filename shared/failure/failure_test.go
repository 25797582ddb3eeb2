package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad date")), code: http.StatusBadRequest, message: "bad date"},
		{name: "bad request from string", err: failure.BadRequestFromString("slot is taken"), code: http.StatusBadRequest, message: "slot is taken"},
		{name: "unauthorized", err: failure.Unauthorized("invalid token"), code: http.StatusUnauthorized, message: "invalid token"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("admin already exists"), code: http.StatusConflict, message: "admin already exists"},
		{name: "registration closed", err: failure.RegistrationClosedError, code: http.StatusForbidden, message: failure.RegistrationClosedError.Message},
		{name: "email mismatch", err: failure.EmailMismatchError, code: http.StatusUnauthorized, message: "Email does not match this booking"},
		{name: "bad signature", err: failure.SignatureInvalidError, code: http.StatusUnauthorized, message: "Invalid webhook signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			require.ErrorAs(t, tt.err, &fail)

			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, fail.Error())
			assert.Empty(t, fail.Hint)
			assert.Nil(t, fail.Details)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestServiceUnavailable(t *testing.T) {
	var fail *failure.Failure
	require.ErrorAs(t, failure.ServiceUnavailable("payments are not configured", "set PAYSTACK_SECRET_KEY"), &fail)

	assert.Equal(t, http.StatusServiceUnavailable, fail.Code)
	assert.Equal(t, "set PAYSTACK_SECRET_KEY", fail.Hint)
}

func TestBadGateway(t *testing.T) {
	upstream := map[string]any{"status": false, "message": "Invalid key"}

	var fail *failure.Failure
	require.ErrorAs(t, failure.BadGateway("paystack rejected the request", upstream), &fail)

	assert.Equal(t, http.StatusBadGateway, fail.Code)
	assert.Equal(t, upstream, fail.Details)
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("load booking: %w", failure.NotFound("booking not found"))

	assert.True(t, failure.Is(wrapped, http.StatusNotFound))
	assert.False(t, failure.Is(wrapped, http.StatusBadRequest))
	assert.False(t, failure.Is(errors.New("plain"), http.StatusNotFound))
	assert.False(t, failure.Is(nil, http.StatusNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, failure.GetCode(fmt.Errorf("insert: %w", failure.Conflict("admin already exists"))))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}
