package paystack

//go:generate go run go.uber.org/mock/mockgen -source=./paystack.go -destination=./mocks/paystack_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
)

const (
	pathInitialize = "/transaction/initialize"
	pathVerify     = "/transaction/verify/"

	defaultTimeout = 15 * time.Second
)

var ErrNotConfigured = errors.New("paystack secret key is not configured")

// APIError is returned when Paystack answers with a non-2xx status or with
// status=false. Payload is the decoded response body, nil when it was not JSON.
type APIError struct {
	StatusCode int
	Payload    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack responded with status %d", e.StatusCode)
}

type Metadata struct {
	BookingID    string `json:"bookingId"`
	ServiceName  string `json:"serviceName"`
	PaymentPlan  string `json:"paymentPlan"`
	AmountDueNow int64  `json:"amountDueNow"`
	Phone        string `json:"phone"`
}

// InitializeRequest amounts are in kobo.
type InitializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	CallbackURL string   `json:"callback_url"`
	Channels    []string `json:"channels,omitempty"`
	Metadata    Metadata `json:"metadata"`
}

type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Transaction is the verified state of a charge. Amount is in kobo.
type Transaction struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    float64         `json:"amount"`
	Metadata  json.RawMessage `json:"metadata"`
}

// BookingID reads the booking id stored in the transaction metadata. Paystack
// sends an empty string when no metadata was attached.
func (t Transaction) BookingID() string {
	var meta struct {
		BookingID any `json:"bookingId"`
	}

	if len(t.Metadata) == 0 || json.Unmarshal(t.Metadata, &meta) != nil || meta.BookingID == nil {
		return ""
	}

	return strings.TrimSpace(fmt.Sprint(meta.BookingID))
}

func (t Transaction) Succeeded() bool {
	return t.Status == "success"
}

type Paystack interface {
	Configured() bool
	Initialize(ctx context.Context, req InitializeRequest) (Authorization, error)
	Verify(ctx context.Context, reference string) (Transaction, error)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	http      *http.Client
	baseURL   string
	secretKey string
	otel      otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Paystack {
	timeout := time.Duration(cfg.Payment.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.Payment.Paystack.BaseURL, "/"),
		secretKey: strings.TrimSpace(cfg.Payment.Paystack.SecretKey),
		otel:      otel,
	}
}

func (c *client) Configured() bool {
	return c.secretKey != ""
}

func (c *client) Initialize(ctx context.Context, req InitializeRequest) (res Authorization, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Initialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking_id", req.Metadata.BookingID)

	err = c.do(ctx, http.MethodPost, pathInitialize, req, &res)

	return res, err
}

func (c *client) Verify(ctx context.Context, reference string) (res Transaction, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("reference", reference)

	err = c.do(ctx, http.MethodGet, pathVerify+url.PathEscape(reference), nil, &res)

	return res, err
}

func (c *client) do(ctx context.Context, method, path string, payload, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal paystack request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create paystack request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.secretKey)

	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("paystack request failed")

		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read paystack response: %w", err)
	}

	var env envelope

	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || !env.Status {
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("message", env.Message).Msg("paystack rejected request")

		return &APIError{StatusCode: resp.StatusCode, Payload: decodePayload(raw)}
	}

	if len(env.Data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}

	return nil
}

func decodePayload(raw []byte) any {
	var payload any
	if json.Unmarshal(raw, &payload) != nil {
		return nil
	}

	return payload
}
