package monnify

//go:generate go run go.uber.org/mock/mockgen -source=./monnify.go -destination=./mocks/monnify_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
)

const (
	pathLogin    = "/api/v1/auth/login"
	pathInit     = "/api/v1/merchant/transactions/init-transaction"
	pathQuery    = "/api/v2/merchant/transactions/query"
	currencyNGN  = "NGN"
	defaultLimit = 15 * time.Second
)

var (
	ErrNotConfigured    = errors.New("monnify credentials are not configured")
	ErrMissingReference = errors.New("paymentReference or transactionReference is required")
	ErrAuthFailed       = errors.New("failed to authenticate with Monnify")
)

// APIError is returned when Monnify answers with a non-2xx status or with
// requestSuccessful=false. Payload is the decoded response body.
type APIError struct {
	StatusCode int
	Payload    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("monnify responded with status %d", e.StatusCode)
}

// Amount accepts both JSON numbers and numeric strings.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*a = 0

		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*a = 0

		return nil
	}

	*a = Amount(v)

	return nil
}

type Metadata struct {
	BookingID    string `json:"bookingId"`
	ServiceName  string `json:"serviceName"`
	PaymentPlan  string `json:"paymentPlan"`
	AmountDueNow int64  `json:"amountDueNow"`
	Phone        string `json:"phone"`
}

// InitTransactionRequest amounts are in naira. The contract code and currency
// are filled in by the client.
type InitTransactionRequest struct {
	Amount             int64    `json:"amount"`
	CustomerName       string   `json:"customerName"`
	CustomerEmail      string   `json:"customerEmail"`
	PaymentReference   string   `json:"paymentReference"`
	PaymentDescription string   `json:"paymentDescription"`
	CurrencyCode       string   `json:"currencyCode"`
	ContractCode       string   `json:"contractCode"`
	RedirectURL        string   `json:"redirectUrl"`
	PaymentMethods     []string `json:"paymentMethods,omitempty"`
	MetaData           Metadata `json:"metaData"`
}

type Checkout struct {
	TransactionReference string `json:"transactionReference"`
	PaymentReference     string `json:"paymentReference"`
	CheckoutURL          string `json:"checkoutUrl"`
}

type Transaction struct {
	PaymentStatus        string `json:"paymentStatus"`
	PaymentReference     string `json:"paymentReference"`
	TransactionReference string `json:"transactionReference"`
	AmountPaid           Amount `json:"amountPaid"`
	Amount               Amount `json:"amount"`
}

// Status is the upper-cased payment status.
func (t Transaction) Status() string {
	return strings.ToUpper(strings.TrimSpace(t.PaymentStatus))
}

func (t Transaction) Paid() bool {
	switch t.Status() {
	case "PAID", "OVERPAID":
		return true
	default:
		return false
	}
}

// Settled is the whole-naira amount received, falling back to the
// transaction amount when amountPaid is absent.
func (t Transaction) Settled() int64 {
	amount := t.AmountPaid
	if amount == 0 {
		amount = t.Amount
	}

	return int64(float64(amount) + 0.5)
}

type Monnify interface {
	Configured() bool
	BaseURL() string
	InitTransaction(ctx context.Context, req InitTransactionRequest) (Checkout, error)
	QueryTransaction(ctx context.Context, paymentReference, transactionReference string) (Transaction, error)
	VerifySignature(body []byte, signature string) bool
}

type envelope struct {
	RequestSuccessful bool            `json:"requestSuccessful"`
	ResponseMessage   string          `json:"responseMessage"`
	ResponseCode      string          `json:"responseCode"`
	ResponseBody      json.RawMessage `json:"responseBody"`
}

type loginBody struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   Amount `json:"expiresIn"`
}

type client struct {
	http         *http.Client
	baseURL      string
	apiKey       string
	secretKey    string
	contractCode string
	tokens       *TokenCache
	otel         otel.Otel
}

func New(cfg *config.Config, tokens *TokenCache, otel otel.Otel) Monnify {
	timeout := time.Duration(cfg.Payment.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultLimit
	}

	return &client{
		http:         &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(cfg.MonnifyBaseURL(), "/"),
		apiKey:       strings.TrimSpace(cfg.Payment.Monnify.APIKey),
		secretKey:    strings.TrimSpace(cfg.Payment.Monnify.SecretKey),
		contractCode: strings.TrimSpace(cfg.Payment.Monnify.ContractCode),
		tokens:       tokens,
		otel:         otel,
	}
}

func (c *client) Configured() bool {
	return c.apiKey != "" && c.secretKey != "" && c.contractCode != ""
}

func (c *client) BaseURL() string {
	return c.baseURL
}

func (c *client) InitTransaction(ctx context.Context, req InitTransactionRequest) (res Checkout, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".monnify.InitTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("payment_reference", req.PaymentReference)

	req.ContractCode = c.contractCode
	if req.CurrencyCode == "" {
		req.CurrencyCode = currencyNGN
	}

	env, status, err := c.doAuthorized(ctx, http.MethodPost, pathInit, req)
	if err != nil {
		return res, err
	}

	if len(env.ResponseBody) > 0 {
		if err = json.Unmarshal(env.ResponseBody, &res); err != nil {
			return res, fmt.Errorf("failed to decode monnify checkout: %w", err)
		}
	}

	if res.CheckoutURL == "" {
		return res, &APIError{StatusCode: status, Payload: env}
	}

	return res, nil
}

func (c *client) QueryTransaction(ctx context.Context, paymentReference, transactionReference string) (res Transaction, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".monnify.QueryTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}

	switch {
	case strings.TrimSpace(paymentReference) != "":
		query.Set("paymentReference", strings.TrimSpace(paymentReference))
	case strings.TrimSpace(transactionReference) != "":
		query.Set("transactionReference", strings.TrimSpace(transactionReference))
	default:
		return res, ErrMissingReference
	}

	env, status, err := c.doAuthorized(ctx, http.MethodGet, pathQuery+"?"+query.Encode(), nil)
	if err != nil {
		return res, err
	}

	if len(env.ResponseBody) == 0 || string(env.ResponseBody) == "null" {
		return res, &APIError{StatusCode: status, Payload: env}
	}

	if err = json.Unmarshal(env.ResponseBody, &res); err != nil {
		return res, fmt.Errorf("failed to decode monnify transaction: %w", err)
	}

	return res, nil
}

// VerifySignature checks the monnify-signature header: the hex HMAC-SHA512 of
// the raw body keyed with the secret key, compared case-insensitively.
func (c *client) VerifySignature(body []byte, signature string) bool {
	signature = strings.ToLower(strings.TrimSpace(signature))
	if signature == "" || c.secretKey == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *client) accessToken(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	return c.tokens.Get(ctx, c.login)
}

// doAuthorized sends a bearer request. A 401 drops the cached token so the
// next call logs in again.
func (c *client) doAuthorized(ctx context.Context, method, path string, payload any) (envelope, int, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return envelope{}, 0, err
	}

	env, status, err := c.do(ctx, method, path, "Bearer "+token, payload)
	if status == http.StatusUnauthorized {
		c.tokens.Reset()
	}

	return env, status, err
}

func (c *client) login(ctx context.Context) (string, time.Duration, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(c.apiKey + ":" + c.secretKey))

	env, _, err := c.do(ctx, http.MethodPost, pathLogin, "Basic "+basic, nil)
	if err != nil {
		log.Error().Err(err).Msg("monnify login failed")

		return "", 0, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	var body loginBody
	if len(env.ResponseBody) > 0 {
		if err := json.Unmarshal(env.ResponseBody, &body); err != nil {
			log.Warn().Err(err).Msg("monnify login returned an undecodable body")
		}
	}

	if body.AccessToken == "" {
		return "", 0, ErrAuthFailed
	}

	return body.AccessToken, time.Duration(float64(body.ExpiresIn)) * time.Second, nil
}

func (c *client) do(ctx context.Context, method, path, authorization string, payload any) (envelope, int, error) {
	var env envelope

	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return env, 0, fmt.Errorf("failed to marshal monnify request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return env, 0, fmt.Errorf("failed to create monnify request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, authorization)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("monnify request failed")

		return env, 0, fmt.Errorf("monnify request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, resp.StatusCode, fmt.Errorf("failed to read monnify response: %w", err)
	}

	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || !env.RequestSuccessful {
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("message", env.ResponseMessage).Msg("monnify rejected request")

		return env, resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Payload: decodePayload(raw)}
	}

	return env, resp.StatusCode, nil
}

func decodePayload(raw []byte) any {
	var payload any
	if json.Unmarshal(raw, &payload) != nil {
		return nil
	}

	return payload
}
