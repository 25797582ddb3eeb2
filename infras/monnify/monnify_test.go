package monnify_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/config"
	"salon/infras/monnify"
	"salon/infras/otel/mocks"
)

const (
	apiKey       = "MK_TEST"
	secretKey    = "SECRET"
	contractCode = "1234567890"
)

func newClient(baseURL string) monnify.Monnify {
	cfg := &config.Config{}
	cfg.Payment.Monnify.BaseURL = baseURL
	cfg.Payment.Monnify.APIKey = apiKey
	cfg.Payment.Monnify.SecretKey = secretKey
	cfg.Payment.Monnify.ContractCode = contractCode
	cfg.Payment.HTTPTimeoutSeconds = 2

	return monnify.New(cfg, monnify.NewTokenCache(nil), mocks.NewOtel())
}

type fakeMonnify struct {
	logins  atomic.Int32
	handler http.HandlerFunc
}

func (f *fakeMonnify) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v1/auth/login" {
		f.logins.Add(1)

		user, pass, ok := r.BasicAuth()
		if !ok || user != apiKey || pass != secretKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"requestSuccessful":false,"responseMessage":"bad credentials"}`))

			return
		}

		_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":{"accessToken":"tok","expiresIn":3600}}`))

		return
	}

	if r.Header.Get("Authorization") != "Bearer tok" {
		w.WriteHeader(http.StatusUnauthorized)

		return
	}

	f.handler(w, r)
}

func TestMonnify_Configured(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.Monnify.APIKey = apiKey
	cfg.Payment.Monnify.SecretKey = secretKey

	client := monnify.New(cfg, monnify.NewTokenCache(nil), mocks.NewOtel())
	assert.False(t, client.Configured())
	assert.Equal(t, "https://api.monnify.com", client.BaseURL())

	_, err := client.QueryTransaction(context.Background(), "ref", "")
	assert.ErrorIs(t, err, monnify.ErrNotConfigured)
}

func TestMonnify_InitTransaction(t *testing.T) {
	fake := &fakeMonnify{handler: func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/merchant/transactions/init-transaction", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, contractCode, body["contractCode"])
		assert.Equal(t, "NGN", body["currencyCode"])
		assert.Equal(t, []any{"USSD"}, body["paymentMethods"])

		_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":{"transactionReference":"MNFY|1","paymentReference":"CEOSALOON-1","checkoutUrl":"https://checkout.monnify.com/1"}}`))
	}}

	server := httptest.NewServer(fake)
	defer server.Close()

	client := newClient(server.URL)

	res, err := client.InitTransaction(context.Background(), monnify.InitTransactionRequest{
		Amount:           7500,
		PaymentReference: "CEOSALOON-1",
		PaymentMethods:   []string{"USSD"},
	})
	require.NoError(t, err)

	assert.Equal(t, "MNFY|1", res.TransactionReference)
	assert.Equal(t, "https://checkout.monnify.com/1", res.CheckoutURL)

	_, err = client.InitTransaction(context.Background(), monnify.InitTransactionRequest{PaymentReference: "CEOSALOON-2", PaymentMethods: []string{"USSD"}})
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.logins.Load(), "token is reused while valid")
}

func TestMonnify_InitTransactionWithoutCheckoutURL(t *testing.T) {
	server := httptest.NewServer(&fakeMonnify{handler: func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":{"transactionReference":"MNFY|1"}}`))
	}})
	defer server.Close()

	_, err := newClient(server.URL).InitTransaction(context.Background(), monnify.InitTransactionRequest{})

	var apiErr *monnify.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestMonnify_LoginFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payment.Monnify.APIKey = "wrong"
	cfg.Payment.Monnify.SecretKey = secretKey
	cfg.Payment.Monnify.ContractCode = contractCode

	server := httptest.NewServer(&fakeMonnify{})
	defer server.Close()

	cfg.Payment.Monnify.BaseURL = server.URL

	client := monnify.New(cfg, monnify.NewTokenCache(nil), mocks.NewOtel())

	_, err := client.QueryTransaction(context.Background(), "ref", "")
	assert.ErrorIs(t, err, monnify.ErrAuthFailed)

	var apiErr *monnify.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestMonnify_UndecodableLoginBodyIsLogged(t *testing.T) {
	var logs bytes.Buffer

	prev := log.Logger
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() { log.Logger = prev })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":"not an object"}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).QueryTransaction(context.Background(), "ref", "")
	require.ErrorIs(t, err, monnify.ErrAuthFailed)

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "monnify login returned an undecodable body")
}

func TestMonnify_QueryTransaction(t *testing.T) {
	tests := []struct {
		name       string
		paymentRef string
		txRef      string
		wantQuery  string
	}{
		{name: "payment reference wins", paymentRef: "CEOSALOON-1", txRef: "MNFY|1", wantQuery: "paymentReference=CEOSALOON-1"},
		{name: "transaction reference", txRef: "MNFY|1", wantQuery: "transactionReference=MNFY%7C1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(&fakeMonnify{handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/merchant/transactions/query", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)

				_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":{"paymentStatus":"paid","paymentReference":"CEOSALOON-1","transactionReference":"MNFY|1","amountPaid":"7500.40","amount":7500}}`))
			}})
			defer server.Close()

			res, err := newClient(server.URL).QueryTransaction(context.Background(), tt.paymentRef, tt.txRef)
			require.NoError(t, err)

			assert.True(t, res.Paid())
			assert.Equal(t, "PAID", res.Status())
			assert.Equal(t, int64(7500), res.Settled())
		})
	}

	t.Run("missing references", func(t *testing.T) {
		server := httptest.NewServer(&fakeMonnify{})
		defer server.Close()

		_, err := newClient(server.URL).QueryTransaction(context.Background(), " ", "")
		assert.ErrorIs(t, err, monnify.ErrMissingReference)
	})

	t.Run("unsuccessful", func(t *testing.T) {
		server := httptest.NewServer(&fakeMonnify{handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"requestSuccessful":false,"responseMessage":"not found"}`))
		}})
		defer server.Close()

		_, err := newClient(server.URL).QueryTransaction(context.Background(), "ref", "")

		var apiErr *monnify.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "not found", apiErr.Payload.(map[string]any)["responseMessage"])
	})
}

func TestMonnify_RejectedTokenIsRefreshed(t *testing.T) {
	var calls atomic.Int32

	fake := &fakeMonnify{handler: func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"requestSuccessful":false,"responseMessage":"token expired"}`))

			return
		}

		_, _ = w.Write([]byte(`{"requestSuccessful":true,"responseBody":{"paymentStatus":"PAID","amount":5000}}`))
	}}

	server := httptest.NewServer(fake)
	defer server.Close()

	client := newClient(server.URL)

	_, err := client.QueryTransaction(context.Background(), "ref", "")
	require.Error(t, err)

	res, err := client.QueryTransaction(context.Background(), "ref", "")
	require.NoError(t, err)
	assert.True(t, res.Paid())
	assert.Equal(t, int32(2), fake.logins.Load())
}

func TestTransaction_Settled(t *testing.T) {
	tests := []struct {
		name string
		tx   monnify.Transaction
		paid bool
		want int64
	}{
		{name: "overpaid", tx: monnify.Transaction{PaymentStatus: "OVERPAID", AmountPaid: 8000.6}, paid: true, want: 8001},
		{name: "falls back to amount", tx: monnify.Transaction{PaymentStatus: "PAID", Amount: 5000}, paid: true, want: 5000},
		{name: "pending", tx: monnify.Transaction{PaymentStatus: " pending "}, paid: false, want: 0},
		{name: "failed", tx: monnify.Transaction{PaymentStatus: "FAILED", Amount: 5000}, paid: false, want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.paid, tt.tx.Paid())
			assert.Equal(t, tt.want, tt.tx.Settled())
		})
	}
}

func TestMonnify_VerifySignature(t *testing.T) {
	client := newClient("http://127.0.0.1:0")
	body := []byte(`{"eventType":"SUCCESSFUL_TRANSACTION","eventData":{"paymentReference":"CEOSALOON-1"}}`)

	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature(body, signature))
	assert.True(t, client.VerifySignature(body, strings.ToUpper(signature)))
	assert.False(t, client.VerifySignature(body, ""))
	assert.False(t, client.VerifySignature(append(body, ' '), signature))
}

func TestTokenCache(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	cache := monnify.NewTokenCache(func() time.Time { return now })

	calls := 0
	login := func(context.Context) (string, time.Duration, error) {
		calls++

		return "tok", time.Minute, nil
	}

	token, err := cache.Get(context.Background(), login)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	now = now.Add(20 * time.Second)
	_, _ = cache.Get(context.Background(), login)
	assert.Equal(t, 1, calls, "token valid beyond the refresh buffer")

	now = now.Add(15 * time.Second)
	_, _ = cache.Get(context.Background(), login)
	assert.Equal(t, 2, calls, "token within 30s of expiry is refreshed")

	_, err = monnify.NewTokenCache(nil).Get(context.Background(), func(context.Context) (string, time.Duration, error) {
		return "", 0, errors.New("down")
	})
	assert.Error(t, err)
}
