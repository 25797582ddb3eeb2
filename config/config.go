package config

import (
	"cmp"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"3000"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name          string `envconfig:"APP_NAME"        default:"ceo-salon"`
		Timezone      string `envconfig:"TIMEZONE"`
		PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
		CORS          struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		Upload struct {
			ImageMaxMB   float64 `envconfig:"IMAGE_MAX_MB"   default:"5"`
			ReceiptMaxMB float64 `envconfig:"RECEIPT_MAX_MB" default:"8"`
		} `envconfig:"UPLOAD"`
	} `envconfig:"APP"`

	Admin struct {
		SecretPasscode       string `envconfig:"SECRET_PASSCODE"         default:"CHANGE_ME_ADMIN_PASSCODE"`
		AccessCodeTTLMinutes int    `envconfig:"ACCESS_CODE_TTL_MINUTES" default:"10"`
		TokenSecret          string `envconfig:"TOKEN_SECRET"`
		TokenExpireMin       int    `envconfig:"TOKEN_EXPIRE_MIN"        default:"720"`
	} `envconfig:"ADMIN"`

	Payment struct {
		HTTPTimeoutSeconds int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"15"`
		Paystack           struct {
			SecretKey string `envconfig:"SECRET_KEY"`
			BaseURL   string `envconfig:"BASE_URL"   default:"https://api.paystack.co"`
		} `envconfig:"PAYSTACK"`
		Monnify struct {
			APIKey       string `envconfig:"API_KEY"`
			SecretKey    string `envconfig:"SECRET_KEY"`
			ContractCode string `envconfig:"CONTRACT_CODE"`
			Env          string `envconfig:"ENV"           default:"live"`
			BaseURL      string `envconfig:"BASE_URL"`
		} `envconfig:"MONNIFY"`
	} `envconfig:"PAYMENT"`

	Bank struct {
		Name            string `envconfig:"NAME"             default:"GTBank"`
		AccountNumber   string `envconfig:"ACCOUNT_NUMBER"   default:"0204661552"`
		AccountName     string `envconfig:"ACCOUNT_NAME"     default:"CEO Saloon"`
		ReferencePrefix string `envconfig:"REFERENCE_PREFIX" default:"CEOSALOON"`
	} `envconfig:"BANK"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Lock struct {
		TTLSeconds int `envconfig:"TTL_SECONDS" default:"10"`
	} `envconfig:"LOCK"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers           []string `envconfig:"BROKERS"`
		NotificationTopic string   `envconfig:"NOTIFICATION_TOPIC" default:"booking.notifications"`
		SASL              struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresEndpoint is one side of the read/write pool pair.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// PostgresDSN renders a lib/pq URL for endpoint with the database prefix
// applied. extra is merged into the query string.
func (c *Config) PostgresDSN(endpoint PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", cmp.Or(endpoint.SSLMode, "disable"))

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + c.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// MonnifyBaseURL resolves the Monnify host: an explicit override first, then
// the sandbox or live host for the configured environment.
func (c *Config) MonnifyBaseURL() string {
	if c.Payment.Monnify.BaseURL != "" {
		return c.Payment.Monnify.BaseURL
	}

	if strings.EqualFold(strings.TrimSpace(c.Payment.Monnify.Env), "sandbox") {
		return "https://sandbox.monnify.com"
	}

	return "https://api.monnify.com"
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Init reads an optional .env file and then the process environment. Only
// the first call does any work.
func Init() error {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("failed to read environment: %w", err)

			return
		}

		log.Info().Str("env", conf.Server.Env).Msg("Configuration loaded")
	})

	return loadErr
}

// Get returns the process configuration, exiting if it cannot be read.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	return &conf
}
