package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"salon/config"
	"salon/shared/logger"
)

// capture routes the global logger into a buffer for the rest of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev, level, format := log.Logger, zerolog.GlobalLevel(), zerolog.TimeFieldFormat
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	return &buf
}

func TestInitLogger(t *testing.T) {
	capture(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"verbose":  zerolog.TraceLevel,
		"":         zerolog.NoLevel,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			capture(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = in
			logger.SetLogLevel(cfg)

			assert.Equal(t, want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("paystack verify timed out"))

	assert.Contains(t, buf.String(), "paystack verify timed out")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetOutput(t *testing.T) {
	buf := capture(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	logger.SetOutput(cfg)

	log.Info().Msg("still buffered")
	assert.Contains(t, buf.String(), "still buffered")
}

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "empty", secret: "", want: ""},
		{name: "short secret fully hidden", secret: "abcd", want: "****"},
		{name: "long secret keeps tail", secret: "sk_test_123456", want: "**********3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Mask(tt.secret))
		})
	}
}
