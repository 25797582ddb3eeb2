package di

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"salon/infras/kafka"
	"salon/infras/monnify"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/shared/timezone"
	"salon/transport/http"
)

const otelFlushTimeout = 5 * time.Second

func monnifyTokenCache() *monnify.TokenCache {
	return monnify.NewTokenCache(timezone.Now)
}

// closers releases the long-lived connections after the server drains.
// Spans are flushed last so the shutdown itself is traced.
func closers(db *postgres.Connection, producer kafka.Client, tracer otel.Otel) []http.Closer {
	return []http.Closer{
		db.Close,
		func() {
			if err := producer.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close kafka producer")
			}
		},
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), otelFlushTimeout)
			defer cancel()

			if err := tracer.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("failed to flush traces")
			}
		},
	}
}
