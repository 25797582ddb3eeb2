package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"salon/infras/postgres"
	"salon/transport/http/response"
)

const (
	checkTimeout = 2 * time.Second

	statusOK   = "ok"
	statusDown = "down"
)

type Check func(ctx context.Context) error

type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks map[string]Check
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		},
	})
}

func NewWithChecks(checks map[string]Check) Handler {
	return Handler{checks: checks}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health pings every dependency and answers 503 if any is unreachable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	report := Report{Status: statusOK, Checks: make(map[string]string, len(handler.checks))}

	for name, check := range handler.checks {
		if err := check(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("health check failed")

			report.Status = statusDown
			report.Checks[name] = statusDown

			continue
		}

		report.Checks[name] = statusOK
	}

	if report.Status != statusOK {
		response.WithJSON(w, http.StatusServiceUnavailable, report)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}
