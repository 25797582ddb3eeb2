// Package timezone pins application clocks to APP_TIMEZONE (an IANA name
// such as "Africa/Lagos"). Stored and returned timestamps are always UTC.
package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"salon/config"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

var location = load(config.Get().App.Timezone)

// load resolves name, falling back to UTC when it is empty or unknown.
func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, using UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone loaded")

	return loc
}

// Now is the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// ISO renders t as a UTC RFC 3339 timestamp with milliseconds.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
