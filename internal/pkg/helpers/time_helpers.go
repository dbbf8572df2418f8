package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration such as "24h". Empty, malformed
// and non-positive values yield fallback.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		// The global logger is used because this runs while config is loaded.
		log.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return duration
}
