package helpers

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// YearOrDefault parses a year query value, falling back to the default for
// empty or non-numeric input.
func YearOrDefault(value string, defaultYear int) int {
	if value == "" {
		return defaultYear
	}
	year, err := strconv.Atoi(value)
	if err != nil || year <= 0 {
		return defaultYear
	}
	return year
}
