package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

var errInvalidInstant = errors.New("invalid instant")

// Layouts without an offset are read in the default timezone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// parseInstant accepts RFC 3339 (with or without fractional seconds) or a
// local date-time.
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errInvalidInstant
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	loc := timezone.Location(timezone.Default())
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errInvalidInstant
}

// parseDay reads a YYYY-MM-DD filter bound in the default timezone.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, timezone.Location(timezone.Default()))
}
