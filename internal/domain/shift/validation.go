package shift

import (
	"strings"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

const (
	CodeTitleRequired   = "title_required"
	CodeInvalidInterval = "invalid_time_range"
)

// Validate enforces the shift invariants: a non-empty title and a start
// strictly before the end.
func Validate(s *models.Shift) error {
	if strings.TrimSpace(s.Title) == "" {
		return httperr.ErrValidation(CodeTitleRequired, "Shift title is required.")
	}

	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return httperr.ErrValidation(CodeInvalidInterval, "Start and end time are required.")
	}

	if !s.StartTime.Before(s.EndTime) {
		return httperr.ErrValidation(CodeInvalidInterval, "End time must be after start time.")
	}

	return nil
}
