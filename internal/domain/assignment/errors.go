package assignment

import (
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

const (
	CodeShiftNotFound = "shift_not_found"
	CodeStaffNotFound = "staff_not_found"
	CodeOverlap       = "shift_overlap"
	CodeDuplicate     = "duplicate_assignment"
)

func ErrShiftNotFound() error {
	return httperr.ErrNotFound(CodeShiftNotFound, "Shift not found.")
}

func ErrStaffNotFound() error {
	return httperr.ErrNotFound(CodeStaffNotFound, "Staff member not found.")
}

// ErrOverlap carries the conflicting shift so clients can show it.
func ErrOverlap(conflicting *models.Shift) error {
	return httperr.ErrConflict(
		CodeOverlap,
		"Staff member is already assigned to a shift during this time.",
		map[string]any{"conflictingShift": conflicting},
	)
}

func ErrDuplicate() error {
	return httperr.ErrConflict(
		CodeDuplicate,
		"Staff member is already assigned to this shift.",
		nil,
	)
}
