package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// StaffAssignmentLister is all the overlap check needs from a store.
type StaffAssignmentLister interface {
	// ListAssignmentsForStaff returns the staff member's assignments with
	// Shift resolved, or nil when the shift no longer exists.
	ListAssignmentsForStaff(
		ctx context.Context,
		staffID uuid.UUID,
	) ([]models.Assignment, error)
}

type Repository interface {
	StaffAssignmentLister

	// -------- Lookups --------
	GetShift(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Shift, error)

	GetUser(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	// -------- Assignment --------
	AssignmentExists(
		ctx context.Context,
		shiftID uuid.UUID,
		staffID uuid.UUID,
	) (bool, error)

	// CreateAssignment returns store.ErrDuplicate when the (shift, staff)
	// pair already exists.
	CreateAssignment(
		ctx context.Context,
		ap *models.Assignment,
	) error

	// ListAssignments resolves Shift, Staff and Manager on every record.
	ListAssignments(
		ctx context.Context,
	) ([]models.Assignment, error)
}
