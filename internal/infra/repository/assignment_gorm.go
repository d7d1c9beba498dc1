package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// --------------------------------------------------
// Overlap scan
// --------------------------------------------------

func (r *GormRepository) ListAssignmentsForStaff(
	ctx context.Context,
	staffID uuid.UUID,
) ([]models.Assignment, error) {

	var aps []models.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("staff_id = ?", staffID).
		Find(&aps).Error; err != nil {
		return nil, translate(err, "list staff assignments")
	}
	return aps, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *GormRepository) AssignmentExists(
	ctx context.Context,
	shiftID uuid.UUID,
	staffID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Assignment{}).
		Where("shift_id = ? AND staff_id = ?", shiftID, staffID).
		Count(&count).Error; err != nil {
		return false, translate(err, "count assignments")
	}
	return count > 0, nil
}

func (r *GormRepository) CreateAssignment(
	ctx context.Context,
	ap *models.Assignment,
) error {

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).
		Omit("Shift", "Staff", "Manager").
		Create(ap).Error
	return translate(err, "create assignment")
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *GormRepository) ListAssignments(
	ctx context.Context,
) ([]models.Assignment, error) {

	var aps []models.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Shift").
		Preload("Staff").
		Preload("Manager").
		Order("assigned_at ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err, "list assignments")
	}
	return aps, nil
}
