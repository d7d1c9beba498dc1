package shift

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type Repository interface {
	CreateShift(ctx context.Context, s *models.Shift) error

	GetShift(ctx context.Context, id uuid.UUID) (*models.Shift, error)

	// ListShifts returns every shift ordered by start time, creator resolved.
	ListShifts(ctx context.Context) ([]models.Shift, error)

	// DeleteShift removes only the shift; assignments pointing at it are
	// left in place.
	DeleteShift(ctx context.Context, id uuid.UUID) error
}
