package shift

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

const CodeShiftNotFound = "shift_not_found"

func errShiftNotFound() error {
	return httperr.ErrNotFound(CodeShiftNotFound, "Shift not found.")
}

type ListShifts struct {
	repo domain.Repository
}

func NewListShifts(repo domain.Repository) *ListShifts {
	return &ListShifts{repo: repo}
}

func (uc *ListShifts) Execute(ctx context.Context) ([]models.Shift, error) {
	return uc.repo.ListShifts(ctx)
}

type GetShift struct {
	repo domain.Repository
}

func NewGetShift(repo domain.Repository) *GetShift {
	return &GetShift{repo: repo}
}

func (uc *GetShift) Execute(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	s, err := uc.repo.GetShift(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errShiftNotFound()
	}
	return s, err
}

type DeleteShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteShift(repo domain.Repository, audit *audit.Dispatcher) *DeleteShift {
	return &DeleteShift{repo: repo, audit: audit}
}

// Execute removes the shift only. Its assignments stay behind and are
// filtered out by the read paths.
func (uc *DeleteShift) Execute(ctx context.Context, id, managerID uuid.UUID) error {
	if err := uc.repo.DeleteShift(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errShiftNotFound()
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &managerID,
		Action:   audit.ActionShiftDeleted,
		Entity:   audit.EntityShift,
		EntityID: &id,
	})
	return nil
}
