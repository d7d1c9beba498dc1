package shift

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type CreateShiftInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	CreatedBy   uuid.UUID
}

type CreateShift struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics metrics.Recorder
}

func NewCreateShift(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rec metrics.Recorder,
) *CreateShift {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &CreateShift{
		repo:    repo,
		audit:   audit,
		metrics: rec,
	}
}

// Execute validates the interval before anything is written; instants are
// stored in UTC.
func (uc *CreateShift) Execute(
	ctx context.Context,
	in CreateShiftInput,
) (*models.Shift, error) {

	s := &models.Shift{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		StartTime:   in.StartTime.UTC(),
		EndTime:     in.EndTime.UTC(),
		CreatedBy:   in.CreatedBy,
	}

	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateShift(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   audit.ActionShiftCreated,
		Entity:   audit.EntityShift,
		EntityID: &s.ID,
		Metadata: map[string]any{
			"title":      s.Title,
			"start_time": s.StartTime,
			"end_time":   s.EndTime,
		},
	})
	uc.metrics.RecordShiftCreated()

	return s, nil
}
