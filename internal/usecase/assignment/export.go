package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/export"
)

type Roster struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Count       int                 `json:"count"`
	Assignments []dto.AssignmentDTO `json:"assignments"`
}

type ExportRoster struct {
	list     *ListAssignments
	uploader export.Uploader
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewExportRoster(
	repo domain.Repository,
	uploader export.Uploader,
	audit *audit.Dispatcher,
) *ExportRoster {
	if uploader == nil {
		uploader = export.Disabled{}
	}
	return &ExportRoster{
		list:     NewListAssignments(repo),
		uploader: uploader,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute uploads the full resolved roster as one JSON object. It returns
// export.ErrDisabled when no bucket is configured.
func (uc *ExportRoster) Execute(
	ctx context.Context,
	managerID uuid.UUID,
) (export.Location, error) {

	items, err := uc.list.Execute(ctx)
	if err != nil {
		return export.Location{}, err
	}

	now := uc.now().UTC()
	body, err := json.Marshal(Roster{
		GeneratedAt: now,
		Count:       len(items),
		Assignments: items,
	})
	if err != nil {
		return export.Location{}, fmt.Errorf("encode roster: %w", err)
	}

	key := fmt.Sprintf("rosters/%s.json", now.Format("20060102T150405Z"))
	loc, err := uc.uploader.Upload(ctx, key, body, "application/json")
	if err != nil {
		return export.Location{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &managerID,
		Action: audit.ActionRosterExported,
		Entity: audit.EntityAssignment,
		Metadata: map[string]any{
			"bucket": loc.Bucket,
			"key":    loc.Key,
			"count":  len(items),
		},
	})

	return loc, nil
}
