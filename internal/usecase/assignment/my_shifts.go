package assignment

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type MyShifts struct {
	repo domain.StaffAssignmentLister
}

func NewMyShifts(repo domain.StaffAssignmentLister) *MyShifts {
	return &MyShifts{repo: repo}
}

// Execute lists the staff member's shifts by start time. Assignments whose
// shift no longer exists are dropped. Times are rendered in loc.
func (uc *MyShifts) Execute(
	ctx context.Context,
	staffID uuid.UUID,
	loc *time.Location,
) ([]models.Shift, error) {

	aps, err := uc.repo.ListAssignmentsForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if loc == nil {
		loc = time.UTC
	}

	shifts := make([]models.Shift, 0, len(aps))
	for _, ap := range aps {
		if ap.Shift == nil {
			continue
		}
		s := *ap.Shift
		s.StartTime = s.StartTime.In(loc)
		s.EndTime = s.EndTime.In(loc)
		shifts = append(shifts, s)
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].StartTime.Before(shifts[j].StartTime)
	})

	return shifts, nil
}
