package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func ShiftInterval(s *models.Shift) Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// Overlaps reports whether the intervals share at least one instant.
// Back-to-back intervals (one ends exactly when the other starts) do not.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// FindOverlap returns the first resolved shift whose interval overlaps
// candidate, skipping dangling assignments and the excluded shift.
func FindOverlap(
	assignments []models.Assignment,
	candidate Interval,
	excludeShiftID *uuid.UUID,
) *models.Shift {
	for i := range assignments {
		s := assignments[i].Shift
		if s == nil {
			continue
		}
		if excludeShiftID != nil && s.ID == *excludeShiftID {
			continue
		}
		if candidate.Overlaps(ShiftInterval(s)) {
			return s
		}
	}
	return nil
}

type OverlapResult struct {
	Conflict         bool
	ConflictingShift *models.Shift
}

// OverlapChecker is stateless; any number of goroutines may share one.
type OverlapChecker struct {
	repo StaffAssignmentLister
}

func NewOverlapChecker(repo StaffAssignmentLister) *OverlapChecker {
	return &OverlapChecker{repo: repo}
}

// HasOverlap checks [start, end) against every shift staffID is assigned
// to. start < end is a precondition guaranteed by shift validation.
func (c *OverlapChecker) HasOverlap(
	ctx context.Context,
	staffID uuid.UUID,
	start time.Time,
	end time.Time,
	excludeShiftID *uuid.UUID,
) (OverlapResult, error) {

	existing, err := c.repo.ListAssignmentsForStaff(ctx, staffID)
	if err != nil {
		return OverlapResult{}, err
	}

	conflicting := FindOverlap(existing, Interval{Start: start, End: end}, excludeShiftID)
	if conflicting == nil {
		return OverlapResult{}, nil
	}

	return OverlapResult{Conflict: true, ConflictingShift: conflicting}, nil
}
