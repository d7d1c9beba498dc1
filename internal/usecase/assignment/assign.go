package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/shift-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type AssignInput struct {
	ShiftID   uuid.UUID
	StaffID   uuid.UUID
	ManagerID uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type AssignShift struct {
	repo    domain.Repository
	overlap *domain.OverlapChecker
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics metrics.Recorder
	now     func() time.Time
}

func NewAssignShift(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	rec metrics.Recorder,
) *AssignShift {
	if locker == nil {
		locker = lock.Noop{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &AssignShift{
		repo:    repo,
		overlap: domain.NewOverlapChecker(repo),
		locker:  locker,
		audit:   audit,
		metrics: rec,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AssignShift) Execute(
	ctx context.Context,
	in AssignInput,
) (*dto.AssignmentDTO, error) {

	// --------------------------------------------------
	// 1️⃣ Shift
	// --------------------------------------------------
	sh, err := uc.repo.GetShift(ctx, in.ShiftID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			uc.metrics.RecordAssignment(metrics.OutcomeShiftNotFound)
			return nil, domain.ErrShiftNotFound()
		}
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Staff
	// --------------------------------------------------
	staff, err := uc.repo.GetUser(ctx, in.StaffID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			uc.metrics.RecordAssignment(metrics.OutcomeStaffNotFound)
			return nil, domain.ErrStaffNotFound()
		}
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Check + write under the staff lock
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, lock.StaffKey(in.StaffID.String()))
	if err != nil {
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, fmt.Errorf("acquire staff lock: %w", err)
	}
	defer release()

	ap, err := uc.checkAndCreate(ctx, sh, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Resolve + side effects
	// --------------------------------------------------
	ap.Shift = sh
	ap.Staff = staff
	if manager, err := uc.repo.GetUser(ctx, in.ManagerID); err == nil {
		ap.Manager = manager
	} else {
		log.Warn().Err(err).Str("manager_id", in.ManagerID.String()).Msg("assigning manager not resolved")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ManagerID,
		Action:   audit.ActionAssignmentCreated,
		Entity:   audit.EntityAssignment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"shift_id": in.ShiftID,
			"staff_id": in.StaffID,
		},
	})
	uc.metrics.RecordAssignment(metrics.OutcomeCreated)

	out := dto.NewAssignmentDTO(ap)
	return &out, nil
}

// checkAndCreate runs the overlap and duplicate checks and the single
// write. The shift being assigned is excluded from the overlap scan so a
// repeated (shift, staff) pair is reported as a duplicate.
func (uc *AssignShift) checkAndCreate(
	ctx context.Context,
	sh *models.Shift,
	in AssignInput,
) (*models.Assignment, error) {

	started := time.Now()
	res, err := uc.overlap.HasOverlap(ctx, in.StaffID, sh.StartTime, sh.EndTime, &sh.ID)
	uc.metrics.RecordOverlapCheck(time.Since(started))
	if err != nil {
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, err
	}
	if res.Conflict {
		uc.metrics.RecordAssignment(metrics.OutcomeOverlap)
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ManagerID,
			Action:   audit.ActionAssignmentConflict,
			Entity:   audit.EntityAssignment,
			EntityID: &in.ShiftID,
			Metadata: map[string]any{
				"staff_id":             in.StaffID,
				"conflicting_shift_id": res.ConflictingShift.ID,
			},
		})
		return nil, domain.ErrOverlap(res.ConflictingShift)
	}

	exists, err := uc.repo.AssignmentExists(ctx, in.ShiftID, in.StaffID)
	if err != nil {
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, err
	}
	if exists {
		return nil, uc.duplicate(in)
	}

	ap := &models.Assignment{
		ShiftID:    in.ShiftID,
		StaffID:    in.StaffID,
		AssignedBy: in.ManagerID,
		AssignedAt: uc.now().UTC(),
	}
	if err := uc.repo.CreateAssignment(ctx, ap); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, uc.duplicate(in)
		}
		uc.metrics.RecordAssignment(metrics.OutcomeError)
		return nil, err
	}

	return ap, nil
}

func (uc *AssignShift) duplicate(in AssignInput) error {
	uc.metrics.RecordAssignment(metrics.OutcomeDuplicate)
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ManagerID,
		Action:   audit.ActionAssignmentDuplicate,
		Entity:   audit.EntityAssignment,
		EntityID: &in.ShiftID,
		Metadata: map[string]any{"staff_id": in.StaffID},
	})
	return domain.ErrDuplicate()
}
