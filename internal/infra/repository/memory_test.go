package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

func strPtr(s string) *string { return &s }

func TestMemoryRepository_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u := &models.User{Email: "a@example.com", Name: "A", Username: strPtr("alice"), Role: models.RoleStaff}
	require.NoError(t, repo.CreateUser(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)

	err := repo.CreateUser(ctx, &models.User{Email: "A@example.com", Name: "B"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = repo.CreateUser(ctx, &models.User{Email: "b@example.com", Name: "B", Username: strPtr("alice")})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	require.NoError(t, repo.CreateUser(ctx, &models.User{Email: "c@example.com", Name: "C"}))
	require.NoError(t, repo.CreateUser(ctx, &models.User{Email: "d@example.com", Name: "D"}), "nil usernames never collide")

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryRepository_EmailLookupIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u := &models.User{Email: "Mixed@Example.com", Name: "M"}
	require.NoError(t, repo.CreateUser(ctx, u))

	for _, email := range []string{"Mixed@Example.com", "mixed@example.com", "MIXED@EXAMPLE.COM"} {
		found, err := repo.FindUserByEmail(ctx, email)
		require.NoError(t, err, email)
		assert.Equal(t, u.ID, found.ID, email)
	}
}

func TestMemoryRepository_AssignmentPairIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	ap := &models.Assignment{ShiftID: uuid.New(), StaffID: uuid.New(), AssignedBy: uuid.New()}
	require.NoError(t, repo.CreateAssignment(ctx, ap))
	assert.False(t, ap.AssignedAt.IsZero())

	dup := &models.Assignment{ShiftID: ap.ShiftID, StaffID: ap.StaffID, AssignedBy: uuid.New()}
	assert.ErrorIs(t, repo.CreateAssignment(ctx, dup), store.ErrDuplicate)

	exists, err := repo.AssignmentExists(ctx, ap.ShiftID, ap.StaffID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryRepository_DeletedShiftLeavesDanglingAssignment(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s := &models.Shift{Title: "Day", StartTime: start, EndTime: start.Add(8 * time.Hour)}
	require.NoError(t, repo.CreateShift(ctx, s))

	staffID := uuid.New()
	require.NoError(t, repo.CreateAssignment(ctx, &models.Assignment{ShiftID: s.ID, StaffID: staffID}))

	aps, err := repo.ListAssignmentsForStaff(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, aps, 1)
	require.NotNil(t, aps[0].Shift)

	require.NoError(t, repo.DeleteShift(ctx, s.ID))
	assert.ErrorIs(t, repo.DeleteShift(ctx, s.ID), store.ErrNotFound)

	aps, err = repo.ListAssignmentsForStaff(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Nil(t, aps[0].Shift)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s := &models.Shift{Title: "Day", StartTime: start, EndTime: start.Add(time.Hour)}
	require.NoError(t, repo.CreateShift(ctx, s))

	got, err := repo.GetShift(ctx, s.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.GetShift(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Day", again.Title)
}

func TestMemoryRepository_ListShiftsSortedByStart(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	base := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for _, h := range []int{17, 9, 12} {
		start := base.Add(time.Duration(h) * time.Hour)
		require.NoError(t, repo.CreateShift(ctx, &models.Shift{Title: "s", StartTime: start, EndTime: start.Add(time.Hour)}))
	}

	shifts, err := repo.ListShifts(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 3)
	assert.Equal(t, 9, shifts[0].StartTime.Hour())
	assert.Equal(t, 12, shifts[1].StartTime.Hour())
	assert.Equal(t, 17, shifts[2].StartTime.Hour())
}

func TestMemoryRepository_AuditLogFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateAuditLog(ctx, &models.AuditLog{Action: audit.ActionAssignmentCreated, Entity: audit.EntityAssignment}))
	}
	require.NoError(t, repo.CreateAuditLog(ctx, &models.AuditLog{Action: audit.ActionShiftCreated, Entity: audit.EntityShift}))

	logs, total, err := repo.ListAuditLogs(ctx, audit.Filter{Action: audit.ActionAssignmentCreated, Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, logs, 2)

	logs, total, err = repo.ListAuditLogs(ctx, audit.Filter{Entity: audit.EntityShift, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, audit.ActionShiftCreated, logs[0].Action)
}
