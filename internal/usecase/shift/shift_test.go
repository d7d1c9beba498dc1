package shift

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type countingRecorder struct {
	created int
}

func (r *countingRecorder) RecordAssignment(string)          {}
func (r *countingRecorder) RecordShiftCreated()              { r.created++ }
func (r *countingRecorder) RecordOverlapCheck(time.Duration) {}

func TestCreateShift(t *testing.T) {
	repo := repository.NewMemoryRepository()
	rec := &countingRecorder{}
	uc := NewCreateShift(repo, nil, rec)
	ctx := context.Background()

	brt := time.FixedZone("BRT", -3*60*60)
	manager := uuid.New()

	s, err := uc.Execute(ctx, CreateShiftInput{
		Title:     "  Morning  ",
		StartTime: time.Date(2026, 3, 2, 6, 0, 0, 0, brt),
		EndTime:   time.Date(2026, 3, 2, 14, 0, 0, 0, brt),
		CreatedBy: manager,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "Morning", s.Title)
	assert.Equal(t, time.UTC, s.StartTime.Location())
	assert.Equal(t, 9, s.StartTime.Hour())
	assert.Equal(t, manager, s.CreatedBy)
	assert.Equal(t, 1, rec.created)

	stored, err := repo.GetShift(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, stored.EndTime.Equal(s.EndTime))
}

func TestCreateShift_RejectsInvalidInterval(t *testing.T) {
	repo := repository.NewMemoryRepository()
	rec := &countingRecorder{}
	uc := NewCreateShift(repo, nil, rec)
	ctx := context.Background()

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"start after end", at.Add(time.Hour), at},
		{"zero length", at, at},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, CreateShiftInput{Title: "x", StartTime: tc.start, EndTime: tc.end})
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidInterval))
			kind, _ := httperr.KindOf(err)
			assert.Equal(t, httperr.KindValidation, kind)
		})
	}

	shifts, err := repo.ListShifts(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts)
	assert.Zero(t, rec.created)
}

func TestCreateShift_RejectsBlankTitle(t *testing.T) {
	uc := NewCreateShift(repository.NewMemoryRepository(), nil, nil)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), CreateShiftInput{
		Title:     "   ",
		StartTime: at,
		EndTime:   at.Add(time.Hour),
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeTitleRequired))
}

func TestGetAndDeleteShift(t *testing.T) {
	repo := repository.NewMemoryRepository()
	dispatcher := audit.NewDispatcher(audit.New(repo))
	ctx := context.Background()

	s := models.Shift{
		Title:     "S",
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateShift(ctx, &s))

	got, err := NewGetShift(repo).Execute(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "S", got.Title)

	del := NewDeleteShift(repo, dispatcher)
	require.NoError(t, del.Execute(ctx, s.ID, uuid.New()))

	_, err = NewGetShift(repo).Execute(ctx, s.ID)
	assert.True(t, httperr.IsBusiness(err, CodeShiftNotFound))

	err = del.Execute(ctx, s.ID, uuid.New())
	assert.True(t, httperr.IsBusiness(err, CodeShiftNotFound))

	dispatcher.Close()
	logs, total, err := repo.ListAuditLogs(ctx, audit.Filter{Action: audit.ActionShiftDeleted})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, s.ID, *logs[0].EntityID)
}

func TestListShifts_SortedByStart(t *testing.T) {
	repo := repository.NewMemoryRepository()
	create := NewCreateShift(repo, nil, nil)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, h := range []int{14, 6, 22} {
		_, err := create.Execute(ctx, CreateShiftInput{
			Title:     "s",
			StartTime: day.Add(time.Duration(h) * time.Hour),
			EndTime:   day.Add(time.Duration(h+1) * time.Hour),
		})
		require.NoError(t, err)
	}

	shifts, err := NewListShifts(repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 3)
	assert.Equal(t, 6, shifts[0].StartTime.Hour())
	assert.Equal(t, 14, shifts[1].StartTime.Hour())
	assert.Equal(t, 22, shifts[2].StartTime.Hour())
}
