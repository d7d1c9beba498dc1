package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

type pairKey struct {
	shiftID uuid.UUID
	staffID uuid.UUID
}

// MemoryRepository keeps every entity in process memory. It enforces the
// same unique constraints as the PostgreSQL schema and hands out copies, so
// callers can never mutate stored records.
type MemoryRepository struct {
	mu sync.RWMutex

	users       map[uuid.UUID]models.User
	shifts      map[uuid.UUID]models.Shift
	assignments map[uuid.UUID]models.Assignment
	pairs       map[pairKey]uuid.UUID
	auditLogs   []models.AuditLog

	now func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:       make(map[uuid.UUID]models.User),
		shifts:      make(map[uuid.UUID]models.Shift),
		assignments: make(map[uuid.UUID]models.Assignment),
		pairs:       make(map[pairKey]uuid.UUID),
		now:         time.Now,
	}
}

// Compile-time checks
var (
	_ assignment.Repository = (*MemoryRepository)(nil)
	_ shift.Repository      = (*MemoryRepository)(nil)
	_ user.Repository       = (*MemoryRepository)(nil)
	_ audit.Store           = (*MemoryRepository)(nil)
)

// Ping always succeeds.
func (m *MemoryRepository) Ping(context.Context) error {
	return nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (m *MemoryRepository) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return store.ErrDuplicate
		}
		if u.Username != nil && existing.Username != nil && *existing.Username == *u.Username {
			return store.ErrDuplicate
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := m.now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	m.users[u.ID] = *u
	return nil
}

func (m *MemoryRepository) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userLocked(id)
}

func (m *MemoryRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryRepository) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username != nil && *u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryRepository) ListUsersByRole(_ context.Context, role models.Role) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0)
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryRepository) userLocked(id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// --------------------------------------------------
// Shifts
// --------------------------------------------------

func (m *MemoryRepository) CreateShift(_ context.Context, s *models.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = m.now().UTC()
	}

	stored := *s
	stored.Creator = nil
	m.shifts[s.ID] = stored
	return nil
}

func (m *MemoryRepository) GetShift(_ context.Context, id uuid.UUID) (*models.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.shiftLocked(id)
	if !ok {
		return nil, store.ErrNotFound
	}
	s.Creator, _ = m.userLocked(s.CreatedBy)
	return s, nil
}

func (m *MemoryRepository) ListShifts(_ context.Context) ([]models.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		s.Creator, _ = m.userLocked(s.CreatedBy)
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (m *MemoryRepository) DeleteShift(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *MemoryRepository) shiftLocked(id uuid.UUID) (*models.Shift, bool) {
	s, ok := m.shifts[id]
	if !ok {
		return nil, false
	}
	return &s, true
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (m *MemoryRepository) ListAssignmentsForStaff(_ context.Context, staffID uuid.UUID) ([]models.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Assignment, 0)
	for _, ap := range m.assignments {
		if ap.StaffID != staffID {
			continue
		}
		ap.Shift, _ = m.shiftLocked(ap.ShiftID)
		out = append(out, ap)
	}
	return out, nil
}

func (m *MemoryRepository) AssignmentExists(_ context.Context, shiftID, staffID uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pairs[pairKey{shiftID: shiftID, staffID: staffID}]
	return ok, nil
}

func (m *MemoryRepository) CreateAssignment(_ context.Context, ap *models.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey{shiftID: ap.ShiftID, staffID: ap.StaffID}
	if _, ok := m.pairs[key]; ok {
		return store.ErrDuplicate
	}

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	if ap.AssignedAt.IsZero() {
		ap.AssignedAt = m.now().UTC()
	}

	stored := *ap
	stored.Shift, stored.Staff, stored.Manager = nil, nil, nil
	m.assignments[ap.ID] = stored
	m.pairs[key] = ap.ID
	return nil
}

func (m *MemoryRepository) ListAssignments(_ context.Context) ([]models.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Assignment, 0, len(m.assignments))
	for _, ap := range m.assignments {
		ap.Shift, _ = m.shiftLocked(ap.ShiftID)
		ap.Staff, _ = m.userLocked(ap.StaffID)
		ap.Manager, _ = m.userLocked(ap.AssignedBy)
		out = append(out, ap)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AssignedAt.Before(out[j].AssignedAt)
	})
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (m *MemoryRepository) CreateAuditLog(_ context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = m.now().UTC()
	}
	m.auditLogs = append(m.auditLogs, *entry)
	return nil
}

func (m *MemoryRepository) ListAuditLogs(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.AuditLog, 0)
	for i := len(m.auditLogs) - 1; i >= 0; i-- {
		l := m.auditLogs[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}
