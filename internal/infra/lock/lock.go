// Package lock provides the optional per-staff advisory lock that
// serializes the assignment overlap check and write for one staff member.
package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired is returned when the wait budget runs out.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker acquires an exclusive lock on key. The returned release func is
// always non-nil on success and safe to call once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// Noop never blocks. It is the default and leaves concurrent assignment
// requests for the same staff member unserialized.
type Noop struct{}

func (Noop) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

func StaffKey(staffID string) string {
	return "shift-scheduler:staff-lock:" + staffID
}
