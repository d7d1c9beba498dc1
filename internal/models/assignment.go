package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one staff member to one shift. Shift is nil when the
// referenced shift has been deleted; readers must tolerate that.
type Assignment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ShiftID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_shift_staff,priority:1" json:"shiftId"`
	Shift   *Shift    `gorm:"foreignKey:ShiftID" json:"shift"`

	StaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_shift_staff,priority:2;index:idx_assignment_staff" json:"staffId"`
	Staff   *User     `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	AssignedBy uuid.UUID `gorm:"type:uuid;not null" json:"assignedBy"`
	Manager    *User     `gorm:"foreignKey:AssignedBy" json:"manager,omitempty"`

	AssignedAt time.Time `gorm:"not null" json:"assignedAt"`
}
