package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type UserSummaryDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func NewUserSummary(u *models.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

// AssignmentDTO is an assignment with its references resolved. Shift is nil
// when the shift has been deleted.
type AssignmentDTO struct {
	ID         uuid.UUID `json:"id"`
	ShiftID    uuid.UUID `json:"shiftId"`
	StaffID    uuid.UUID `json:"staffId"`
	AssignedBy uuid.UUID `json:"assignedBy"`
	AssignedAt time.Time `json:"assignedAt"`

	Shift   *models.Shift   `json:"shift"`
	Staff   *UserSummaryDTO `json:"staff"`
	Manager *UserSummaryDTO `json:"manager"`
}

func NewAssignmentDTO(ap *models.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         ap.ID,
		ShiftID:    ap.ShiftID,
		StaffID:    ap.StaffID,
		AssignedBy: ap.AssignedBy,
		AssignedAt: ap.AssignedAt,
		Shift:      ap.Shift,
		Staff:      NewUserSummary(ap.Staff),
		Manager:    NewUserSummary(ap.Manager),
	}
}
