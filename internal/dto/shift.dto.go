package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// ShiftDTO repeats the id as shiftId for clients that read it under that name.
type ShiftDTO struct {
	models.Shift
	ShiftID uuid.UUID `json:"shiftId"`
}

func NewShiftDTO(s *models.Shift) ShiftDTO {
	return ShiftDTO{Shift: *s, ShiftID: s.ID}
}
