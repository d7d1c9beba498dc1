package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type UserDTO struct {
	ID       uuid.UUID   `json:"id"`
	UserID   uuid.UUID   `json:"userId"`
	Username *string     `json:"username,omitempty"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
	}
}
