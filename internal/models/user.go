package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
)

// ParseRole normalizes a role name; unknown or empty input yields false.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStaff:
		return RoleStaff, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// nil usernames must not collide on the unique index
	Username     *string `gorm:"size:100;uniqueIndex" json:"username,omitempty"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Role         Role    `gorm:"size:20;not null;default:'STAFF';index" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
