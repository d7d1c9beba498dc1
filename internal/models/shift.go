package models

import (
	"time"

	"github.com/google/uuid"
)

type Shift struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	StartTime time.Time `gorm:"not null;index" json:"startTime"`
	EndTime   time.Time `gorm:"not null;index" json:"endTime"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	Creator   *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
