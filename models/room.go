package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	RoomNumber string `gorm:"size:10;uniqueIndex;not null"`
	Capacity   int    `gorm:"default:0"`
	RoomType   string `gorm:"size:50"` // e.g. 'studio', 'weights', 'cardio'

	// Sessions referencing a room block its deletion; no silent orphaning.
	Sessions          []TrainingSession  `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`
	MaintenanceIssues []MaintenanceIssue `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`

	gorm.Model
}

func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
