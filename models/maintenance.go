package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Maintenance issue lifecycle. Transitions only move forward one step:
// reported -> in_progress -> resolved.
const (
	IssueReported   = "reported"
	IssueInProgress = "in_progress"
	IssueResolved   = "resolved"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

type MaintenanceIssue struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RoomID       uuid.UUID `gorm:"type:uuid;index;not null"`
	ReportedByID uuid.UUID `gorm:"type:uuid;index;not null"`

	EquipmentName string `gorm:"size:100"`
	Description   string `gorm:"type:text;not null"`
	Priority      string `gorm:"size:10;default:'Medium'"`
	Status        string `gorm:"size:20;default:'reported'"`

	ReportedDate    time.Time `gorm:"not null"`
	ResolvedDate    *time.Time
	ResolutionNotes string `gorm:"type:text"`

	Room       Room       `gorm:"foreignKey:RoomID"`
	ReportedBy AdminStaff `gorm:"foreignKey:ReportedByID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *MaintenanceIssue) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
