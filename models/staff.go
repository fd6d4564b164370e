package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminStaff carries a plain role tag; there is no authentication layer.
type AdminStaff struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	Phone     string `gorm:"size:20"`
	Role      string `gorm:"size:30;not null"` // e.g. 'manager', 'front_desk', 'maintenance'

	ReportedIssues []MaintenanceIssue `gorm:"foreignKey:ReportedByID"`

	gorm.Model
}

func (s *AdminStaff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
