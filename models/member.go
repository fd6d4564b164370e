package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership statuses a member account can be in.
const (
	MembershipActive    = "Active"
	MembershipInactive  = "Inactive"
	MembershipSuspended = "Suspended"
	MembershipCancelled = "Cancelled"
)

type Member struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	FirstName   string `gorm:"size:50;not null"`
	LastName    string `gorm:"size:50;not null"`
	Email       string `gorm:"size:100;uniqueIndex;not null"`
	DateOfBirth *time.Time
	Gender      string `gorm:"size:1"`
	Phone       string `gorm:"size:20"`
	Address     string `gorm:"size:200"`

	JoinDate         time.Time `gorm:"not null"`
	MembershipStatus string    `gorm:"size:20;default:'Active'"`

	HealthMetrics []HealthMetric    `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	FitnessGoals  []FitnessGoal     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Sessions      []TrainingSession `gorm:"foreignKey:MemberID"`
	Invoices      []Invoice         `gorm:"foreignKey:MemberID"`

	gorm.Model
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
