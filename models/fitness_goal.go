package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalActive    = "Active"
	GoalCompleted = "Completed"
	GoalCancelled = "Cancelled"
	GoalOnHold    = "On Hold"
)

type FitnessGoal struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	MemberID uuid.UUID `gorm:"type:uuid;index:idx_goals_member_set;not null"`

	GoalType             string `gorm:"size:50;not null"`
	TargetBodyWeightKg   *float64
	TargetBodyFatPercent *float64
	SetDate              time.Time `gorm:"index:idx_goals_member_set;not null"`
	TargetDate           *time.Time
	GoalStatus           string `gorm:"size:20;default:'Active'"`
	Notes                string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *FitnessGoal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
