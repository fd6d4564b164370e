package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionPersonal = "Personal Training"
	SessionGroup    = "Group Class"
)

// TrainingSession occupies a half-open [StartTime, EndTime) window. No two
// sessions for the same trainer or the same room may overlap; adjacent windows
// sharing an endpoint are fine. The application enforces this under row locks
// and a database trigger backstops it (see schema.go).
type TrainingSession struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	MemberID  uuid.UUID  `gorm:"type:uuid;index:idx_sessions_member_start;not null"`
	TrainerID uuid.UUID  `gorm:"type:uuid;index:idx_sessions_trainer_start;not null"`
	RoomID    *uuid.UUID `gorm:"type:uuid;index:idx_sessions_room_start"`

	StartTime time.Time `gorm:"index:idx_sessions_trainer_start;index:idx_sessions_room_start;index:idx_sessions_member_start;not null"`
	EndTime   time.Time `gorm:"not null"`

	// Maintained by the training_sessions_duration trigger.
	DurationMinutes int

	SessionType       string `gorm:"size:50;default:'Personal Training'"`
	MaxCapacity       *int   // nil for personal training
	CurrentEnrollment int    `gorm:"default:0"`
	Notes             string `gorm:"type:text"`

	Member  Member  `gorm:"foreignKey:MemberID"`
	Trainer Trainer `gorm:"foreignKey:TrainerID"`
	Room    *Room   `gorm:"foreignKey:RoomID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *TrainingSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Overlaps reports whether the session's window intersects [start, end) under
// half-open semantics: [a,b) and [c,d) overlap iff a < d and c < b.
func (s *TrainingSession) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}
