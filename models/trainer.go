package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trainer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	Phone     string `gorm:"size:20"`
	Specialty string `gorm:"size:100"`
	HireDate  *time.Time

	Sessions     []TrainingSession     `gorm:"foreignKey:TrainerID"`
	Availability []TrainerAvailability `gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// TrainerAvailability is a half-open [StartTime, EndTime) window during which a
// trainer accepts bookings. Windows for one trainer never overlap.
type TrainerAvailability struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TrainerID uuid.UUID `gorm:"type:uuid;index:idx_availability_trainer_start;not null"`

	StartTime time.Time `gorm:"index:idx_availability_trainer_start;not null"`
	EndTime   time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (a *TrainerAvailability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
