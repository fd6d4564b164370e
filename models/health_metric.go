package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthMetric rows are append-only history; no update path exists anywhere in
// the codebase.
type HealthMetric struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	MemberID uuid.UUID `gorm:"type:uuid;index:idx_metrics_member_recorded;not null"`

	RecordedAt       time.Time `gorm:"index:idx_metrics_member_recorded;not null"`
	HeightCm         *float64
	WeightKg         *float64
	BodyFatPercent   *float64
	RestingHeartRate *int
	Notes            string `gorm:"type:text"`

	CreatedAt time.Time
}

func (h *HealthMetric) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
