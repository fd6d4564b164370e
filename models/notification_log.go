package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records each session reminder attempt. The log outlives the
// session it refers to; cancellation nulls the reference.
type NotificationLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	MemberID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	SessionID *uuid.UUID `gorm:"type:uuid;index"`

	Channel      string `gorm:"size:20"` // sms, whatsapp
	Message      string `gorm:"type:text"`
	Status       string `gorm:"size:20"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	Session *TrainingSession `gorm:"foreignKey:SessionID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
