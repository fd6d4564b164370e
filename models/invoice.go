package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceUnpaid = "unpaid"
	InvoicePaid   = "paid"
)

type Invoice struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	MemberID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	SessionID *uuid.UUID `gorm:"type:uuid;index"`

	InvoiceNumber string    `gorm:"size:50;uniqueIndex;not null"`
	InvoiceDate   time.Time `gorm:"not null"`
	DueDate       time.Time

	Subtotal float64 `gorm:"type:decimal(10,2);not null"`
	Total    float64 `gorm:"type:decimal(10,2);not null"`

	PaymentStatus string  `gorm:"size:20;default:'unpaid'"`
	PaidAmount    float64 `gorm:"type:decimal(10,2);default:0.0"`
	PaymentMethod string  `gorm:"size:50"`
	PaidDate      *time.Time
	Notes         string `gorm:"type:text"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	// Cancelling a session keeps the invoice but drops the reference.
	Session *TrainingSession `gorm:"foreignKey:SessionID;constraint:OnDelete:SET NULL"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// Balance is the amount still owed on the invoice.
func (i *Invoice) Balance() float64 {
	return i.Total - i.PaidAmount
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"size:500;not null"`
	Quantity    int       `gorm:"default:1"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null"`
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}
