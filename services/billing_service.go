package services

import (
	"math"
	"strings"
	"time"

	"fitclub-backend/models"
	"fitclub-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillingService struct {
	db *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{db: db}
}

type InvoiceItemInput struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

type CreateInvoiceInput struct {
	MemberID  uuid.UUID
	SessionID *uuid.UUID
	DueDate   time.Time
	Items     []InvoiceItemInput
	Notes     string
}

// CreateInvoice creates an unpaid invoice with snapshotted line prices.
func (s *BillingService) CreateInvoice(in CreateInvoiceInput) (*models.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, validationErrorf("an invoice needs at least one item")
	}

	var subtotal float64
	items := make([]models.InvoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, validationErrorf("item description is required")
		}
		if item.Quantity <= 0 {
			return nil, validationErrorf("item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, validationErrorf("item unit price cannot be negative")
		}
		lineTotal := round2(item.UnitPrice * float64(item.Quantity))
		subtotal += lineTotal
		items = append(items, models.InvoiceItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  lineTotal,
		})
	}
	subtotal = round2(subtotal)
	if subtotal <= 0 {
		return nil, validationErrorf("invoice total must be positive")
	}

	now := time.Now()
	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, 30)
	}
	if utils.DaysBetween(now, dueDate) < 0 {
		return nil, validationErrorf("due date cannot be before the invoice date")
	}

	invoice := &models.Invoice{
		MemberID:      in.MemberID,
		SessionID:     in.SessionID,
		InvoiceNumber: "INV-" + now.Format("20060102") + "-" + utils.GenerateRandomString(6),
		InvoiceDate:   now,
		DueDate:       dueDate,
		Subtotal:      subtotal,
		Total:         subtotal,
		PaymentStatus: models.InvoiceUnpaid,
		Notes:         strings.TrimSpace(in.Notes),
		Items:         items,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.Select("id").First(&member, "id = ?", in.MemberID).Error; err != nil {
			return ErrReferentialViolation
		}
		if in.SessionID != nil {
			var session models.TrainingSession
			if err := tx.First(&session, "id = ?", *in.SessionID).Error; err != nil {
				return ErrReferentialViolation
			}
			if session.MemberID != in.MemberID {
				return validationErrorf("session does not belong to this member")
			}
		}
		if err := tx.Create(invoice).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// applyPayment applies amount to the invoice. Paying an already-paid invoice is
// a no-op (never a double credit); a positive partial amount is recorded and
// settled=false tells the caller the balance is still outstanding.
func applyPayment(inv *models.Invoice, amount float64) (settled bool, err error) {
	if inv.PaymentStatus == models.InvoicePaid {
		return true, nil
	}
	if amount <= 0 {
		return false, ErrInsufficientPayment
	}

	inv.PaidAmount = round2(inv.PaidAmount + amount)
	if inv.PaidAmount >= inv.Total {
		inv.PaymentStatus = models.InvoicePaid
		return true, nil
	}
	return false, nil
}

// RecordPayment applies a payment inside a transaction holding the invoice row
// lock. A payment covering the balance flips the invoice to paid; a partial
// payment is committed with the balance reduced and reported via
// ErrInsufficientPayment alongside the updated invoice.
func (s *BillingService) RecordPayment(invoiceID uuid.UUID, amount float64, method string) (*models.Invoice, error) {
	var invoice models.Invoice
	var settled bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").First(&invoice, "id = ?", invoiceID).Error; err != nil {
			return translateDBError(err)
		}

		alreadyPaid := invoice.PaymentStatus == models.InvoicePaid

		var err error
		settled, err = applyPayment(&invoice, amount)
		if err != nil {
			return err
		}
		if alreadyPaid {
			// Idempotent: nothing to write.
			return nil
		}

		if method != "" {
			invoice.PaymentMethod = strings.TrimSpace(method)
		}
		if settled {
			now := time.Now()
			invoice.PaidDate = &now
		}
		if err := tx.Save(&invoice).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !settled {
		return &invoice, ErrInsufficientPayment
	}
	return &invoice, nil
}

func (s *BillingService) GetInvoice(invoiceID uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Items").First(&invoice, "id = ?", invoiceID).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &invoice, nil
}

// ListInvoices returns a member's invoices, newest first.
func (s *BillingService) ListInvoices(memberID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Preload("Items").Where("member_id = ?", memberID).
		Order("invoice_date DESC").Find(&invoices).Error; err != nil {
		return nil, translateDBError(err)
	}
	return invoices, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
