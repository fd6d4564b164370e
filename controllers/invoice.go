// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceController struct {
	billing *services.BillingService
}

func NewInvoiceController(billing *services.BillingService) *InvoiceController {
	return &InvoiceController{billing: billing}
}

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"min=1"`
	UnitPrice   float64 `json:"unitPrice" binding:"min=0"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	MemberID  uuid.UUID          `json:"memberId" binding:"required"`
	SessionID *uuid.UUID         `json:"sessionId"`
	DueDate   *time.Time         `json:"dueDate"`
	Items     []InvoiceItemInput `json:"items" binding:"required,min=1"`
	Notes     string             `json:"notes"`
}

// RecordPaymentInput defines the expected JSON structure for a payment
type RecordPaymentInput struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (ic *InvoiceController) Create(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items := make([]services.InvoiceItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, services.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	in := services.CreateInvoiceInput{
		MemberID:  input.MemberID,
		SessionID: input.SessionID,
		Items:     items,
		Notes:     input.Notes,
	}
	if input.DueDate != nil {
		in.DueDate = *input.DueDate
	}

	invoice, err := ic.billing.CreateInvoice(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (ic *InvoiceController) Get(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	invoice, err := ic.billing.GetInvoice(invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// ListForMember handles GET /members/:id/invoices
func (ic *InvoiceController) ListForMember(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	invoices, err := ic.billing.ListInvoices(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (ic *InvoiceController) RecordPayment(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := ic.billing.RecordPayment(invoiceID, input.Amount, input.PaymentMethod)
	if err != nil {
		// A recorded partial payment still reports its outstanding balance.
		if errors.Is(err, services.ErrInsufficientPayment) && invoice != nil {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   err.Error(),
				"invoice": invoice,
				"balance": invoice.Balance(),
			})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
