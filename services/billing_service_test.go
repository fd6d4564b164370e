package services

import (
	"testing"

	"fitclub-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyPaymentSettlesExactAmount(t *testing.T) {
	inv := &models.Invoice{Total: 150, PaymentStatus: models.InvoiceUnpaid}

	settled, err := applyPayment(inv, 150)
	assert.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, models.InvoicePaid, inv.PaymentStatus)
	assert.Equal(t, 0.0, inv.Balance())
}

func TestApplyPaymentPartialReducesBalance(t *testing.T) {
	inv := &models.Invoice{Total: 150, PaymentStatus: models.InvoiceUnpaid}

	settled, err := applyPayment(inv, 60)
	assert.NoError(t, err)
	assert.False(t, settled)
	assert.Equal(t, models.InvoiceUnpaid, inv.PaymentStatus)
	assert.Equal(t, 90.0, inv.Balance())

	// A second partial payment accumulates.
	settled, err = applyPayment(inv, 90)
	assert.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, models.InvoicePaid, inv.PaymentStatus)
}

func TestApplyPaymentOverpaymentSettles(t *testing.T) {
	inv := &models.Invoice{Total: 100, PaymentStatus: models.InvoiceUnpaid}

	settled, err := applyPayment(inv, 120)
	assert.NoError(t, err)
	assert.True(t, settled)
	assert.Equal(t, models.InvoicePaid, inv.PaymentStatus)
}

func TestApplyPaymentPaidInvoiceIsIdempotent(t *testing.T) {
	inv := &models.Invoice{Total: 100, PaidAmount: 100, PaymentStatus: models.InvoicePaid}

	settled, err := applyPayment(inv, 100)
	assert.NoError(t, err)
	assert.True(t, settled)
	// No double credit.
	assert.Equal(t, 100.0, inv.PaidAmount)
}

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	inv := &models.Invoice{Total: 100, PaymentStatus: models.InvoiceUnpaid}

	for _, amount := range []float64{0, -5} {
		settled, err := applyPayment(inv, amount)
		assert.ErrorIs(t, err, ErrInsufficientPayment)
		assert.False(t, settled)
		assert.Equal(t, 0.0, inv.PaidAmount)
	}
}

func TestApplyPaymentRoundsToCents(t *testing.T) {
	inv := &models.Invoice{Total: 10, PaymentStatus: models.InvoiceUnpaid}

	settled, err := applyPayment(inv, 3.333)
	assert.NoError(t, err)
	assert.False(t, settled)
	assert.Equal(t, 3.33, inv.PaidAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, round2(10.556))
	assert.Equal(t, 10.0, round2(10.004))
	assert.Equal(t, -2.5, round2(-2.499))
}
