package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockEffect_Delta(t *testing.T) {
	tests := []struct {
		name      string
		effect    StockEffect
		qty       int64
		adjustUp  bool
		wantStock int64
		wantSales int64
	}{
		{"receive forward", EffectIncrease, 5, true, 5, 0},
		{"receive reverse", EffectIncrease, 5, false, -5, 0},
		{"invoice forward", EffectSale, 3, true, -3, 3},
		{"invoice reverse", EffectSale, 3, false, 3, -3},
		{"order forward", EffectNone, 9, true, 0, 0},
		{"order reverse", EffectNone, 9, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.effect.Delta(tt.qty, tt.adjustUp)
			assert.Equal(t, tt.wantStock, d.Stock)
			assert.Equal(t, tt.wantSales, d.Sales)
		})
	}
}

func TestCounterDelta_Invert(t *testing.T) {
	d := EffectSale.Delta(4, true)
	inv := d.Invert()
	assert.Equal(t, int64(4), inv.Stock)
	assert.Equal(t, int64(-4), inv.Sales)
	assert.True(t, d.Invert().Invert() == d)
}

func TestStatusAffectsInventory(t *testing.T) {
	assert.False(t, InvoiceStatusDraft.AffectsInventory())
	assert.False(t, InvoiceStatusCancelled.AffectsInventory())
	assert.True(t, InvoiceStatusOpen.AffectsInventory())
	assert.True(t, InvoiceStatusPaid.AffectsInventory())
	assert.True(t, InvoiceStatusUnpaid.AffectsInventory())

	assert.False(t, OrderStatusDraft.AffectsInventory())
	assert.False(t, OrderStatusCancelled.AffectsInventory())
	assert.True(t, OrderStatusOpen.AffectsInventory())
	assert.True(t, OrderStatusCompleted.AffectsInventory())

	assert.False(t, CreditNoteStatusDraft.AffectsInventory())
	assert.False(t, CreditNoteStatusCancelled.AffectsInventory())
	assert.True(t, CreditNoteStatusOpen.AffectsInventory())
}

func TestDocumentStockEffects(t *testing.T) {
	companyID := newTestUUID()
	customerID := newTestUUID()
	supplierID := newTestUUID()

	inv, _ := NewInvoice(companyID, "INV-001", customerID, testDate())
	so, _ := NewSalesOrder(companyID, "SO-001", customerID, testDate())
	po, _ := NewPurchaseOrder(companyID, "PO-001", supplierID, testDate())
	rcv, _ := NewReceive(companyID, "RCV-001", supplierID, testDate())
	cn, _ := NewCreditNote(companyID, "CN-001", customerID, testDate())

	assert.Equal(t, EffectSale, inv.StockEffect())
	assert.Equal(t, EffectNone, so.StockEffect())
	assert.Equal(t, EffectNone, po.StockEffect())
	assert.Equal(t, EffectIncrease, rcv.StockEffect())
	assert.Equal(t, EffectIncrease, cn.StockEffect())
}
