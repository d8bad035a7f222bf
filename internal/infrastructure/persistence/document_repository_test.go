package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculatedInvoice(t *testing.T, companyID uuid.UUID, reference string, inputs ...trade.LineInput) *trade.Invoice {
	t.Helper()
	inv, err := trade.NewInvoice(companyID, reference, uuid.New(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	totals, results, err := trade.CalculateTotals(decimal.NewFromInt(7), decimal.Zero, inputs)
	require.NoError(t, err)
	items := make([]trade.LineItem, len(results))
	for i, res := range results {
		items[i] = trade.NewLineItem(inv.ID, uuid.New(), "pcs", res)
	}
	require.NoError(t, inv.ApplyCalculation(decimal.NewFromInt(7), decimal.Zero, totals, items))
	return inv
}

func TestGormInvoiceRepository_SaveAndReload(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	inv := calculatedInvoice(t, companyID, "INV-001",
		trade.LineInput{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.00")},
		trade.LineInput{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("5.00")},
	)
	require.NoError(t, repo.Save(ctx, inv))

	found, err := repo.FindByIDForCompany(ctx, companyID, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", found.Reference)
	assert.Equal(t, trade.InvoiceStatusDraft, found.Status)
	assert.Equal(t, "25.00", found.TotalAmount.StringFixed(2))
	assert.Equal(t, "1.75", found.GSTAmount.StringFixed(2))
	assert.Equal(t, "26.75", found.GrandTotal.StringFixed(2))
	assert.Equal(t, "26.75", found.BalanceDue.StringFixed(2))
	require.Len(t, found.Items, 2)
}

func TestGormInvoiceRepository_SaveReplacesRemovedItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	inv := calculatedInvoice(t, companyID, "INV-001",
		trade.LineInput{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.00")},
		trade.LineInput{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("5.00")},
	)
	require.NoError(t, repo.Save(ctx, inv))

	// drop the second line and keep the first, as an update request would
	kept := inv.Items[0]
	totals, results, err := trade.CalculateTotals(decimal.NewFromInt(7), decimal.Zero, []trade.LineInput{
		{Quantity: decimal.NewFromInt(int64(kept.Quantity)), UnitPrice: kept.UnitPrice},
	})
	require.NoError(t, err)
	kept.Quantity = results[0].Quantity
	kept.UnitPrice = results[0].UnitPrice
	kept.Amount = results[0].Amount
	require.NoError(t, inv.ApplyCalculation(decimal.NewFromInt(7), decimal.Zero, totals, []trade.LineItem{kept}))
	require.NoError(t, repo.Save(ctx, inv))

	found, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, kept.ID, found.Items[0].ID)
	assert.Equal(t, "20.00", found.TotalAmount.StringFixed(2))

	// the dropped row is really gone, not orphaned
	var orphans int64
	require.NoError(t, db.Model(&models.InvoiceItemModel{}).Where("document_id = ?", inv.ID).Count(&orphans).Error)
	assert.Equal(t, int64(1), orphans)
}

func TestGormInvoiceRepository_SaveWithLockConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	inv := calculatedInvoice(t, companyID, "INV-001",
		trade.LineInput{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("10.00")},
	)
	require.NoError(t, repo.Save(ctx, inv))

	require.NoError(t, inv.SetStatus(trade.InvoiceStatusOpen))
	inv.IncrementVersion()
	require.NoError(t, repo.SaveWithLock(ctx, inv))

	stale := *inv
	stale.Version = 2
	assert.ErrorIs(t, repo.SaveWithLock(ctx, &stale), shared.ErrConcurrencyConflict)

	found, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.InvoiceStatusOpen, found.Status)
	assert.Equal(t, 2, found.Version)
}

func TestGormReceiveRepository_PurchaseOrderLink(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormReceiveRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	receive, err := trade.NewReceive(companyID, "RCV-001", uuid.New(), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	poID := uuid.New()
	receive.LinkPurchaseOrder(&poID)
	require.NoError(t, repo.Save(ctx, receive))

	found, err := repo.FindByIDForCompany(ctx, companyID, receive.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PurchaseOrderID)
	assert.Equal(t, poID, *found.PurchaseOrderID)

	filter := shared.DefaultFilter()
	filter.Filters["purchase_order_id"] = poID
	matches, err := repo.FindAllForCompany(ctx, companyID, filter)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
