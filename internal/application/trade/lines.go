package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// calculatedLines is the result of running the totals calculator over a
// line request set: inputs paired with their rounded results and the
// products they reference.
type calculatedLines struct {
	totals   trade.Totals
	incoming []trade.IncomingLine
	products map[uuid.UUID]*catalog.Product
}

// calculateLines loads every referenced product, runs the totals
// calculator and pairs each request with its rounded result. Unknown
// products fail the whole request.
func calculateLines(ctx context.Context, productRepo catalog.ProductRepository, companyID uuid.UUID, gstRate, discountRate decimal.Decimal, requests []LineItemRequest) (*calculatedLines, error) {
	ids := make([]uuid.UUID, 0, len(requests))
	seen := make(map[uuid.UUID]bool, len(requests))
	for _, req := range requests {
		if !seen[req.ProductID] {
			seen[req.ProductID] = true
			ids = append(ids, req.ProductID)
		}
	}

	found, err := productRepo.FindByIDsForCompany(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	products := make(map[uuid.UUID]*catalog.Product, len(found))
	for i := range found {
		products[found[i].ID] = &found[i]
	}
	for _, id := range ids {
		if products[id] == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found: "+id.String())
		}
	}

	inputs := make([]trade.LineInput, len(requests))
	for i, req := range requests {
		inputs[i] = trade.LineInput{Quantity: req.Quantity, UnitPrice: req.UnitPrice}
	}
	totals, results, err := trade.CalculateTotals(gstRate, discountRate, inputs)
	if err != nil {
		return nil, err
	}

	incoming := make([]trade.IncomingLine, len(requests))
	for i, req := range requests {
		incoming[i] = trade.IncomingLine{
			ID:        req.ID,
			ProductID: req.ProductID,
			Unit:      products[req.ProductID].Unit,
			Line:      results[i],
		}
	}
	return &calculatedLines{totals: totals, incoming: incoming, products: products}, nil
}

// newLineItems materializes fresh rows for a document being created
func newLineItems(documentID uuid.UUID, incoming []trade.IncomingLine) []trade.LineItem {
	items := make([]trade.LineItem, len(incoming))
	for i, in := range incoming {
		items[i] = trade.NewLineItem(documentID, in.ProductID, in.Unit, in.Line)
	}
	return items
}

// requestsFromItems re-expresses the stored lines as line requests, keyed
// by their row IDs. Used when a rate changes but the lines themselves were
// not resubmitted.
func requestsFromItems(items []trade.LineItem) []LineItemRequest {
	requests := make([]LineItemRequest, len(items))
	for i := range items {
		id := items[i].ID
		requests[i] = LineItemRequest{
			ID:        &id,
			ProductID: items[i].ProductID,
			Quantity:  decimal.NewFromInt(items[i].Quantity),
			UnitPrice: items[i].UnitPrice,
		}
	}
	return requests
}

// counterDeltas accumulates per-product counter changes so each product is
// written once per transaction regardless of how many lines touch it.
type counterDeltas map[uuid.UUID]trade.CounterDelta

func (d counterDeltas) add(productID uuid.UUID, delta trade.CounterDelta) {
	prev := d[productID]
	d[productID] = trade.CounterDelta{Stock: prev.Stock + delta.Stock, Sales: prev.Sales + delta.Sales}
}

// addItems applies the effect of every line, forward or reversed
func (d counterDeltas) addItems(items []trade.LineItem, effect trade.StockEffect, adjustUp bool) {
	for _, item := range items {
		d.add(item.ProductID, effect.Delta(item.Quantity, adjustUp))
	}
}

// apply loads the touched products and writes their adjusted counters with
// an optimistic version check. Call inside a unit of work.
func (d counterDeltas) apply(ctx context.Context, productRepo catalog.ProductRepository, companyID uuid.UUID) error {
	ids := make([]uuid.UUID, 0, len(d))
	for id, delta := range d {
		if !delta.IsZero() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	products, err := productRepo.FindByIDsForCompany(ctx, companyID, ids)
	if err != nil {
		return err
	}
	if len(products) != len(ids) {
		return shared.ErrNotFound
	}
	for i := range products {
		delta := d[products[i].ID]
		products[i].AdjustCounters(delta.Stock, delta.Sales)
		products[i].IncrementVersion()
		if err := productRepo.SaveWithLock(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

// planDeltas returns the counter changes a document edit causes, honoring
// status transitions: only lines of an inventory-affecting document count.
func planDeltas(effect trade.StockEffect, plan trade.ReconcilePlan, prevItems []trade.LineItem, prevActive, nextActive bool) counterDeltas {
	deltas := make(counterDeltas)
	switch {
	case prevActive && nextActive:
		for _, patch := range plan.Updates {
			deltas.add(patch.Before.ProductID, effect.Delta(patch.Before.Quantity, false))
			deltas.add(patch.After.ProductID, effect.Delta(patch.After.Quantity, true))
		}
		deltas.addItems(plan.Creates, effect, true)
		deltas.addItems(plan.Deletes, effect, false)
	case prevActive:
		deltas.addItems(prevItems, effect, false)
	case nextActive:
		deltas.addItems(plan.Apply(), effect, true)
	}
	return deltas
}
