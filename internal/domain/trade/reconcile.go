package trade

import (
	"time"

	"github.com/google/uuid"
)

// IncomingLine is one desired line in a document update. ID addresses the
// existing row to update; a nil or unknown ID means the line is new.
type IncomingLine struct {
	ID        *uuid.UUID
	ProductID uuid.UUID
	Unit      string
	Line      LineResult
}

// LinePatch pairs the stored line with its replacement so callers can
// reverse the old line's inventory effect before applying the new one.
type LinePatch struct {
	Before LineItem
	After  LineItem
}

// ReconcilePlan partitions a document edit into updates, creates and
// deletes. The three sets are disjoint: every existing line lands in
// exactly one of Updates/Deletes, every incoming line in exactly one of
// Updates/Creates.
type ReconcilePlan struct {
	Updates []LinePatch
	Creates []LineItem
	Deletes []LineItem
}

// PlanReconciliation matches incoming lines against existing lines by row
// ID. Lines whose ID matches an existing row become updates, lines without
// a recognizable ID become creates, and existing rows not referenced by any
// incoming line become deletes.
func PlanReconciliation(documentID uuid.UUID, existing []LineItem, incoming []IncomingLine) ReconcilePlan {
	byID := make(map[uuid.UUID]*LineItem, len(existing))
	for i := range existing {
		byID[existing[i].ID] = &existing[i]
	}

	plan := ReconcilePlan{}
	claimed := make(map[uuid.UUID]bool, len(existing))
	for _, in := range incoming {
		if in.ID != nil {
			if prev, ok := byID[*in.ID]; ok && !claimed[*in.ID] {
				claimed[*in.ID] = true
				after := *prev
				after.ProductID = in.ProductID
				after.Unit = in.Unit
				after.UnitPrice = in.Line.UnitPrice
				after.Quantity = in.Line.Quantity
				after.Amount = in.Line.Amount
				after.UpdatedAt = time.Now()
				plan.Updates = append(plan.Updates, LinePatch{Before: *prev, After: after})
				continue
			}
		}
		plan.Creates = append(plan.Creates, NewLineItem(documentID, in.ProductID, in.Unit, in.Line))
	}

	for i := range existing {
		if !claimed[existing[i].ID] {
			plan.Deletes = append(plan.Deletes, existing[i])
		}
	}
	return plan
}

// Apply returns the line set a document holds after the plan executes:
// updated rows in place of their predecessors, created rows appended,
// deleted rows gone.
func (p ReconcilePlan) Apply() []LineItem {
	items := make([]LineItem, 0, len(p.Updates)+len(p.Creates))
	for _, patch := range p.Updates {
		items = append(items, patch.After)
	}
	items = append(items, p.Creates...)
	return items
}
