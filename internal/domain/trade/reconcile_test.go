package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLine(docID uuid.UUID, qty int64, price string) LineItem {
	p := dec(price)
	return NewLineItem(docID, uuid.New(), "pcs", LineResult{
		Quantity:  qty,
		UnitPrice: p,
		Amount:    p.Mul(decimal.NewFromInt(qty)).RoundBank(2),
	})
}

func incomingFor(item LineItem, qty int64, price string) IncomingLine {
	id := item.ID
	p := dec(price)
	return IncomingLine{
		ID:        &id,
		ProductID: item.ProductID,
		Unit:      item.Unit,
		Line: LineResult{
			Quantity:  qty,
			UnitPrice: p,
			Amount:    p.Mul(decimal.NewFromInt(qty)).RoundBank(2),
		},
	}
}

func incomingNew(qty int64, price string) IncomingLine {
	p := dec(price)
	return IncomingLine{
		ProductID: uuid.New(),
		Unit:      "pcs",
		Line: LineResult{
			Quantity:  qty,
			UnitPrice: p,
			Amount:    p.Mul(decimal.NewFromInt(qty)).RoundBank(2),
		},
	}
}

func TestPlanReconciliation_UpdateCreateDelete(t *testing.T) {
	docID := uuid.New()
	kept := makeLine(docID, 2, "10.00")
	dropped := makeLine(docID, 1, "5.00")
	existing := []LineItem{kept, dropped}

	incoming := []IncomingLine{
		incomingFor(kept, 3, "10.00"), // quantity bumped
		incomingNew(4, "2.50"),        // brand new line
	}

	plan := PlanReconciliation(docID, existing, incoming)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, kept.ID, plan.Updates[0].Before.ID)
	assert.Equal(t, kept.ID, plan.Updates[0].After.ID)
	assert.Equal(t, int64(2), plan.Updates[0].Before.Quantity)
	assert.Equal(t, int64(3), plan.Updates[0].After.Quantity)

	require.Len(t, plan.Creates, 1)
	assert.Equal(t, int64(4), plan.Creates[0].Quantity)
	assert.Equal(t, docID, plan.Creates[0].DocumentID)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, dropped.ID, plan.Deletes[0].ID)
}

func TestPlanReconciliation_UnknownIDBecomesCreate(t *testing.T) {
	docID := uuid.New()
	existing := []LineItem{makeLine(docID, 2, "10.00")}

	stray := uuid.New()
	in := incomingNew(1, "1.00")
	in.ID = &stray

	plan := PlanReconciliation(docID, existing, []IncomingLine{in})

	assert.Empty(t, plan.Updates)
	require.Len(t, plan.Creates, 1)
	require.Len(t, plan.Deletes, 1)
	assert.NotEqual(t, stray, plan.Creates[0].ID)
}

func TestPlanReconciliation_DuplicateIDClaimedOnce(t *testing.T) {
	docID := uuid.New()
	item := makeLine(docID, 2, "10.00")

	plan := PlanReconciliation(docID, []LineItem{item}, []IncomingLine{
		incomingFor(item, 3, "10.00"),
		incomingFor(item, 5, "10.00"), // second claim of the same row
	})

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, int64(3), plan.Updates[0].After.Quantity)
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, int64(5), plan.Creates[0].Quantity)
	assert.Empty(t, plan.Deletes)
}

func TestPlanReconciliation_DisjointAndExhaustive(t *testing.T) {
	docID := uuid.New()
	existing := []LineItem{
		makeLine(docID, 1, "1.00"),
		makeLine(docID, 2, "2.00"),
		makeLine(docID, 3, "3.00"),
	}
	incoming := []IncomingLine{
		incomingFor(existing[0], 9, "1.00"),
		incomingNew(7, "4.00"),
	}

	plan := PlanReconciliation(docID, existing, incoming)

	// Every existing row lands in exactly one of Updates/Deletes
	seen := map[uuid.UUID]int{}
	for _, patch := range plan.Updates {
		seen[patch.Before.ID]++
	}
	for _, del := range plan.Deletes {
		seen[del.ID]++
	}
	assert.Len(t, seen, len(existing))
	for id, n := range seen {
		assert.Equal(t, 1, n, "row %s accounted %d times", id, n)
	}

	// Every incoming line lands in exactly one of Updates/Creates
	assert.Equal(t, len(incoming), len(plan.Updates)+len(plan.Creates))
}

func TestReconcilePlan_Apply(t *testing.T) {
	docID := uuid.New()
	existing := []LineItem{
		makeLine(docID, 1, "1.00"),
		makeLine(docID, 2, "2.00"),
	}
	plan := PlanReconciliation(docID, existing, []IncomingLine{
		incomingFor(existing[1], 4, "2.00"),
		incomingNew(5, "3.00"),
	})

	items := plan.Apply()
	require.Len(t, items, 2)
	assert.Equal(t, existing[1].ID, items[0].ID)
	assert.Equal(t, int64(4), items[0].Quantity)
	assert.Equal(t, int64(5), items[1].Quantity)
}

func TestPlanReconciliation_EmptyIncomingDeletesAll(t *testing.T) {
	docID := uuid.New()
	existing := []LineItem{makeLine(docID, 1, "1.00"), makeLine(docID, 2, "2.00")}

	plan := PlanReconciliation(docID, existing, nil)

	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Creates)
	assert.Len(t, plan.Deletes, 2)
	assert.Empty(t, plan.Apply())
}
