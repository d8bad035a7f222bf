package trade

import (
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineInput is the raw quantity and unit price submitted for one line.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// LineResult is a calculated line: quantity rounded to a whole unit,
// unit price rounded to cents, amount rounded to cents.
type LineResult struct {
	Quantity  int64
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Totals holds the derived monetary fields of a document.
type Totals struct {
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	Net            decimal.Decimal
	GSTAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

// CalculateTotals derives the full set of monetary fields for a document
// from its GST rate, discount rate and line inputs. It is pure: no side
// effects, same inputs always produce the same outputs.
//
// Per line: quantity is rounded half-even to a whole number, unit price
// half-even to 2 places, and amount = quantity * price rounded to 2 places.
// The document total is recomputed from the rounded quantity and price of
// every line, NOT by summing the per-line rounded amounts; summing rounded
// amounts would accumulate rounding carry across lines.
//
// All monetary outputs use banker's rounding (round half to even) at 2
// decimal places. grand_total = net * (1 + gst/100); the discount is taken
// before GST.
func CalculateTotals(gstRate, discountRate decimal.Decimal, lines []LineInput) (Totals, []LineResult, error) {
	if gstRate.IsNegative() || discountRate.IsNegative() {
		return Totals{}, nil, shared.ErrNegativeAmount
	}

	results := make([]LineResult, 0, len(lines))
	sum := decimal.Zero
	for _, line := range lines {
		if line.Quantity.IsNegative() || line.UnitPrice.IsNegative() {
			return Totals{}, nil, shared.ErrNegativeAmount
		}
		qty := line.Quantity.RoundBank(0)
		price := line.UnitPrice.RoundBank(2)
		product := qty.Mul(price)
		results = append(results, LineResult{
			Quantity:  qty.IntPart(),
			UnitPrice: price,
			Amount:    product.RoundBank(2),
		})
		sum = sum.Add(product)
	}

	total := sum.RoundBank(2)
	discountFraction := discountRate.Div(oneHundred)
	net := sum.Mul(decimal.NewFromInt(1).Sub(discountFraction))
	gstFraction := gstRate.Div(oneHundred)

	return Totals{
		TotalAmount:    total,
		DiscountAmount: sum.Mul(discountFraction).RoundBank(2),
		Net:            net.RoundBank(2),
		GSTAmount:      net.Mul(gstFraction).RoundBank(2),
		GrandTotal:     net.Mul(decimal.NewFromInt(1).Add(gstFraction)).RoundBank(2),
	}, results, nil
}
