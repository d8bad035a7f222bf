package trade

// StockEffect classifies how a document kind moves product counters.
type StockEffect int

const (
	// EffectNone leaves counters untouched (sales and purchase orders).
	EffectNone StockEffect = iota
	// EffectIncrease raises stock (receives, credit notes).
	EffectIncrease
	// EffectSale lowers stock and raises the sales counter (invoices).
	EffectSale
)

// CounterDelta is the signed change to apply to a product's counters.
type CounterDelta struct {
	Stock int64
	Sales int64
}

// IsZero reports whether the delta changes nothing
func (d CounterDelta) IsZero() bool {
	return d.Stock == 0 && d.Sales == 0
}

// Invert returns the delta that undoes this one
func (d CounterDelta) Invert() CounterDelta {
	return CounterDelta{Stock: -d.Stock, Sales: -d.Sales}
}

// Delta returns the counter change for a line of the given quantity.
// adjustUp=true applies the document's forward effect, adjustUp=false
// reverses it; updates reverse the old line before applying the new one so
// a quantity edit never double counts.
func (e StockEffect) Delta(quantity int64, adjustUp bool) CounterDelta {
	var d CounterDelta
	switch e {
	case EffectIncrease:
		d = CounterDelta{Stock: quantity}
	case EffectSale:
		d = CounterDelta{Stock: -quantity, Sales: quantity}
	default:
		return CounterDelta{}
	}
	if !adjustUp {
		d = d.Invert()
	}
	return d
}
