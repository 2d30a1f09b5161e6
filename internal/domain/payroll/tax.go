package payroll

import "math"

// Slab is one bracket of a progressive tax schedule. A nil UpTo means the
// bracket has no upper bound; the final slab of every schedule must be
// unbounded.
type Slab struct {
	UpTo *float64 `json:"upTo,omitempty" yaml:"upTo,omitempty"`
	Rate float64  `json:"rate" yaml:"rate"`
}

// SlabTax evaluates an ascending slab schedule against a taxable amount.
// Each bracket taxes only the span of income falling inside it. The result
// carries no rounding; rounding is the caller's responsibility. Schedules
// that are not strictly ascending produce a finite but meaningless total.
func SlabTax(taxable float64, slabs []Slab) float64 {
	if taxable <= 0 {
		return 0
	}
	var total float64
	previous := 0.0
	for _, slab := range slabs {
		if slab.UpTo == nil {
			if span := taxable - previous; span > 0 {
				total += span * slab.Rate
			}
			break
		}
		upper := *slab.UpTo
		if span := math.Min(taxable, upper) - previous; span > 0 {
			total += span * slab.Rate
		}
		if taxable <= upper {
			break
		}
		previous = upper
	}
	return total
}
