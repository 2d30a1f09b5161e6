package payroll

import "testing"

func TestSlabTaxZeroAndNegative(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsNew

	if got := SlabTax(0, slabs); got != 0 {
		t.Fatalf("expected zero tax on zero income, got %v", got)
	}
	if got := SlabTax(-100, slabs); got != 0 {
		t.Fatalf("expected zero tax on negative income, got %v", got)
	}
}

func TestSlabTaxWithinFirstBracket(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsNew
	if got := SlabTax(250000, slabs); got != 0 {
		t.Fatalf("expected zero tax inside the nil-rate bracket, got %v", got)
	}
}

func TestSlabTaxAcrossBrackets(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsNew

	// 3-6L at 5% = 15000, 6-9L at 10% = 30000, 250k of 9-12L at 15% = 37500.
	if got := SlabTax(1150000, slabs); got != 82500 {
		t.Fatalf("expected 82500, got %v", got)
	}
}

func TestSlabTaxUnboundedTopBracket(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsNew

	// 15000 + 30000 + 45000 + 60000 + 500k at 30% = 150000.
	if got := SlabTax(2000000, slabs); got != 300000 {
		t.Fatalf("expected 300000, got %v", got)
	}
}

func TestSlabTaxOldSchedule(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsOld
	if got := SlabTax(400000, slabs); got != 7500 {
		t.Fatalf("expected 7500, got %v", got)
	}
}

func TestSlabTaxMonotonic(t *testing.T) {
	slabs := DefaultPolicy().IncomeTax.SlabsNew
	previous := 0.0
	for income := 0.0; income <= 3000000; income += 50000 {
		tax := SlabTax(income, slabs)
		if tax < previous {
			t.Fatalf("tax decreased at income %v: %v < %v", income, tax, previous)
		}
		previous = tax
	}
}
