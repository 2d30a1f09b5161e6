package payroll

import (
	"errors"
	"testing"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy must validate, got %v", err)
	}
}

func TestValidateRejectsBadFractions(t *testing.T) {
	policy := DefaultPolicy()
	policy.BasicPctOfGross = 1.2
	if err := policy.Validate(); err == nil {
		t.Fatal("expected error for basicPctOfGross > 1")
	}

	policy = DefaultPolicy()
	policy.HRAPctOfBasic = -0.1
	if err := policy.Validate(); err == nil {
		t.Fatal("expected error for negative hraPctOfBasic")
	}
}

func TestValidateRejectsUnknownRegime(t *testing.T) {
	policy := DefaultPolicy()
	policy.IncomeTax.Regime = "flat"
	err := policy.Validate()
	if !errors.Is(err, ErrUnknownRegime) {
		t.Fatalf("expected ErrUnknownRegime, got %v", err)
	}
}

func TestValidateRejectsBadSlabTables(t *testing.T) {
	policy := DefaultPolicy()
	policy.IncomeTax.SlabsNew = nil
	if !errors.Is(policy.Validate(), ErrSlabsEmpty) {
		t.Fatal("expected ErrSlabsEmpty")
	}

	policy = DefaultPolicy()
	policy.IncomeTax.SlabsNew = []Slab{
		{UpTo: bound(600000), Rate: 0.05},
		{UpTo: bound(300000), Rate: 0},
		{Rate: 0.30},
	}
	if !errors.Is(policy.Validate(), ErrSlabOrder) {
		t.Fatal("expected ErrSlabOrder")
	}

	policy = DefaultPolicy()
	policy.IncomeTax.SlabsNew = []Slab{
		{UpTo: bound(-100), Rate: 0},
		{UpTo: bound(600000), Rate: 0.05},
		{Rate: 0.30},
	}
	if !errors.Is(policy.Validate(), ErrSlabOrder) {
		t.Fatal("expected ErrSlabOrder for non-positive first bound")
	}

	policy = DefaultPolicy()
	policy.IncomeTax.SlabsNew = []Slab{
		{UpTo: bound(300000), Rate: 0},
		{UpTo: bound(600000), Rate: 0.05},
	}
	if !errors.Is(policy.Validate(), ErrSlabBoundedFinal) {
		t.Fatal("expected ErrSlabBoundedFinal")
	}

	policy = DefaultPolicy()
	policy.IncomeTax.SlabsNew = []Slab{
		{Rate: 0},
		{UpTo: bound(600000), Rate: 0.05},
		{Rate: 0.30},
	}
	if !errors.Is(policy.Validate(), ErrSlabNotFinal) {
		t.Fatal("expected ErrSlabNotFinal")
	}
}

func TestValidateRejectsNegativeAmounts(t *testing.T) {
	policy := DefaultPolicy()
	policy.ProfessionalTax.MonthlyAmount = -200
	if err := policy.Validate(); err == nil {
		t.Fatal("expected error for negative professional tax")
	}

	policy = DefaultPolicy()
	policy.ProvidentFund.EmployeeRate = -0.12
	if err := policy.Validate(); err == nil {
		t.Fatal("expected error for negative pf rate")
	}
}
