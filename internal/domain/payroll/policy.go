package payroll

import "fmt"

type PFPolicy struct {
	Apply                 bool    `json:"apply" yaml:"apply"`
	EmployeeRate          float64 `json:"employeeRate" yaml:"employeeRate"`
	VoluntaryRate         float64 `json:"voluntaryRate" yaml:"voluntaryRate"`
	RestrictBaseToCeiling bool    `json:"restrictBaseToCeiling" yaml:"restrictBaseToCeiling"`
	WageCeiling           float64 `json:"wageCeiling" yaml:"wageCeiling"`
}

type ESIPolicy struct {
	Apply            bool    `json:"apply" yaml:"apply"`
	MonthlyThreshold float64 `json:"monthlyThreshold" yaml:"monthlyThreshold"`
	EmployeeRate     float64 `json:"employeeRate" yaml:"employeeRate"`
}

type PTPolicy struct {
	Apply         bool    `json:"apply" yaml:"apply"`
	MonthlyAmount float64 `json:"monthlyAmount" yaml:"monthlyAmount"`
}

type TaxPolicy struct {
	Apply             bool    `json:"apply" yaml:"apply"`
	Regime            string  `json:"regime" yaml:"regime"`
	StandardDeduction float64 `json:"standardDeduction" yaml:"standardDeduction"`
	RebateThreshold   float64 `json:"rebateThreshold" yaml:"rebateThreshold"`
	SlabsNew          []Slab  `json:"slabsNew" yaml:"slabsNew"`
	SlabsOld          []Slab  `json:"slabsOld" yaml:"slabsOld"`
	CessRate          float64 `json:"cessRate" yaml:"cessRate"`
}

// Policy is the full compensation configuration for one calculation. Values
// are passed by value everywhere; callers that want a variant copy the
// policy and change fields, the engine never mutates it.
type Policy struct {
	BasicPctOfGross float64   `json:"basicPctOfGross" yaml:"basicPctOfGross"`
	HRAPctOfBasic   float64   `json:"hraPctOfBasic" yaml:"hraPctOfBasic"`
	ProvidentFund   PFPolicy  `json:"providentFund" yaml:"providentFund"`
	StateInsurance  ESIPolicy `json:"stateInsurance" yaml:"stateInsurance"`
	ProfessionalTax PTPolicy  `json:"professionalTax" yaml:"professionalTax"`
	IncomeTax       TaxPolicy `json:"incomeTax" yaml:"incomeTax"`
}

func bound(v float64) *float64 {
	return &v
}

// DefaultPolicy returns the built-in compensation policy: a 40/50 Basic/HRA
// split with Indian statutory defaults for PF, ESI, professional tax and the
// new-regime income-tax schedule.
func DefaultPolicy() Policy {
	return Policy{
		BasicPctOfGross: 0.40,
		HRAPctOfBasic:   0.50,
		ProvidentFund: PFPolicy{
			Apply:                 true,
			EmployeeRate:          0.12,
			VoluntaryRate:         0,
			RestrictBaseToCeiling: true,
			WageCeiling:           15000,
		},
		StateInsurance: ESIPolicy{
			Apply:            true,
			MonthlyThreshold: 21000,
			EmployeeRate:     0.0075,
		},
		ProfessionalTax: PTPolicy{
			Apply:         true,
			MonthlyAmount: 200,
		},
		IncomeTax: TaxPolicy{
			Apply:             true,
			Regime:            RegimeNew,
			StandardDeduction: 50000,
			RebateThreshold:   700000,
			CessRate:          0.04,
			SlabsNew: []Slab{
				{UpTo: bound(300000), Rate: 0},
				{UpTo: bound(600000), Rate: 0.05},
				{UpTo: bound(900000), Rate: 0.10},
				{UpTo: bound(1200000), Rate: 0.15},
				{UpTo: bound(1500000), Rate: 0.20},
				{Rate: 0.30},
			},
			SlabsOld: []Slab{
				{UpTo: bound(250000), Rate: 0},
				{UpTo: bound(500000), Rate: 0.05},
				{UpTo: bound(1000000), Rate: 0.20},
				{Rate: 0.30},
			},
		},
	}
}

func (p Policy) Validate() error {
	if p.BasicPctOfGross < 0 || p.BasicPctOfGross > 1 {
		return fmt.Errorf("basicPctOfGross must be within [0,1], got %v", p.BasicPctOfGross)
	}
	if p.HRAPctOfBasic < 0 || p.HRAPctOfBasic > 1 {
		return fmt.Errorf("hraPctOfBasic must be within [0,1], got %v", p.HRAPctOfBasic)
	}
	if p.ProvidentFund.EmployeeRate < 0 || p.ProvidentFund.VoluntaryRate < 0 {
		return fmt.Errorf("provident fund rates must be non-negative")
	}
	if p.ProvidentFund.WageCeiling < 0 {
		return fmt.Errorf("provident fund wage ceiling must be non-negative")
	}
	if p.StateInsurance.MonthlyThreshold < 0 || p.StateInsurance.EmployeeRate < 0 {
		return fmt.Errorf("state insurance threshold and rate must be non-negative")
	}
	if p.ProfessionalTax.MonthlyAmount < 0 {
		return fmt.Errorf("professional tax amount must be non-negative")
	}
	tax := p.IncomeTax
	if tax.Regime != RegimeNew && tax.Regime != RegimeOld {
		return fmt.Errorf("%w: %q", ErrUnknownRegime, tax.Regime)
	}
	if tax.StandardDeduction < 0 || tax.RebateThreshold < 0 || tax.CessRate < 0 {
		return fmt.Errorf("income tax amounts must be non-negative")
	}
	if err := validateSlabs(tax.SlabsNew); err != nil {
		return fmt.Errorf("slabsNew: %w", err)
	}
	if err := validateSlabs(tax.SlabsOld); err != nil {
		return fmt.Errorf("slabsOld: %w", err)
	}
	return nil
}

func validateSlabs(slabs []Slab) error {
	if len(slabs) == 0 {
		return ErrSlabsEmpty
	}
	previous := 0.0
	for i, slab := range slabs {
		if slab.Rate < 0 {
			return fmt.Errorf("slab %d has negative rate %v", i, slab.Rate)
		}
		if slab.UpTo == nil {
			if i != len(slabs)-1 {
				return ErrSlabNotFinal
			}
			return nil
		}
		// Bounds must be strictly ascending from zero, so the first slab's
		// bound has to be positive.
		if *slab.UpTo <= previous {
			return ErrSlabOrder
		}
		previous = *slab.UpTo
	}
	return ErrSlabBoundedFinal
}

// activeSlabs picks the schedule for the configured regime. Validate
// guarantees the regime is known; old is the only regime that honours
// additional exemptions.
func (t TaxPolicy) activeSlabs() []Slab {
	if t.Regime == RegimeOld {
		return t.SlabsOld
	}
	return t.SlabsNew
}
