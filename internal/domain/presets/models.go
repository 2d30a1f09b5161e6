package presets

import "paycalc/internal/domain/payroll"

// Preset is a stored employee default used to pre-fill a calculation:
// pure data, no logic.
type Preset struct {
	ID           string                  `json:"id" yaml:"id"`
	Name         string                  `json:"name" yaml:"name"`
	MonthlyGross float64                 `json:"monthlyGross" yaml:"monthlyGross"`
	Allowances   payroll.FixedAllowances `json:"fixedAllowances" yaml:"fixedAllowances"`
}
