package payroll

type LineItem struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// FixedAllowances are attendance-independent entitlements. They are paid in
// full regardless of the proration factor.
type FixedAllowances struct {
	Conveyance float64 `json:"conveyance" yaml:"conveyance"`
	Medical    float64 `json:"medical" yaml:"medical"`
	Lunch      float64 `json:"lunch" yaml:"lunch"`
}

func (a FixedAllowances) Total() float64 {
	return a.Conveyance + a.Medical + a.Lunch
}

// PayInput carries everything the engine needs for one calculation. All
// numeric fields must be finite; the transport layer coerces anything else
// to zero before the engine sees it.
type PayInput struct {
	MonthlyGross               float64         `json:"monthlyGross"`
	Allowances                 FixedAllowances `json:"fixedAllowances"`
	MonthDays                  int             `json:"monthDays"`
	PaymentDays                int             `json:"paymentDays"`
	AdditionalExemptionsAnnual float64         `json:"additionalExemptionsAnnual"`
	CustomEarnings             []LineItem      `json:"customEarnings,omitempty"`
	CustomDeductions           []LineItem      `json:"customDeductions,omitempty"`
}

type Earnings struct {
	Basic      float64    `json:"basic"`
	HRA        float64    `json:"hra"`
	Special    float64    `json:"special"`
	Conveyance float64    `json:"conveyance"`
	Medical    float64    `json:"medical"`
	Lunch      float64    `json:"lunch"`
	Custom     []LineItem `json:"custom,omitempty"`
}

type Deductions struct {
	ProvidentFund   float64    `json:"providentFund"`
	VoluntaryPF     float64    `json:"voluntaryPf"`
	StateInsurance  float64    `json:"stateInsurance"`
	ProfessionalTax float64    `json:"professionalTax"`
	IncomeTax       float64    `json:"incomeTax"`
	Custom          []LineItem `json:"custom,omitempty"`
}

type MonthlyBreakdown struct {
	Earnings              Earnings   `json:"earnings"`
	GrossPayable          float64    `json:"grossPayable"`
	Deductions            Deductions `json:"deductions"`
	TotalDeductions       float64    `json:"totalDeductions"`
	NetPay                float64    `json:"netPay"`
	CustomEarningsTotal   float64    `json:"customEarningsTotal"`
	CustomDeductionsTotal float64    `json:"customDeductionsTotal"`
}

// AnnualBreakdown is a full-year projection at full attendance. It is not
// the prorated monthly view multiplied by twelve.
type AnnualBreakdown struct {
	Earnings        Earnings   `json:"earnings"`
	Gross           float64    `json:"gross"`
	Deductions      Deductions `json:"deductions"`
	TotalDeductions float64    `json:"totalDeductions"`
	NetPay          float64    `json:"netPay"`
	TaxProjected    float64    `json:"taxProjected"`
}

// Flags are advisory, never errors. The engine still returns a result when
// any of them is set.
type Flags struct {
	NegativeNet                bool `json:"negativeNet"`
	StateInsuranceEligible     bool `json:"stateInsuranceEligible"`
	FixedAllowancesExceedGross bool `json:"fixedAllowancesExceedGross"`
}

type Result struct {
	ProratedFactor float64          `json:"proratedFactor"`
	Monthly        MonthlyBreakdown `json:"monthly"`
	Annual         AnnualBreakdown  `json:"annual"`
	Flags          Flags            `json:"flags"`
}
