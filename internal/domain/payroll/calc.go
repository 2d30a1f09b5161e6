package payroll

import "math"

// round is the engine's money rounding: half away from zero, which is what
// math.Round does. Every intermediate figure is rounded before it feeds the
// next step, so cumulative drift is deterministic.
func round(v float64) float64 {
	return math.Round(v)
}

func prorationFactor(paymentDays, monthDays int) float64 {
	if monthDays < 1 {
		monthDays = 1
	}
	factor := float64(paymentDays) / float64(monthDays)
	return math.Min(1, math.Max(0, factor))
}

func lineTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return round(total)
}

func scaleLines(items []LineItem, by float64) []LineItem {
	if len(items) == 0 {
		return nil
	}
	scaled := make([]LineItem, len(items))
	for i, item := range items {
		scaled[i] = LineItem{Name: item.Name, Amount: round(item.Amount * by)}
	}
	return scaled
}

func pfContribution(p PFPolicy, basicFull, factor float64) (employee, voluntary float64) {
	if !p.Apply {
		return 0, 0
	}
	base := basicFull * factor
	if p.RestrictBaseToCeiling {
		base = math.Min(base, p.WageCeiling)
	}
	employee = round(base * p.EmployeeRate)
	if p.VoluntaryRate > 0 {
		voluntary = round(base * p.VoluntaryRate)
	}
	return employee, voluntary
}

// Calculate derives the complete monthly and annual payroll breakdown for
// one employee. It is a pure, total function: no I/O, no mutation of its
// arguments, and no failure mode over finite inputs. Policy problems surface
// through Policy.Validate before this point; input problems surface only as
// advisory flags on the result.
func Calculate(input PayInput, policy Policy) Result {
	factor := prorationFactor(input.PaymentDays, input.MonthDays)
	gross := input.MonthlyGross

	// Full-month split. Special absorbs whatever the gross has left after
	// Basic, HRA and the fixed allowances, clamped at zero: the gross is a
	// soft target, never a hard ceiling.
	basicFull := round(gross * policy.BasicPctOfGross)
	hraFull := round(basicFull * policy.HRAPctOfBasic)
	fixedFull := round(input.Allowances.Total())
	specialRaw := gross - (basicFull + hraFull + fixedFull)
	specialFull := round(math.Max(0, specialRaw))

	basic := round(basicFull * factor)
	hra := round(hraFull * factor)
	special := round(specialFull * factor)

	customEarningsTotal := lineTotal(input.CustomEarnings)
	customDeductionsTotal := lineTotal(input.CustomDeductions)

	// Fixed allowances and custom line items are attendance-independent.
	grossPayable := basic + hra + special + fixedFull + customEarningsTotal

	pf, vpf := pfContribution(policy.ProvidentFund, basicFull, factor)

	// Eligibility is a monthly-threshold test on the un-prorated gross; the
	// contribution itself is charged on what is actually payable.
	esiEligible := policy.StateInsurance.Apply && gross <= policy.StateInsurance.MonthlyThreshold
	var esi float64
	if esiEligible {
		esi = round(grossPayable * policy.StateInsurance.EmployeeRate)
	}

	var flatTax float64
	if policy.ProfessionalTax.Apply {
		flatTax = round(policy.ProfessionalTax.MonthlyAmount)
	}

	annualTax, tds := projectIncomeTax(gross, input.AdditionalExemptionsAnnual, policy.IncomeTax)

	totalDeductions := pf + vpf + esi + flatTax + tds + customDeductionsTotal
	netPay := grossPayable - totalDeductions

	monthly := MonthlyBreakdown{
		Earnings: Earnings{
			Basic:      basic,
			HRA:        hra,
			Special:    special,
			Conveyance: input.Allowances.Conveyance,
			Medical:    input.Allowances.Medical,
			Lunch:      input.Allowances.Lunch,
			Custom:     scaleLines(input.CustomEarnings, 1),
		},
		GrossPayable: grossPayable,
		Deductions: Deductions{
			ProvidentFund:   pf,
			VoluntaryPF:     vpf,
			StateInsurance:  esi,
			ProfessionalTax: flatTax,
			IncomeTax:       tds,
			Custom:          scaleLines(input.CustomDeductions, 1),
		},
		TotalDeductions:       totalDeductions,
		NetPay:                netPay,
		CustomEarningsTotal:   customEarningsTotal,
		CustomDeductionsTotal: customDeductionsTotal,
	}

	annual := annualView(input, policy, annualViewInput{
		basicFull:             basicFull,
		hraFull:               hraFull,
		specialFull:           specialFull,
		fixedFull:             fixedFull,
		customEarningsTotal:   customEarningsTotal,
		customDeductionsTotal: customDeductionsTotal,
		esiEligible:           esiEligible,
		flatTax:               flatTax,
		annualTax:             annualTax,
	})

	return Result{
		ProratedFactor: factor,
		Monthly:        monthly,
		Annual:         annual,
		Flags: Flags{
			NegativeNet:                netPay < 0,
			StateInsuranceEligible:     esiEligible,
			FixedAllowancesExceedGross: specialRaw < 0,
		},
	}
}

// projectIncomeTax annualizes the full monthly gross (never the prorated
// figure, this is a forward projection) and runs it through the configured
// regime. Additional exemptions count only under the old regime; under the
// new regime a taxable income at or below the rebate threshold zeroes the
// core tax outright.
func projectIncomeTax(monthlyGross, additionalExemptionsAnnual float64, tax TaxPolicy) (annualTax, monthlyTDS float64) {
	if !tax.Apply {
		return 0, 0
	}
	annualGross := monthlyGross * monthsPerYear
	exemptions := 0.0
	if tax.Regime == RegimeOld {
		exemptions = additionalExemptionsAnnual
	}
	taxable := math.Max(0, annualGross-tax.StandardDeduction-exemptions)
	core := SlabTax(taxable, tax.activeSlabs())
	if tax.Regime == RegimeNew && taxable <= tax.RebateThreshold {
		core = 0
	}
	annualTax = round(core * (1 + tax.CessRate))
	monthlyTDS = round(annualTax / monthsPerYear)
	return annualTax, monthlyTDS
}

type annualViewInput struct {
	basicFull             float64
	hraFull               float64
	specialFull           float64
	fixedFull             float64
	customEarningsTotal   float64
	customDeductionsTotal float64
	esiEligible           bool
	flatTax               float64
	annualTax             float64
}

// annualView recomputes the statutory deductions at full attendance and
// scales everything to a year. It deliberately ignores the proration factor:
// the annual projection describes a full, un-prorated year.
func annualView(input PayInput, policy Policy, v annualViewInput) AnnualBreakdown {
	pfFull, vpfFull := pfContribution(policy.ProvidentFund, v.basicFull, 1)

	grossPayableFull := v.basicFull + v.hraFull + v.specialFull + v.fixedFull + v.customEarningsTotal
	var esiFull float64
	if v.esiEligible {
		esiFull = round(grossPayableFull * policy.StateInsurance.EmployeeRate)
	}

	annualGross := monthsPerYear * grossPayableFull
	totalDeductions := monthsPerYear*(pfFull+vpfFull+esiFull+v.flatTax+v.customDeductionsTotal) + v.annualTax

	return AnnualBreakdown{
		Earnings: Earnings{
			Basic:      monthsPerYear * v.basicFull,
			HRA:        monthsPerYear * v.hraFull,
			Special:    monthsPerYear * v.specialFull,
			Conveyance: monthsPerYear * input.Allowances.Conveyance,
			Medical:    monthsPerYear * input.Allowances.Medical,
			Lunch:      monthsPerYear * input.Allowances.Lunch,
			Custom:     scaleLines(input.CustomEarnings, monthsPerYear),
		},
		Gross: annualGross,
		Deductions: Deductions{
			ProvidentFund:   monthsPerYear * pfFull,
			VoluntaryPF:     monthsPerYear * vpfFull,
			StateInsurance:  monthsPerYear * esiFull,
			ProfessionalTax: monthsPerYear * v.flatTax,
			IncomeTax:       v.annualTax,
			Custom:          scaleLines(input.CustomDeductions, monthsPerYear),
		},
		TotalDeductions: totalDeductions,
		NetPay:          annualGross - totalDeductions,
		TaxProjected:    v.annualTax,
	}
}
