package calculator

import "math"

// DefaultCompoundingPerYear is the fixed deposit compounding frequency when none is given.
const DefaultCompoundingPerYear = 1

// SIP returns the maturity of a monthly contribution made at the end of each
// month for years (rounded to whole months).
func SIP(monthlyContribution, annualRatePercent, years float64) (float64, error) {
	err := validate(
		nonNegative("monthly_investment", monthlyContribution),
		nonNegative("annual_rate_percent", annualRatePercent),
		nonNegative("years", years),
	)
	if err != nil {
		return 0, err
	}

	months, err := monthsIn(years)
	if err != nil {
		return 0, err
	}
	if months == 0 {
		return 0, nil
	}

	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return finite("maturity", monthlyContribution*float64(months))
	}

	return finite("maturity", monthlyContribution*(math.Pow(1+r, float64(months))-1)/r)
}

// FixedDeposit returns the maturity of principal compounded
// compoundingPerYear times a year.
func FixedDeposit(principal, annualRatePercent, years float64, compoundingPerYear int) (float64, error) {
	err := validate(
		nonNegative("principal", principal),
		nonNegative("annual_rate_percent", annualRatePercent),
		nonNegative("years", years),
		atLeast("compounding_per_year", compoundingPerYear, 1),
	)
	if err != nil {
		return 0, err
	}

	n := float64(compoundingPerYear)
	return finite("maturity", principal*math.Pow(1+annualRatePercent/100/n, n*years))
}

// RecurringDeposit simulates a monthly deposit month by month. Each month the
// deposit is added first and the balance then earns one month of interest.
func RecurringDeposit(monthlyDeposit, annualRatePercent, years float64) (float64, error) {
	err := validate(
		nonNegative("monthly_deposit", monthlyDeposit),
		nonNegative("annual_rate_percent", annualRatePercent),
		nonNegative("years", years),
	)
	if err != nil {
		return 0, err
	}

	months, err := monthsIn(years)
	if err != nil {
		return 0, err
	}
	r := monthlyRate(annualRatePercent)
	balance := 0.0
	for range months {
		balance = (balance + monthlyDeposit) * (1 + r)
	}
	return finite("maturity", balance)
}

// RetirementCorpus projects currentSavings forward. Each month the balance
// grows first and the monthly addition is added after.
func RetirementCorpus(currentSavings, monthlyAddition, annualReturnPercent, years float64) (float64, error) {
	err := validate(
		nonNegative("current_savings", currentSavings),
		nonNegative("monthly_addition", monthlyAddition),
		nonNegative("annual_return_percent", annualReturnPercent),
		nonNegative("years", years),
	)
	if err != nil {
		return 0, err
	}

	months, err := monthsIn(years)
	if err != nil {
		return 0, err
	}
	r := monthlyRate(annualReturnPercent)
	balance := currentSavings
	for range months {
		balance = balance*(1+r) + monthlyAddition
	}
	return finite("corpus", balance)
}
