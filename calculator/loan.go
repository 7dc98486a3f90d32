package calculator

import "math"

// DefaultPermissibleEMIFraction is the share of net monthly income that may go to an EMI.
const DefaultPermissibleEMIFraction = 0.5

// EMI returns the equal monthly installment that amortizes principal over
// tenureMonths at annualRatePercent.
func EMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	err := validate(
		nonNegative("principal", principal),
		nonNegative("annual_rate_percent", annualRatePercent),
		atLeast("tenure_months", tenureMonths, 1),
	)
	if err != nil {
		return 0, err
	}

	r := monthlyRate(annualRatePercent)
	n := float64(tenureMonths)
	if r == 0 {
		return principal / n, nil
	}

	growth := math.Pow(1+r, n)
	return finite("emi", principal*r*growth/(growth-1))
}

// HomeLoanEligibility returns the largest principal whose EMI fits in
// permissibleEMIFraction of the income left after expenses. It is the
// present value of that EMI over maxTenureYears.
func HomeLoanEligibility(
	monthlyIncome float64,
	monthlyExpenses float64,
	annualRatePercent float64,
	maxTenureYears int,
	permissibleEMIFraction float64,
) (float64, error) {
	err := validate(
		nonNegative("monthly_income", monthlyIncome),
		nonNegative("monthly_expenses", monthlyExpenses),
		nonNegative("annual_rate_percent", annualRatePercent),
		atLeast("max_tenure_years", maxTenureYears, 1),
		between("permissible_emi_fraction", permissibleEMIFraction, 0, 1),
	)
	if err != nil {
		return 0, err
	}

	netAvailable := monthlyIncome - monthlyExpenses
	if netAvailable <= 0 {
		return 0, nil
	}

	allowedEMI := netAvailable * permissibleEMIFraction
	n := float64(maxTenureYears * 12)
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return finite("eligible_principal", allowedEMI*n)
	}

	return finite("eligible_principal", allowedEMI*(1-math.Pow(1+r, -n))/r)
}
