package calculator

// DefaultStandardDeduction applies when no standard deduction is supplied.
const DefaultStandardDeduction = 12500.0

// TaxableIncome subtracts deductions from grossIncome. When deductionCap is
// present the combined deductions are limited to it before subtracting. The
// result is never negative.
func TaxableIncome(grossIncome, standardDeduction, otherDeductions float64, deductionCap Optional[float64]) (float64, error) {
	err := validate(
		nonNegative("gross_income", grossIncome),
		nonNegative("standard_deduction", standardDeduction),
		nonNegative("other_deductions", otherDeductions),
	)
	if err != nil {
		return 0, err
	}

	total := standardDeduction + otherDeductions
	if limit, ok := deductionCap.Get(); ok {
		if err := nonNegative("deduction_cap", limit); err != nil {
			return 0, err
		}
		total = min(total, limit)
	}

	return max(0, grossIncome-total), nil
}
