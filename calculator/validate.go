package calculator

import "math"

// validate returns the first non-nil error, in argument order.
func validate(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// nonNegative is the guard every calculator applies to its float arguments.
func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return typeMismatch(field, "must be a real number")
	}
	if v < 0 {
		return domainViolation(field, "must be non-negative")
	}
	return nil
}

func atLeast(field string, v, floor int) error {
	if v < floor {
		return domainViolation(field, "must be a whole number >= %d", floor)
	}
	return nil
}

// between checks lo <= v <= hi. NaN fails the comparison and is reported as a type mismatch.
func between(field string, v, lo, hi float64) error {
	if math.IsNaN(v) {
		return typeMismatch(field, "must be a real number")
	}
	if v < lo || v > hi {
		return domainViolation(field, "must be between %g and %g", lo, hi)
	}
	return nil
}

// MaxMonths is the longest duration, in months, a year-based calculator accepts.
const MaxMonths = maxWhole

// monthsIn converts fractional years to whole months, rounding half to even.
func monthsIn(years float64) (int, error) {
	months := YearsToMonths(years)
	if months > MaxMonths {
		return 0, domainViolation("years", "must be at most %g months", float64(MaxMonths))
	}
	return int(months), nil
}

// YearsToMonths is the month count a year-based calculator steps for years.
func YearsToMonths(years float64) float64 {
	return math.RoundToEven(years * 12)
}

// finite rejects a result that overflowed float64.
func finite(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainViolation(field, "is too large to represent")
	}
	return v, nil
}

// monthlyRate converts an annual percentage into the per-month fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}
