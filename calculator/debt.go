package calculator

// CreditCardBalance simulates paying only the minimum for months. Interest
// accrues first, then the minimum payment is taken; a payment never exceeds
// the balance it pays down.
func CreditCardBalance(initialBalance, annualRatePercent, minPaymentPercent float64, months int) (float64, error) {
	err := validate(
		nonNegative("initial_balance", initialBalance),
		nonNegative("annual_rate_percent", annualRatePercent),
		nonNegative("min_payment_percent", minPaymentPercent),
		atLeast("months", months, 0),
		between("min_payment_percent", minPaymentPercent, 0, 100),
	)
	if err != nil {
		return 0, err
	}

	r := monthlyRate(annualRatePercent)
	balance := initialBalance
	for range months {
		balance *= 1 + r
		payment := min(balance*minPaymentPercent/100, balance)
		balance -= payment
	}
	return finite("balance", balance)
}
