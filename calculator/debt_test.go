package calculator_test

import (
	"testing"

	"finance-engine/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCardBalance_OneMonth(t *testing.T) {
	balance, err := calculator.CreditCardBalance(1000, 24, 5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1020.0-51.0, balance, 1e-6)
}

func TestCreditCardBalance_ZeroMonths(t *testing.T) {
	balance, err := calculator.CreditCardBalance(1000, 24, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
}

func TestCreditCardBalance_FullPaymentClearsBalance(t *testing.T) {
	balance, err := calculator.CreditCardBalance(1000, 36, 100, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, balance, 1e-9)
}

func TestCreditCardBalance_NeverNegative(t *testing.T) {
	for _, pct := range []float64{0, 1, 2.5, 50, 99.9, 100} {
		balance, err := calculator.CreditCardBalance(750, 42, pct, 60)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, balance, 0.0, "min payment %v%%", pct)
	}
}

func TestCreditCardBalance_InvalidArguments(t *testing.T) {
	_, err := calculator.CreditCardBalance(1000, 24, 101, 1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	_, err = calculator.CreditCardBalance(1000, 24, -1, 1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	_, err = calculator.CreditCardBalance(1000, 24, 5, -1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	_, err = calculator.CreditCardBalance(-1000, 24, 5, 1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)
}
