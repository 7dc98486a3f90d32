package service

import (
	"context"
	"errors"
	"testing"

	"finance-engine/calculator"
	"finance-engine/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalculateLoan_WithInterest(t *testing.T) {
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c domain.Calculation) bool {
		return c.Tool == "loan"
	})).Return(nil)
	service := NewLoanService(repo)

	result, err := service.CalculateLoan(context.Background(), domain.LoanInput{
		Amount:       10000,
		InterestRate: 12,
		TermMonths:   24,
	})

	require.NoError(t, err)
	assert.Equal(t, 470.73, result.MonthlyPayment)
	assert.Equal(t, 11297.63, result.TotalPayment)
	assert.Equal(t, 1297.63, result.TotalInterest)
	assert.Empty(t, result.Schedule)
	repo.AssertExpectations(t)
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	service := NewLoanService(repo)

	result, err := service.CalculateLoan(context.Background(), domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TermMonths:   12,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculateLoan_Schedule(t *testing.T) {
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	service := NewLoanService(repo)

	result, err := service.CalculateLoan(context.Background(), domain.LoanInput{
		Amount:       10000,
		InterestRate: 12,
		TermMonths:   24,
		Schedule:     true,
	})

	require.NoError(t, err)
	require.Len(t, result.Schedule, 24)

	first := result.Schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 100.0, first.Interest)
	assert.Equal(t, 370.73, first.Principal)
	assert.Equal(t, 470.73, first.Payment)

	last := result.Schedule[23]
	assert.Equal(t, 24, last.Month)
	assert.Equal(t, 4.66, last.Interest)
	assert.Equal(t, 0.0, last.Balance)

	var principal float64
	for _, row := range result.Schedule {
		principal += row.Principal
	}
	assert.InDelta(t, 10000, principal, 0.05)
}

func TestCalculateLoan_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input domain.LoanInput
		field string
	}{
		{"zero amount", domain.LoanInput{Amount: 0, InterestRate: 10, TermMonths: 12}, "amount"},
		{"amount too large", domain.LoanInput{Amount: MaxLoanAmount + 1, InterestRate: 10, TermMonths: 12}, "amount"},
		{"negative rate", domain.LoanInput{Amount: 1000, InterestRate: -1, TermMonths: 12}, "interest_rate"},
		{"rate too large", domain.LoanInput{Amount: 1000, InterestRate: MaxInterestRate + 1, TermMonths: 12}, "interest_rate"},
		{"zero term", domain.LoanInput{Amount: 1000, InterestRate: 10, TermMonths: 0}, "term_months"},
		{"term too long", domain.LoanInput{Amount: 1000, InterestRate: 10, TermMonths: MaxTermMonths + 1}, "term_months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCalculationRepository)
			service := NewLoanService(repo)

			_, err := service.CalculateLoan(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, calculator.IsDomainViolation(err))
			var verr *calculator.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCalculateLoan_RepositoryErrorIgnored(t *testing.T) {
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("save error"))
	service := NewLoanService(repo)

	result, err := service.CalculateLoan(context.Background(), domain.LoanInput{
		Amount:       5000,
		InterestRate: 10,
		TermMonths:   12,
	})

	require.NoError(t, err)
	assert.Greater(t, result.MonthlyPayment, 0.0)
	repo.AssertExpectations(t)
}
