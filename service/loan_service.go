package service

import (
	"context"
	"fmt"

	"finance-engine/calculator"
	"finance-engine/domain"
	"finance-engine/repository"

	"github.com/rs/zerolog/log"
)

// LoanService summarizes an amortizing loan and records each summary.
type LoanService struct {
	repo repository.CalculationRepository
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.CalculationRepository) *LoanService {
	return &LoanService{repo: repo}
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	emi, err := calculator.EMI(input.Amount, input.InterestRate, input.TermMonths)
	if err != nil {
		return domain.LoanResult{}, err
	}

	total := emi * float64(input.TermMonths)
	interest := total - input.Amount

	result := domain.LoanResult{
		MonthlyPayment: calculator.Round2(emi),
		TotalPayment:   calculator.Round2(total),
		TotalInterest:  calculator.Round2(interest),
	}
	if input.Schedule {
		result.Schedule = amortize(input.Amount, input.InterestRate, input.TermMonths, emi)
	}

	// Save the result (not critical if it fails)
	record, err := domain.NewCalculation(loanTool, input, result)
	if err == nil {
		err = s.repo.Save(ctx, record)
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to save loan calculation")
	}

	return result, nil
}

func validateLoan(input domain.LoanInput) error {
	switch {
	case input.Amount <= 0:
		return loanViolation("amount", "must be positive")
	case input.Amount > MaxLoanAmount:
		return loanViolation("amount", fmt.Sprintf("exceeds the maximum of $%.2f", MaxLoanAmount))
	case input.InterestRate < 0:
		return loanViolation("interest_rate", "must be non-negative")
	case input.InterestRate > MaxInterestRate:
		return loanViolation("interest_rate", fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	case input.TermMonths < MinTermMonths:
		return loanViolation("term_months", fmt.Sprintf("must be at least %d", MinTermMonths))
	case input.TermMonths > MaxTermMonths:
		return loanViolation("term_months", fmt.Sprintf("exceeds the maximum of %d months", MaxTermMonths))
	}
	return nil
}

func loanViolation(field, message string) error {
	return &calculator.ValidationError{Field: field, Message: message, Kind: calculator.ErrDomainViolation}
}

// amortize splits each installment into interest on the outstanding balance
// and principal. The last installment clears whatever balance remains.
func amortize(amount, annualRate float64, months int, emi float64) []domain.Installment {
	r := annualRate / 100 / 12
	balance := amount
	rows := make([]domain.Installment, 0, months)

	for month := 1; month <= months; month++ {
		interest := balance * r
		principal := emi - interest
		if month == months {
			principal = balance
		}
		balance -= principal

		rows = append(rows, domain.Installment{
			Month:     month,
			Payment:   calculator.Round2(principal + interest),
			Principal: calculator.Round2(principal),
			Interest:  calculator.Round2(interest),
			Balance:   calculator.Round2(max(balance, 0)),
		})
	}
	return rows
}
