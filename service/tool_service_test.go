package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"finance-engine/calculator"
	"finance-engine/domain"
	"finance-engine/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countingCalculation records how often it is computed
type countingCalculation struct {
	Value float64 `json:"value"`
	calls int
}

func (c *countingCalculation) Tool() calculator.Tool { return calculator.ToolBudget }

func (c *countingCalculation) Calculate() (calculator.Result, error) {
	c.calls++
	v := c.Value * 2
	return calculator.Result{Tool: calculator.ToolBudget, Amount: &v}, nil
}

func newToolService() (*ToolService, *repository.CalculationRepositoryMemory) {
	repo := repository.NewCalculationRepositoryMemory(0)
	return NewToolService(repository.NewMemoryCache(0, 0), repo, Limits{}), repo
}

func TestToolService_Calculate(t *testing.T) {
	service, repo := newToolService()
	ctx := context.Background()

	result, err := service.Calculate(ctx, &calculator.EMIInput{
		Principal:         calculator.Num(100000),
		AnnualRatePercent: calculator.Num(10),
		TenureMonths:      calculator.Num(12),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, calculator.ToolEMI, result.Tool)
	assert.InDelta(t, 8791.59, *result.Amount, 0.01)

	history, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "emi", history[0].Tool)
	assert.JSONEq(t, `{"principal":100000,"annual_rate_percent":10,"tenure_months":12}`, history[0].Input)
}

func TestToolService_CacheHitSkipsCalculation(t *testing.T) {
	service, repo := newToolService()
	ctx := context.Background()
	calc := &countingCalculation{Value: 21}

	first, err := service.Calculate(ctx, calc)
	require.NoError(t, err)
	second, err := service.Calculate(ctx, calc)
	require.NoError(t, err)

	assert.Equal(t, 1, calc.calls)
	assert.Equal(t, 42.0, *first.Amount)
	assert.Equal(t, *first.Amount, *second.Amount)

	history, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestToolService_DifferentInputsMiss(t *testing.T) {
	service, _ := newToolService()
	ctx := context.Background()

	a := &countingCalculation{Value: 1}
	b := &countingCalculation{Value: 2}
	_, err := service.Calculate(ctx, a)
	require.NoError(t, err)
	_, err = service.Calculate(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestToolService_ValidationErrorNotCached(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	repo := new(MockCalculationRepository)
	service := NewToolService(cache, repo, Limits{})

	_, err := service.Calculate(context.Background(), &calculator.EMIInput{
		Principal:         calculator.Num(-1),
		AnnualRatePercent: calculator.Num(10),
		TenureMonths:      calculator.Num(12),
	})

	require.Error(t, err)
	assert.True(t, calculator.IsDomainViolation(err))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestToolService_TypeMismatch(t *testing.T) {
	service, _ := newToolService()

	_, err := service.Calculate(context.Background(), &calculator.SIPInput{
		MonthlyInvestment: calculator.Num("lots"),
		AnnualRatePercent: calculator.Num(12),
		Years:             calculator.Num(10),
	})

	require.Error(t, err)
	assert.True(t, calculator.IsTypeMismatch(err))
}

func TestToolService_HorizonLimit(t *testing.T) {
	service := NewToolService(repository.NewMemoryCache(0, 0), repository.NewCalculationRepositoryMemory(0), Limits{MaxSimulationMonths: 120})

	_, err := service.Calculate(context.Background(), &calculator.RDInput{
		MonthlyDeposit:    calculator.Num(100),
		AnnualRatePercent: calculator.Num(7),
		Years:             calculator.Num(11),
	})
	require.Error(t, err)
	assert.True(t, calculator.IsDomainViolation(err))
	var verr *calculator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "horizon", verr.Field)

	_, err = service.Calculate(context.Background(), &calculator.RDInput{
		MonthlyDeposit:    calculator.Num(100),
		AnnualRatePercent: calculator.Num(7),
		Years:             calculator.Num(10),
	})
	assert.NoError(t, err)
}

func TestToolService_HorizonUsesRoundedMonths(t *testing.T) {
	service, _ := newToolService()

	// 100.02 years steps exactly 1200 months
	result, err := service.Calculate(context.Background(), &calculator.RetirementInput{
		CurrentSavings:      calculator.Num(1000),
		MonthlyAddition:     calculator.Num(100),
		AnnualReturnPercent: calculator.Num(5),
		Years:               calculator.Num(100.02),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Greater(t, *result.Amount, 1000.0)
}

func TestToolService_SIPHorizonLimit(t *testing.T) {
	service, repo := newToolService()

	_, err := service.Calculate(context.Background(), &calculator.SIPInput{
		MonthlyInvestment: calculator.Num(500),
		AnnualRatePercent: calculator.Num(0),
		Years:             calculator.Num(1e18),
	})

	require.Error(t, err)
	assert.True(t, calculator.IsDomainViolation(err))
	var verr *calculator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "horizon", verr.Field)

	history, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestToolService_UnreadableHorizonReportedByCalculator(t *testing.T) {
	service, _ := newToolService()

	_, err := service.Calculate(context.Background(), &calculator.CreditCardInput{
		InitialBalance:    calculator.Num(1000),
		AnnualRatePercent: calculator.Num(36),
		MinPaymentPercent: calculator.Num(5),
	})

	require.Error(t, err)
	assert.True(t, calculator.IsTypeMismatch(err))
}

func TestToolService_CacheFailuresAreNotFatal(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, errors.New("connection refused"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	service := NewToolService(cache, repo, Limits{})

	result, err := service.Calculate(context.Background(), &calculator.BudgetInput{
		MonthlyIncome:   calculator.Num(5000),
		MonthlyExpenses: calculator.Num(3000),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Budget)
	assert.Equal(t, 1400.0, result.Budget.SuggestedSavings)
	assert.Equal(t, 600.0, result.Budget.SuggestedInvestment)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestToolService_UnreadableCacheEntryRecomputed(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("not json", true, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo := new(MockCalculationRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	service := NewToolService(cache, repo, Limits{})
	calc := &countingCalculation{Value: 5}

	result, err := service.Calculate(context.Background(), calc)

	require.NoError(t, err)
	assert.Equal(t, 10.0, *result.Amount)
	assert.Equal(t, 1, calc.calls)
}

func TestToolService_CacheKey(t *testing.T) {
	input, err := json.Marshal(&calculator.EMIInput{Principal: calculator.Num(1)})
	require.NoError(t, err)

	key := cacheKey(calculator.ToolEMI, input)
	assert.Regexp(t, `^calc:emi:[0-9a-f]{16}$`, key)
	assert.Equal(t, key, cacheKey(calculator.ToolEMI, input))
	assert.NotEqual(t, key, cacheKey(calculator.ToolSIP, input))
}

func TestToolService_HistoryLimits(t *testing.T) {
	tests := []struct {
		requested int
		expected  int
	}{
		{0, DefaultHistoryLimit},
		{-5, 1},
		{7, 7},
		{MaxHistoryLimit + 50, MaxHistoryLimit},
	}

	for _, tt := range tests {
		repo := new(MockCalculationRepository)
		repo.On("Recent", mock.Anything, tt.expected).Return([]domain.Calculation{}, nil)
		service := NewToolService(repository.NewMemoryCache(0, 0), repo, Limits{})

		_, err := service.History(context.Background(), tt.requested)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	}
}
