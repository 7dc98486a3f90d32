package calculator

// Advice returned by PlanBudget
const (
	AdviceNoIncome  = "No income: seek income sources or assistance."
	AdviceOverspent = "Expenses meet or exceed income. Reduce discretionary spending, consolidate debts, or increase income."
	AdviceSplit     = "Allocate ~20% to emergency savings, ~30% to long-term investments, rest to flexible savings or debt repayment."
)

// Shares of the monthly surplus
const (
	emergencyShare = 0.20
	longTermShare  = 0.30
)

// BudgetPlan is the result of PlanBudget
type BudgetPlan struct {
	Income              float64 `json:"income"`
	Expenses            float64 `json:"expenses"`
	SuggestedSavings    float64 `json:"suggested_savings"`
	SuggestedInvestment float64 `json:"suggested_investment"`
	Advice              string  `json:"advice"`
}

// PlanBudget splits the monthly surplus 20/30/50 between emergency savings,
// long-term investment and flexible savings.
func PlanBudget(monthlyIncome, monthlyExpenses float64) (BudgetPlan, error) {
	err := validate(
		nonNegative("monthly_income", monthlyIncome),
		nonNegative("monthly_expenses", monthlyExpenses),
	)
	if err != nil {
		return BudgetPlan{}, err
	}

	plan := BudgetPlan{
		Income:   monthlyIncome,
		Expenses: monthlyExpenses,
	}

	if monthlyIncome == 0 {
		plan.Advice = AdviceNoIncome
		return plan, nil
	}

	available := monthlyIncome - monthlyExpenses
	if available <= 0 {
		plan.Advice = AdviceOverspent
		return plan, nil
	}

	emergency := available * emergencyShare
	longTerm := available * longTermShare
	flexible := available - emergency - longTerm

	plan.SuggestedSavings = Round2(emergency + flexible)
	plan.SuggestedInvestment = Round2(longTerm)
	plan.Advice = AdviceSplit
	return plan, nil
}
