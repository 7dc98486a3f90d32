package calculator

// EMIInput is the input bundle for EMI
type EMIInput struct {
	Principal         Number `json:"principal"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	TenureMonths      Number `json:"tenure_months"`
}

func (in *EMIInput) Tool() Tool { return ToolEMI }

func (in *EMIInput) Calculate() (Result, error) {
	principal, err := in.Principal.Float("principal")
	if err != nil {
		return Result{}, err
	}
	rate, err := in.AnnualRatePercent.Float("annual_rate_percent")
	if err != nil {
		return Result{}, err
	}
	months, err := in.TenureMonths.Whole("tenure_months", 1)
	if err != nil {
		return Result{}, err
	}

	emi, err := EMI(principal, rate, months)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolEMI, emi), nil
}

// SIPInput is the input bundle for SIP
type SIPInput struct {
	MonthlyInvestment Number `json:"monthly_investment"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	Years             Number `json:"years"`
}

func (in *SIPInput) Tool() Tool { return ToolSIP }

func (in *SIPInput) Horizon() (float64, error) {
	return yearsHorizon(in.Years)
}

func (in *SIPInput) Calculate() (Result, error) {
	contribution, rate, years, err := floats3(
		in.MonthlyInvestment, "monthly_investment",
		in.AnnualRatePercent, "annual_rate_percent",
		in.Years, "years",
	)
	if err != nil {
		return Result{}, err
	}

	maturity, err := SIP(contribution, rate, years)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolSIP, maturity), nil
}

// FDInput is the input bundle for FixedDeposit. CompoundingPerYear defaults
// to DefaultCompoundingPerYear.
type FDInput struct {
	Principal          Number `json:"principal"`
	AnnualRatePercent  Number `json:"annual_rate_percent"`
	Years              Number `json:"years"`
	CompoundingPerYear Number `json:"compounding_per_year"`
}

func (in *FDInput) Tool() Tool { return ToolFD }

func (in *FDInput) Calculate() (Result, error) {
	principal, rate, years, err := floats3(
		in.Principal, "principal",
		in.AnnualRatePercent, "annual_rate_percent",
		in.Years, "years",
	)
	if err != nil {
		return Result{}, err
	}
	n, err := in.CompoundingPerYear.WholeOr("compounding_per_year", 1, DefaultCompoundingPerYear)
	if err != nil {
		return Result{}, err
	}

	maturity, err := FixedDeposit(principal, rate, years, n)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolFD, maturity), nil
}

// RDInput is the input bundle for RecurringDeposit
type RDInput struct {
	MonthlyDeposit    Number `json:"monthly_deposit"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	Years             Number `json:"years"`
}

func (in *RDInput) Tool() Tool { return ToolRD }

func (in *RDInput) Horizon() (float64, error) {
	return yearsHorizon(in.Years)
}

func (in *RDInput) Calculate() (Result, error) {
	deposit, rate, years, err := floats3(
		in.MonthlyDeposit, "monthly_deposit",
		in.AnnualRatePercent, "annual_rate_percent",
		in.Years, "years",
	)
	if err != nil {
		return Result{}, err
	}

	maturity, err := RecurringDeposit(deposit, rate, years)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolRD, maturity), nil
}

// RetirementInput is the input bundle for RetirementCorpus
type RetirementInput struct {
	CurrentSavings      Number `json:"current_savings"`
	MonthlyAddition     Number `json:"monthly_addition"`
	AnnualReturnPercent Number `json:"annual_return_percent"`
	Years               Number `json:"years"`
}

func (in *RetirementInput) Tool() Tool { return ToolRetirement }

func (in *RetirementInput) Horizon() (float64, error) {
	return yearsHorizon(in.Years)
}

func (in *RetirementInput) Calculate() (Result, error) {
	savings, err := in.CurrentSavings.Float("current_savings")
	if err != nil {
		return Result{}, err
	}
	addition, rate, years, err := floats3(
		in.MonthlyAddition, "monthly_addition",
		in.AnnualReturnPercent, "annual_return_percent",
		in.Years, "years",
	)
	if err != nil {
		return Result{}, err
	}

	corpus, err := RetirementCorpus(savings, addition, rate, years)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolRetirement, corpus), nil
}

// LoanEligibilityInput is the input bundle for HomeLoanEligibility.
// PermissibleEMIFraction defaults to DefaultPermissibleEMIFraction.
type LoanEligibilityInput struct {
	MonthlyIncome          Number `json:"monthly_income"`
	MonthlyExpenses        Number `json:"monthly_expenses"`
	AnnualRatePercent      Number `json:"annual_rate_percent"`
	MaxTenureYears         Number `json:"max_tenure_years"`
	PermissibleEMIFraction Number `json:"permissible_emi_fraction"`
}

func (in *LoanEligibilityInput) Tool() Tool { return ToolLoanEligibility }

func (in *LoanEligibilityInput) Calculate() (Result, error) {
	income, expenses, rate, err := floats3(
		in.MonthlyIncome, "monthly_income",
		in.MonthlyExpenses, "monthly_expenses",
		in.AnnualRatePercent, "annual_rate_percent",
	)
	if err != nil {
		return Result{}, err
	}
	years, err := in.MaxTenureYears.Whole("max_tenure_years", 1)
	if err != nil {
		return Result{}, err
	}
	fraction, err := in.PermissibleEMIFraction.FloatOr("permissible_emi_fraction", DefaultPermissibleEMIFraction)
	if err != nil {
		return Result{}, err
	}

	principal, err := HomeLoanEligibility(income, expenses, rate, years, fraction)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolLoanEligibility, principal), nil
}

// CreditCardInput is the input bundle for CreditCardBalance
type CreditCardInput struct {
	InitialBalance    Number `json:"initial_balance"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	MinPaymentPercent Number `json:"min_payment_percent"`
	Months            Number `json:"months"`
}

func (in *CreditCardInput) Tool() Tool { return ToolCreditCard }

func (in *CreditCardInput) Horizon() (float64, error) {
	return in.Months.Float("months")
}

func (in *CreditCardInput) Calculate() (Result, error) {
	balance, rate, pct, err := floats3(
		in.InitialBalance, "initial_balance",
		in.AnnualRatePercent, "annual_rate_percent",
		in.MinPaymentPercent, "min_payment_percent",
	)
	if err != nil {
		return Result{}, err
	}
	months, err := in.Months.Whole("months", 0)
	if err != nil {
		return Result{}, err
	}

	outstanding, err := CreditCardBalance(balance, rate, pct, months)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolCreditCard, outstanding), nil
}

// TaxableIncomeInput is the input bundle for TaxableIncome. An unset
// DeductionCap means no cap.
type TaxableIncomeInput struct {
	GrossIncome       Number `json:"gross_income"`
	StandardDeduction Number `json:"standard_deduction"`
	OtherDeductions   Number `json:"other_deductions"`
	DeductionCap      Number `json:"deduction_cap"`
}

func (in *TaxableIncomeInput) Tool() Tool { return ToolTaxableIncome }

func (in *TaxableIncomeInput) Calculate() (Result, error) {
	gross, err := in.GrossIncome.Float("gross_income")
	if err != nil {
		return Result{}, err
	}
	standard, err := in.StandardDeduction.FloatOr("standard_deduction", DefaultStandardDeduction)
	if err != nil {
		return Result{}, err
	}
	other, err := in.OtherDeductions.FloatOr("other_deductions", 0)
	if err != nil {
		return Result{}, err
	}

	deductionCap := None[float64]()
	if in.DeductionCap.IsSet() {
		limit, err := in.DeductionCap.Float("deduction_cap")
		if err != nil {
			return Result{}, err
		}
		deductionCap = Some(limit)
	}

	taxable, err := TaxableIncome(gross, standard, other, deductionCap)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolTaxableIncome, taxable), nil
}

// BudgetInput is the input bundle for PlanBudget
type BudgetInput struct {
	MonthlyIncome   Number `json:"monthly_income"`
	MonthlyExpenses Number `json:"monthly_expenses"`
}

func (in *BudgetInput) Tool() Tool { return ToolBudget }

func (in *BudgetInput) Calculate() (Result, error) {
	income, err := in.MonthlyIncome.Float("monthly_income")
	if err != nil {
		return Result{}, err
	}
	expenses, err := in.MonthlyExpenses.Float("monthly_expenses")
	if err != nil {
		return Result{}, err
	}

	plan, err := PlanBudget(income, expenses)
	if err != nil {
		return Result{}, err
	}
	return Result{Tool: ToolBudget, Budget: &plan}, nil
}

// NetWorthInput is the input bundle for NetWorth
type NetWorthInput struct {
	Assets      NumberList `json:"assets"`
	Liabilities NumberList `json:"liabilities"`
}

func (in *NetWorthInput) Tool() Tool { return ToolNetWorth }

func (in *NetWorthInput) Calculate() (Result, error) {
	assets, err := in.Assets.Floats("assets")
	if err != nil {
		return Result{}, err
	}
	liabilities, err := in.Liabilities.Floats("liabilities")
	if err != nil {
		return Result{}, err
	}

	worth, err := NetWorth(assets, liabilities)
	if err != nil {
		return Result{}, err
	}
	return amount(ToolNetWorth, worth), nil
}

func floats3(a Number, aField string, b Number, bField string, c Number, cField string) (float64, float64, float64, error) {
	x, err := a.Float(aField)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := b.Float(bField)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := c.Float(cField)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

// yearsHorizon is the rounded month count the year-based calculators step
func yearsHorizon(years Number) (float64, error) {
	y, err := years.Float("years")
	if err != nil {
		return 0, err
	}
	return YearsToMonths(y), nil
}
