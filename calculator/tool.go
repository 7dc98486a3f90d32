package calculator

import (
	"encoding/json"
	"fmt"
)

// Tool names a calculator
type Tool string

const (
	ToolEMI             Tool = "emi"
	ToolSIP             Tool = "sip"
	ToolFD              Tool = "fd"
	ToolRD              Tool = "rd"
	ToolRetirement      Tool = "retirement"
	ToolLoanEligibility Tool = "loan-eligibility"
	ToolCreditCard      Tool = "credit-card"
	ToolTaxableIncome   Tool = "taxable-income"
	ToolBudget          Tool = "budget"
	ToolNetWorth        Tool = "net-worth"
)

var registry = []struct {
	tool Tool
	new  func() Calculation
}{
	{ToolEMI, func() Calculation { return &EMIInput{} }},
	{ToolSIP, func() Calculation { return &SIPInput{} }},
	{ToolFD, func() Calculation { return &FDInput{} }},
	{ToolRD, func() Calculation { return &RDInput{} }},
	{ToolRetirement, func() Calculation { return &RetirementInput{} }},
	{ToolLoanEligibility, func() Calculation { return &LoanEligibilityInput{} }},
	{ToolCreditCard, func() Calculation { return &CreditCardInput{} }},
	{ToolTaxableIncome, func() Calculation { return &TaxableIncomeInput{} }},
	{ToolBudget, func() Calculation { return &BudgetInput{} }},
	{ToolNetWorth, func() Calculation { return &NetWorthInput{} }},
}

// Calculation is an input bundle that can run its calculator
type Calculation interface {
	Tool() Tool
	Calculate() (Result, error)
}

// Simulation is a Calculation that runs over a number of months.
// Horizon returns that month count.
type Simulation interface {
	Calculation
	Horizon() (float64, error)
}

// Result is the outcome of a Calculation. Exactly one of Amount and Budget is set.
type Result struct {
	Tool   Tool        `json:"tool"`
	Amount *float64    `json:"amount,omitempty"`
	Budget *BudgetPlan `json:"budget,omitempty"`
}

func amount(tool Tool, v float64) Result {
	return Result{Tool: tool, Amount: &v}
}

// Tools lists the registered tools in a stable order
func Tools() []Tool {
	tools := make([]Tool, len(registry))
	for i, entry := range registry {
		tools[i] = entry.tool
	}
	return tools
}

// NewInput returns an empty input bundle for tool
func NewInput(tool Tool) (Calculation, error) {
	for _, entry := range registry {
		if entry.tool == tool {
			return entry.new(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
}

// Decode fills calc from string pairs such as a query string or CLI
// arguments. Blank values are treated as not supplied.
func Decode(calc Calculation, values map[string]string) error {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if v == "" {
			continue
		}
		fields[k] = v
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, calc)
}
