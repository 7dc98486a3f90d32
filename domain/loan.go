package domain

type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
	Schedule     bool    `json:"schedule"` // include the amortization table
}

// Installment is one row of an amortization table
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type LoanResult struct {
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalPayment   float64       `json:"total_payment"`
	TotalInterest  float64       `json:"total_interest"`
	Schedule       []Installment `json:"schedule,omitempty"`
}
