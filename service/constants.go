package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billion
	MaxInterestRate = 1000.0          // 1000% a year
	MaxTermMonths   = 600             // 50 years
	MinTermMonths   = 1

	// DefaultMaxSimulationMonths bounds the month-stepping calculators (100 years)
	DefaultMaxSimulationMonths = 1200

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	cacheKeyPrefix = "calc"
	loanTool       = "loan"
)
