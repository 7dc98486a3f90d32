// Package calculator implements stateless financial calculators: loan EMI and
// home-loan eligibility, SIP, fixed and recurring deposits, retirement corpus,
// credit-card revolving balance, taxable income, budget planning and net worth.
//
// Rates are annual percentages (7.5 means 7.5% a year). Durations are whole
// months or fractional years; fractional years are rounded to whole months.
// Every function validates all of its arguments before computing and reports
// a *ValidationError wrapping ErrTypeMismatch or ErrDomainViolation.
//
// The typed functions take float64 and int arguments. The input bundles
// (EMIInput, SIPInput, ...) take Number fields that accept loosely typed values
// from JSON, query strings or command lines, apply the documented defaults and
// call the typed function.
package calculator
