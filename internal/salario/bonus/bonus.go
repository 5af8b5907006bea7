// Package bonus derives a client's bonus from salary and tenure.
package bonus

import (
	"math"
	"strconv"
	"strings"
)

// Bracket limits and rates.
const (
	TenureLowerYears = 2 // exclusive
	TenureUpperYears = 5 // inclusive for the senior rate

	SalaryLow  = 1000 // inclusive in the mid bracket
	SalaryHigh = 3500 // inclusive in the mid bracket

	RateTenureMid    = 0.20
	RateTenureSenior = 0.30
	RateSalaryLow    = 0.25
	RateSalaryMid    = 0.15
	RateSalaryHigh   = 0.10
)

// Calculate returns the larger of the tenure and salary components.
// It never fails: negative inputs flow straight through the arithmetic.
func Calculate(salary, tenureYears float64) float64 {
	return math.Max(TenureComponent(salary, tenureYears), SalaryComponent(salary))
}

// TenureComponent is the share of salary earned by years of service.
func TenureComponent(salary, tenureYears float64) float64 {
	switch {
	case tenureYears > TenureLowerYears && tenureYears < TenureUpperYears:
		return salary * RateTenureMid
	case tenureYears >= TenureUpperYears:
		return salary * RateTenureSenior
	default:
		return 0
	}
}

// SalaryComponent is the share of salary earned by salary bracket.
func SalaryComponent(salary float64) float64 {
	switch {
	case salary < SalaryLow:
		return salary * RateSalaryLow
	case salary <= SalaryHigh:
		return salary * RateSalaryMid
	default:
		return salary * RateSalaryHigh
	}
}

// ParseAmount converts raw form text into a number. Empty, malformed, NaN and
// infinite input all become 0 so Calculate never sees a non-finite value.
// A single decimal comma is accepted ("1500,5"). A comma followed by exactly
// three digits reads as a thousands separator ("1,500") and is rejected as
// malformed rather than taken as 1.5.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		whole, frac, _ := strings.Cut(s, ",")
		if len(frac) == 3 {
			return 0
		}
		s = whole + "." + frac
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FromInput coerces the raw salary and tenure fields and calculates the bonus.
func FromInput(rawSalary, rawTenure string) float64 {
	return Calculate(ParseAmount(rawSalary), ParseAmount(rawTenure))
}
