// Package planner implements the financial planning engine: budget rule
// allocation, debt payoff simulation and investment projection.
//
// All functions are pure and safe for concurrent use. Monetary values use
// decimal.Decimal and every monetary output is rounded to 2 decimal places.
package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The 50/30/20 budget rule.
var (
	necessitiesShare = decimal.NewFromFloat(0.50)
	wantsShare       = decimal.NewFromFloat(0.30)
	savingsShare     = decimal.NewFromFloat(0.20)
)

// Allocation is the recommended split of a monthly income.
type Allocation struct {
	Necessities decimal.Decimal `json:"necessities" example:"10000"` // 50% of income
	Wants       decimal.Decimal `json:"wants" example:"6000"`        // 30% of income
	Savings     decimal.Decimal `json:"savings" example:"4000"`      // 20% of income
}

// Allocate applies the 50/30/20 rule to a monthly income.
func Allocate(income decimal.Decimal) (Allocation, error) {
	if !income.IsPositive() {
		return Allocation{}, fmt.Errorf("%w: income must be positive", ErrInvalidInput)
	}

	return Allocation{
		Necessities: income.Mul(necessitiesShare).Round(2),
		Wants:       income.Mul(wantsShare).Round(2),
		Savings:     income.Mul(savingsShare).Round(2),
	}, nil
}
