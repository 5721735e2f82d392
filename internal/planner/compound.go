package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Projection is the future value of a principal plus a stream of monthly
// contributions at a fixed rate.
type Projection struct {
	FinalValue       decimal.Decimal `json:"finalValue" example:"11268.25"`
	Gain             decimal.Decimal `json:"gain" example:"1268.25"`             // Final value minus everything paid in
	TotalContributed decimal.Decimal `json:"totalContributed" example:"10000"`   // Principal plus all contributions
}

// Project computes the compound growth of a principal over the given
// number of months, with an optional contribution at the end of every
// month (ordinary annuity).
//
// A zero rate degenerates the annuity formula into a division by zero, so
// it is special-cased with the linear formula P + c*m.
func Project(principal, annualRate decimal.Decimal, months int, monthlyContribution decimal.Decimal) (Projection, error) {
	if principal.IsNegative() {
		return Projection{}, fmt.Errorf("%w: principal must not be negative", ErrInvalidInput)
	}
	if annualRate.IsNegative() {
		return Projection{}, fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	if months <= 0 {
		return Projection{}, fmt.Errorf("%w: months must be positive", ErrInvalidInput)
	}
	if monthlyContribution.IsNegative() {
		return Projection{}, fmt.Errorf("%w: monthly contribution must not be negative", ErrInvalidInput)
	}

	m := decimal.NewFromInt(int64(months))
	totalContributed := principal.Add(monthlyContribution.Mul(m))

	rate := monthlyRate(annualRate)

	var finalValue decimal.Decimal
	if rate.IsZero() {
		finalValue = totalContributed
	} else {
		growth := decimal.New(1, 0).Add(rate).Pow(m)

		finalValue = principal.Mul(growth)
		if monthlyContribution.IsPositive() {
			finalValue = finalValue.Add(monthlyContribution.Mul(growth.Sub(decimal.New(1, 0))).Div(rate))
		}
	}

	finalValue = finalValue.Round(2)
	totalContributed = totalContributed.Round(2)

	return Projection{
		FinalValue:       finalValue,
		Gain:             finalValue.Sub(totalContributed),
		TotalContributed: totalContributed,
	}, nil
}
