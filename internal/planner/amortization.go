package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmortizationMonths caps the simulation at 50 years. A debt that is
// not paid off by then is reported as non-convergent instead of looping
// forever.
const MaxAmortizationMonths = 600

var (
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)

	maxAnnualRate = decimal.NewFromInt(200)
)

// Amortization is the outcome of paying a debt down month by month with a
// fixed payment.
type Amortization struct {
	Months        int             `json:"months" example:"58"`                // Months until the balance reaches zero
	TotalInterest decimal.Decimal `json:"totalInterest" example:"3354.57"`    // Interest paid over the full payoff
	TotalPaid     decimal.Decimal `json:"totalPaid" example:"13354.57"`       // Principal plus interest actually paid
	NonConvergent bool            `json:"nonConvergent" example:"false"`      // True when the cap was reached with a balance left
}

// monthlyRate converts a percentage annual rate into a periodic rate.
func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(oneHundred).Div(twelve)
}

// Simulate pays the principal down with a fixed monthly payment at the
// given annual percentage rate.
//
// Interest is accrued and rounded to the cent each month. The simulation
// fails with ErrPaymentTooLow as soon as a payment does not cover the
// month's interest, because the balance could never reach zero. If the
// balance is still positive after MaxAmortizationMonths, the figures
// accumulated up to the cap are returned with NonConvergent set.
func Simulate(principal, annualRate, payment decimal.Decimal) (Amortization, error) {
	if !principal.IsPositive() {
		return Amortization{}, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if annualRate.IsNegative() || annualRate.GreaterThan(maxAnnualRate) {
		return Amortization{}, fmt.Errorf("%w: annual rate must be between 0 and 200", ErrInvalidInput)
	}
	if !payment.IsPositive() {
		return Amortization{}, fmt.Errorf("%w: payment must be positive", ErrInvalidInput)
	}

	rate := monthlyRate(annualRate)

	balance := principal
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero
	months := 0

	for balance.IsPositive() && months < MaxAmortizationMonths {
		interest := balance.Mul(rate).Round(2)

		toPrincipal := payment.Sub(interest)
		if !toPrincipal.IsPositive() {
			return Amortization{}, ErrPaymentTooLow
		}

		totalInterest = totalInterest.Add(interest)
		months++

		// The final payment only covers what is left
		if toPrincipal.GreaterThanOrEqual(balance) {
			totalPaid = totalPaid.Add(interest).Add(balance)
			balance = decimal.Zero
			break
		}

		balance = balance.Sub(toPrincipal)
		totalPaid = totalPaid.Add(payment)
	}

	return Amortization{
		Months:        months,
		TotalInterest: totalInterest.Round(2),
		TotalPaid:     totalPaid.Round(2),
		NonConvergent: balance.IsPositive(),
	}, nil
}
