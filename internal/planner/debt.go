package planner

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Strategy determines the order in which debts are prioritized. It never
// changes the simulated payment amounts, only the ranking.
type Strategy string

const (
	// StrategyAvalanche prioritizes the highest annual rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball prioritizes the lowest principal first.
	StrategySnowball Strategy = "snowball"
)

// A debt with an annual rate above this threshold is flagged as high-cost.
var highCostRate = decimal.NewFromInt(40)

// ParseStrategy resolves a strategy name. The Spanish names used by the
// first generation of the product are accepted as aliases.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "avalanche", "avalancha":
		return StrategyAvalanche, nil
	case "snowball", "bola_de_nieve", "bola de nieve":
		return StrategySnowball, nil
	}

	return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, s)
}

// Debt is one outstanding debt as reported by the user.
type Debt struct {
	Name           string          `json:"name" example:"Credit card"`
	Principal      decimal.Decimal `json:"principal" example:"10000"`            // Outstanding balance
	AnnualRate     decimal.Decimal `json:"annualRate" example:"36"`              // Annual percentage rate
	MinimumPayment decimal.Decimal `json:"minimumPayment" example:"450"`         // Contractual minimum monthly payment
	TermMonths     int             `json:"termMonths,omitempty" example:"48"`    // Remaining term, informational
}

// Validate checks the field constraints of the debt record.
func (d Debt) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: every debt needs a name", ErrInvalidInput)
	}
	if !d.Principal.IsPositive() {
		return fmt.Errorf("%w: the principal of %q must be positive", ErrInvalidInput, d.Name)
	}
	if d.AnnualRate.IsNegative() || d.AnnualRate.GreaterThan(maxAnnualRate) {
		return fmt.Errorf("%w: the annual rate of %q must be between 0 and 200", ErrInvalidInput, d.Name)
	}
	if !d.MinimumPayment.IsPositive() {
		return fmt.Errorf("%w: the minimum payment of %q must be positive", ErrInvalidInput, d.Name)
	}
	if d.TermMonths < 0 {
		return fmt.Errorf("%w: the term of %q must not be negative", ErrInvalidInput, d.Name)
	}

	return nil
}

// DebtAnalysis is the simulated payoff of a single debt at its minimum
// payment, ranked within the chosen strategy.
type DebtAnalysis struct {
	Name               string          `json:"name" example:"Credit card"`
	Principal          decimal.Decimal `json:"principal" example:"10000"`
	AnnualRate         decimal.Decimal `json:"annualRate" example:"36"`
	MonthlyInterest    decimal.Decimal `json:"monthlyInterest" example:"300"`      // Interest accruing in the first month
	RecommendedPayment decimal.Decimal `json:"recommendedPayment" example:"450"`
	MonthsToPayoff     int             `json:"monthsToPayoff" example:"29"`
	TotalInterest      decimal.Decimal `json:"totalInterest" example:"2809.22"`
	NonConvergent      bool            `json:"nonConvergent" example:"false"` // Payoff exceeds the 600 month simulation cap
	Priority           int             `json:"priority" example:"1"`          // 1-based rank in the payoff order
}

// DebtPlan aggregates the simulated payoff of all debts under one strategy.
type DebtPlan struct {
	Strategy        Strategy        `json:"strategy" example:"avalanche"`
	Debts           []DebtAnalysis  `json:"debts"` // Sorted by priority
	TotalPrincipal  decimal.Decimal `json:"totalPrincipal" example:"25000"`
	TotalMinimum    decimal.Decimal `json:"totalMinimum" example:"950"`
	TotalInterest   decimal.Decimal `json:"totalInterest" example:"5120.66"`
	ProjectedMonths int             `json:"projectedMonths" example:"41"` // The plan ends when the last debt is cleared
	ExtraCapacity   decimal.Decimal `json:"extraCapacity" example:"50"`   // Income left after all minimum payments
	PayoffOrder     []string        `json:"payoffOrder" example:"1. Credit card (36% APR)"`
	HighCostDebt    bool            `json:"highCostDebt" example:"false"` // Any debt above 40% APR
}

// AnalyzeDebts simulates the payoff of every debt at its own minimum
// payment and ranks them by the chosen strategy.
//
// The sum of all minimum payments must fit into the available monthly
// income, otherwise ErrInsufficientIncome is returned before any
// simulation runs. A debt whose minimum payment cannot cover its own
// interest aborts the whole plan with a DebtUnpayableError naming it.
func AnalyzeDebts(debts []Debt, monthlyIncomeAvailable decimal.Decimal, strategy Strategy) (DebtPlan, error) {
	if len(debts) == 0 {
		return DebtPlan{}, fmt.Errorf("%w: at least one debt is required", ErrInvalidInput)
	}
	if !monthlyIncomeAvailable.IsPositive() {
		return DebtPlan{}, fmt.Errorf("%w: the available monthly income must be positive", ErrInvalidInput)
	}
	if strategy != StrategyAvalanche && strategy != StrategySnowball {
		return DebtPlan{}, fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, strategy)
	}

	totalMinimum := decimal.Zero
	for _, debt := range debts {
		if err := debt.Validate(); err != nil {
			return DebtPlan{}, err
		}

		totalMinimum = totalMinimum.Add(debt.MinimumPayment)
	}

	if totalMinimum.GreaterThan(monthlyIncomeAvailable) {
		return DebtPlan{}, ErrInsufficientIncome
	}

	// Stable sort keeps the input order for ties
	ordered := slices.Clone(debts)
	slices.SortStableFunc(ordered, func(a, b Debt) int {
		if strategy == StrategyAvalanche {
			return b.AnnualRate.Cmp(a.AnnualRate)
		}

		return a.Principal.Cmp(b.Principal)
	})

	plan := DebtPlan{
		Strategy:      strategy,
		TotalMinimum:  totalMinimum.Round(2),
		ExtraCapacity: monthlyIncomeAvailable.Sub(totalMinimum).Round(2),
	}

	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero

	for i, debt := range ordered {
		result, err := Simulate(debt.Principal, debt.AnnualRate, debt.MinimumPayment)
		if err != nil {
			if errors.Is(err, ErrPaymentTooLow) {
				return DebtPlan{}, DebtUnpayableError{Name: debt.Name}
			}

			return DebtPlan{}, err
		}

		analysis := DebtAnalysis{
			Name:               debt.Name,
			Principal:          debt.Principal.Round(2),
			AnnualRate:         debt.AnnualRate,
			MonthlyInterest:    debt.Principal.Mul(monthlyRate(debt.AnnualRate)).Round(2),
			RecommendedPayment: debt.MinimumPayment.Round(2),
			MonthsToPayoff:     result.Months,
			TotalInterest:      result.TotalInterest,
			NonConvergent:      result.NonConvergent,
			Priority:           i + 1,
		}

		plan.Debts = append(plan.Debts, analysis)
		plan.PayoffOrder = append(plan.PayoffOrder, fmt.Sprintf("%d. %s (%s%% APR)", analysis.Priority, debt.Name, debt.AnnualRate))

		totalPrincipal = totalPrincipal.Add(debt.Principal)
		totalInterest = totalInterest.Add(result.TotalInterest)

		if result.Months > plan.ProjectedMonths {
			plan.ProjectedMonths = result.Months
		}

		if debt.AnnualRate.GreaterThan(highCostRate) {
			plan.HighCostDebt = true
		}
	}

	plan.TotalPrincipal = totalPrincipal.Round(2)
	plan.TotalInterest = totalInterest.Round(2)

	return plan, nil
}
