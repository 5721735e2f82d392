package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryStatus classifies how a spending category compares to its
// recommended amount.
type CategoryStatus string

const (
	CategoryOK       CategoryStatus = "ok"
	CategoryWarning  CategoryStatus = "warning"
	CategoryExceeded CategoryStatus = "exceeded"
)

// OverallStatus is the verdict for a whole budget.
type OverallStatus string

const (
	BudgetHealthy  OverallStatus = "healthy"
	BudgetCaution  OverallStatus = "caution"
	BudgetCritical OverallStatus = "critical"
)

// A category counts as exceeded once the excess reaches 20% of the
// recommended amount.
var exceededThreshold = decimal.NewFromFloat(0.20)

// MonthlyBudget is the income and expense record for one month.
type MonthlyBudget struct {
	Income           decimal.Decimal `json:"income" example:"20000"`                // Monthly net income
	FixedExpenses    decimal.Decimal `json:"fixedExpenses" example:"8000"`          // Rent, utilities, contracts
	VariableExpenses decimal.Decimal `json:"variableExpenses" example:"5000"`       // Groceries, transport, leisure
	LeakExpenses     decimal.Decimal `json:"leakExpenses" example:"600" default:"0"` // Small recurring discretionary spending
	CurrentSavings   decimal.Decimal `json:"currentSavings" example:"15000" default:"0"`
}

// Validate checks the field constraints of the budget record.
func (b MonthlyBudget) Validate() error {
	if !b.Income.IsPositive() {
		return fmt.Errorf("%w: income must be positive", ErrInvalidInput)
	}

	for name, v := range map[string]decimal.Decimal{
		"fixedExpenses":    b.FixedExpenses,
		"variableExpenses": b.VariableExpenses,
		"leakExpenses":     b.LeakExpenses,
		"currentSavings":   b.CurrentSavings,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}

	return nil
}

// TotalExpenses is the sum of all tracked expense categories.
func (b MonthlyBudget) TotalExpenses() decimal.Decimal {
	return b.FixedExpenses.Add(b.VariableExpenses).Add(b.LeakExpenses)
}

// Disposable is the income left after all tracked expenses. It can be
// negative when the budget overspends.
func (b MonthlyBudget) Disposable() decimal.Decimal {
	return b.Income.Sub(b.TotalExpenses())
}

// BudgetCategory compares actual spending in one category against the
// amount the 50/30/20 rule recommends.
type BudgetCategory struct {
	Name               string          `json:"name" example:"Necessities"`
	Actual             decimal.Decimal `json:"actual" example:"8000"`
	Recommended        decimal.Decimal `json:"recommended" example:"10000"`
	ActualPercent      decimal.Decimal `json:"actualPercent" example:"40"`      // Share of income actually spent
	RecommendedPercent decimal.Decimal `json:"recommendedPercent" example:"50"` // Share of income the rule recommends
	Delta              decimal.Decimal `json:"delta" example:"-2000"`           // Actual minus recommended
	Status             CategoryStatus  `json:"status" example:"ok"`
}

// BudgetReport is the result of analyzing one monthly budget.
type BudgetReport struct {
	Categories         []BudgetCategory `json:"categories"`
	OverallStatus      OverallStatus    `json:"overallStatus" example:"healthy"`
	Disposable         decimal.Decimal  `json:"disposable" example:"7000"`
	SavingsRatePercent decimal.Decimal  `json:"savingsRatePercent" example:"35"`
	Recommendations    []string         `json:"recommendations"`
}

// AnalyzeBudget evaluates a monthly budget against the 50/30/20 rule.
//
// Three categories are always produced in a fixed order: Necessities
// (fixed expenses), Wants (variable plus leak expenses) and Savings
// (disposable income, floored at zero). The savings category inverts the
// comparison: a shortfall, not an excess, degrades its status.
func AnalyzeBudget(b MonthlyBudget) (BudgetReport, error) {
	if err := b.Validate(); err != nil {
		return BudgetReport{}, err
	}

	rule, err := Allocate(b.Income)
	if err != nil {
		return BudgetReport{}, err
	}

	disposable := b.Disposable()

	savingsActual := disposable
	if savingsActual.IsNegative() {
		savingsActual = decimal.Zero
	}

	wantsActual := b.VariableExpenses.Add(b.LeakExpenses)

	categories := []BudgetCategory{
		newCategory("Necessities", b.FixedExpenses, rule.Necessities, b.Income, spendingStatus(b.FixedExpenses, rule.Necessities)),
		newCategory("Wants", wantsActual, rule.Wants, b.Income, spendingStatus(wantsActual, rule.Wants)),
		newCategory("Savings", savingsActual, rule.Savings, b.Income, savingsStatus(disposable, rule.Savings)),
	}

	savingsRate := savingsActual.Div(b.Income).Mul(oneHundred).Round(2)

	return BudgetReport{
		Categories:         categories,
		OverallStatus:      overallStatus(b, rule, disposable),
		Disposable:         disposable.Round(2),
		SavingsRatePercent: savingsRate,
		Recommendations:    recommendations(b, rule, disposable),
	}, nil
}

func newCategory(name string, actual, recommended, income decimal.Decimal, status CategoryStatus) BudgetCategory {
	return BudgetCategory{
		Name:               name,
		Actual:             actual.Round(2),
		Recommended:        recommended.Round(2),
		ActualPercent:      actual.Div(income).Mul(oneHundred).Round(2),
		RecommendedPercent: recommended.Div(income).Mul(oneHundred).Round(2),
		Delta:              actual.Sub(recommended).Round(2),
		Status:             status,
	}
}

// spendingStatus classifies a spending category: ok when within the
// recommendation, exceeded when the excess reaches 20% of it.
func spendingStatus(actual, recommended decimal.Decimal) CategoryStatus {
	excess := actual.Sub(recommended)
	if !excess.IsPositive() {
		return CategoryOK
	}

	if excess.GreaterThanOrEqual(recommended.Mul(exceededThreshold)) {
		return CategoryExceeded
	}

	return CategoryWarning
}

// savingsStatus inverts the comparison: the shortfall below the
// recommended savings drives the status.
func savingsStatus(disposable, recommended decimal.Decimal) CategoryStatus {
	if disposable.GreaterThanOrEqual(recommended) {
		return CategoryOK
	}

	if disposable.IsPositive() {
		return CategoryWarning
	}

	return CategoryExceeded
}

func overallStatus(b MonthlyBudget, rule Allocation, disposable decimal.Decimal) OverallStatus {
	if !disposable.IsPositive() {
		return BudgetCritical
	}

	if disposable.GreaterThanOrEqual(rule.Savings) && b.FixedExpenses.LessThanOrEqual(rule.Necessities) {
		return BudgetHealthy
	}

	return BudgetCaution
}

// recommendations derives advice from the same thresholds that drive the
// category statuses, so the list is fully reproducible from the input.
func recommendations(b MonthlyBudget, rule Allocation, disposable decimal.Decimal) []string {
	r := []string{}

	if b.FixedExpenses.GreaterThan(rule.Necessities) {
		r = append(r, fmt.Sprintf("Fixed expenses are %s over the recommended 50%% of income. Review rent, utilities and recurring contracts.", b.FixedExpenses.Sub(rule.Necessities).Round(2)))
	}

	wants := b.VariableExpenses.Add(b.LeakExpenses)
	if wants.GreaterThan(rule.Wants) {
		r = append(r, fmt.Sprintf("Discretionary spending is %s over the recommended 30%% of income.", wants.Sub(rule.Wants).Round(2)))
	}

	if b.LeakExpenses.IsPositive() {
		r = append(r, fmt.Sprintf("Cutting the %s of small recurring purchases would free up the same amount for savings every month.", b.LeakExpenses.Round(2)))
	}

	if !disposable.IsPositive() {
		r = append(r, "Expenses meet or exceed income. Reduce spending before committing to any savings or investment plan.")
	} else if disposable.LessThan(rule.Savings) {
		r = append(r, fmt.Sprintf("Disposable income is below the recommended savings of %s per month. Aim to close the gap of %s.", rule.Savings, rule.Savings.Sub(disposable).Round(2)))
	}

	if len(r) == 0 {
		r = append(r, "The budget follows the 50/30/20 rule. Keep the current savings rate.")
	}

	return r
}
