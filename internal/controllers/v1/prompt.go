package v1

import (
	"fmt"
	"strings"

	"github.com/raisket/advisor/internal/planner"
)

// The prompts carry every figure the narrative may mention, the model is
// instructed to not invent any others.

func budgetPrompt(b planner.MonthlyBudget, report planner.BudgetReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Monthly budget analysis. Income: %s. Overall status: %s. Disposable income: %s. Savings rate: %s%%.\n",
		b.Income, report.OverallStatus, report.Disposable, report.SavingsRatePercent)

	for _, category := range report.Categories {
		fmt.Fprintf(&sb, "%s: spent %s of a recommended %s (%s).\n",
			category.Name, category.Actual, category.Recommended, category.Status)
	}

	for _, recommendation := range report.Recommendations {
		fmt.Fprintf(&sb, "Recommendation: %s\n", recommendation)
	}

	return sb.String()
}

func debtPrompt(plan planner.DebtPlan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Debt payoff plan using the %s strategy. Total principal: %s. Total minimum payments: %s. Projected interest: %s. The plan takes %d months. Extra capacity after minimums: %s.\n",
		plan.Strategy, plan.TotalPrincipal, plan.TotalMinimum, plan.TotalInterest, plan.ProjectedMonths, plan.ExtraCapacity)

	if plan.HighCostDebt {
		sb.WriteString("At least one debt is above 40% APR and should be prioritized aggressively.\n")
	}

	for _, entry := range plan.PayoffOrder {
		fmt.Fprintf(&sb, "Payoff order: %s\n", entry)
	}

	return sb.String()
}

func investmentPrompt(plan planner.InvestmentPlan, portfolio planner.Portfolio) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Investment portfolio for a %s risk profile over %d months, investing %s. Blended expected return: %s%% per year. Projected final value: %s (gain %s).\n",
		portfolio.RiskProfile, plan.TermMonths, plan.TotalAmount, portfolio.BlendedAnnualReturn, portfolio.Projection.FinalValue, portfolio.Projection.Gain)

	for _, instrument := range portfolio.Instruments {
		fmt.Fprintf(&sb, "%s: %s%% (%s), expected %s%% per year.\n",
			instrument.Name, instrument.WeightPercent, instrument.AssetClass, instrument.ExpectedAnnualReturn)
	}

	return sb.String()
}
