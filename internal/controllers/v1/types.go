package v1

import (
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/planner"
	advisor_uuid "github.com/raisket/advisor/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID advisor_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// DebtRequest is the request body for a debt payoff plan.
type DebtRequest struct {
	Debts                  []planner.Debt  `json:"debts"`
	MonthlyIncomeAvailable decimal.Decimal `json:"monthlyIncomeAvailable" example:"5000"` // Income available for debt service
	Strategy               string          `json:"strategy" example:"avalanche"`          // "avalanche" or "snowball"
}

// InvestmentRequest is the request body for building a portfolio.
type InvestmentRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"50000"`
	TermMonths  int             `json:"termMonths" example:"60"`
	RiskProfile string          `json:"riskProfile" example:"moderate"` // "conservative", "moderate" or "aggressive"
}

// BudgetAnalysis is a budget report together with its narrative and the
// ID it was stored under.
type BudgetAnalysis struct {
	ID        advisor_uuid.UUID    `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Report    planner.BudgetReport `json:"report"`
	Narrative string               `json:"narrative" example:"Your budget is healthy."`
}

type BudgetResponse struct {
	Data BudgetAnalysis `json:"data"`
}

// DebtAnalysis is a debt plan together with its narrative and the ID it
// was stored under.
type DebtAnalysis struct {
	ID        advisor_uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Plan      planner.DebtPlan  `json:"plan"`
	Narrative string            `json:"narrative" example:"Pay the highest rate first."`
}

type DebtResponse struct {
	Data DebtAnalysis `json:"data"`
}

// InvestmentAnalysis is a portfolio together with its narrative and the
// ID it was stored under.
type InvestmentAnalysis struct {
	ID        advisor_uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Portfolio planner.Portfolio `json:"portfolio"`
	Narrative string            `json:"narrative" example:"A moderate mix suits your horizon."`
}

type InvestmentResponse struct {
	Data InvestmentAnalysis `json:"data"`
}

type AnalysisResponse struct {
	Data models.Analysis `json:"data"`
}

type AnalysisListResponse struct {
	Data       []models.Analysis `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
