package models

// AnalysisKind describes which planning operation produced an Analysis.
type AnalysisKind string

const (
	AnalysisKindBudget     AnalysisKind = "budget"
	AnalysisKindDebt       AnalysisKind = "debt"
	AnalysisKindInvestment AnalysisKind = "investment"
)

// Analysis is the stored record of a single planning request.
//
// Input and Result hold the request and the computed plan as JSON so that
// past analyses can be listed and inspected without recomputing them.
type Analysis struct {
	DefaultModel
	Kind      AnalysisKind `json:"kind" example:"budget"`                                         // The operation that produced this analysis
	Input     string       `json:"input" example:"{\"monthlyIncome\":\"20000\"}"`                 // The request as JSON
	Result    string       `json:"result" example:"{\"overallStatus\":\"healthy\"}"`              // The computed plan as JSON
	Narrative string       `json:"narrative" example:"Your budget is healthy. Keep saving 20%."` // The narrative explanation returned with the plan
}
