package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/raisket/advisor/internal/controllers/v1"
	"github.com/raisket/advisor/internal/narrative"
	"github.com/raisket/advisor/internal/planner"
	"github.com/raisket/advisor/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budget", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAnalyzeBudget() {
	body := planner.MonthlyBudget{
		Income:           decimal.NewFromInt(20000),
		FixedExpenses:    decimal.NewFromInt(8000),
		VariableExpenses: decimal.NewFromInt(5000),
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), planner.BudgetHealthy, response.Data.Report.OverallStatus)
	assert.True(suite.T(), response.Data.Report.Disposable.Equal(decimal.NewFromInt(7000)))
	assert.Len(suite.T(), response.Data.Report.Categories, 3)

	// Without a narrative generator configured, the fallback is returned
	assert.Equal(suite.T(), narrative.Fallback, response.Data.Narrative)

	// The analysis is persisted
	assert.NotEqual(suite.T(), "00000000-0000-0000-0000-000000000000", response.Data.ID.String())
}

func (suite *TestSuiteStandard) TestAnalyzeBudgetInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"broken body", `{ broken json`},
		{"income zero", `{ "income": "0", "fixedExpenses": "100" }`},
		{"negative expenses", `{ "income": "1000", "fixedExpenses": "-1" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestAnalyzeBudgetDBClosed verifies that a budget analysis still succeeds
// when the analysis cannot be persisted.
func (suite *TestSuiteStandard) TestAnalyzeBudgetDBClosed() {
	suite.CloseDB()

	body := planner.MonthlyBudget{
		Income:           decimal.NewFromInt(20000),
		FixedExpenses:    decimal.NewFromInt(8000),
		VariableExpenses: decimal.NewFromInt(5000),
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The response carries the Nil ID since nothing was stored
	assert.Equal(suite.T(), "00000000-0000-0000-0000-000000000000", response.Data.ID.String())
}
