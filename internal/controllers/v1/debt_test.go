package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/raisket/advisor/internal/controllers/v1"
	"github.com/raisket/advisor/internal/planner"
	"github.com/raisket/advisor/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDebts() []planner.Debt {
	return []planner.Debt{
		{Name: "Car loan", Principal: decimal.NewFromInt(15000), AnnualRate: decimal.NewFromInt(12), MinimumPayment: decimal.NewFromInt(500)},
		{Name: "Credit card", Principal: decimal.NewFromInt(10000), AnnualRate: decimal.NewFromInt(36), MinimumPayment: decimal.NewFromInt(450)},
	}
}

func (suite *TestSuiteStandard) TestOptionsDebts() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/debts", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAnalyzeDebtsAvalanche() {
	body := v1.DebtRequest{
		Debts:                  testDebts(),
		MonthlyIncomeAvailable: decimal.NewFromInt(2000),
		Strategy:               "avalanche",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &response)

	plan := response.Data.Plan
	require.Len(suite.T(), plan.Debts, 2)

	// The highest rate comes first
	assert.Equal(suite.T(), "Credit card", plan.Debts[0].Name)
	assert.Equal(suite.T(), 1, plan.Debts[0].Priority)
	assert.Equal(suite.T(), "Car loan", plan.Debts[1].Name)

	assert.True(suite.T(), plan.TotalPrincipal.Equal(decimal.NewFromInt(25000)))
	assert.True(suite.T(), plan.TotalMinimum.Equal(decimal.NewFromInt(950)))
	assert.True(suite.T(), plan.ExtraCapacity.Equal(decimal.NewFromInt(1050)))
	assert.False(suite.T(), plan.HighCostDebt)
}

// The Spanish strategy names of the first product generation are accepted.
func (suite *TestSuiteStandard) TestAnalyzeDebtsSpanishStrategy() {
	body := v1.DebtRequest{
		Debts:                  testDebts(),
		MonthlyIncomeAvailable: decimal.NewFromInt(2000),
		Strategy:               "bola_de_nieve",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), planner.StrategySnowball, response.Data.Plan.Strategy)

	// The lowest principal comes first
	assert.Equal(suite.T(), "Credit card", response.Data.Plan.Debts[0].Name)
}

func (suite *TestSuiteStandard) TestAnalyzeDebtsInsufficientIncome() {
	body := v1.DebtRequest{
		Debts:                  testDebts(),
		MonthlyIncomeAvailable: decimal.NewFromInt(900),
		Strategy:               "avalanche",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)
}

func (suite *TestSuiteStandard) TestAnalyzeDebtsUnpayable() {
	body := v1.DebtRequest{
		Debts: []planner.Debt{
			// 2% monthly interest on 10000 is 200, the payment never covers it
			{Name: "Payday loan", Principal: decimal.NewFromInt(10000), AnnualRate: decimal.NewFromInt(24), MinimumPayment: decimal.NewFromInt(200)},
		},
		MonthlyIncomeAvailable: decimal.NewFromInt(2000),
		Strategy:               "avalanche",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Error, "Payday loan")
}

func (suite *TestSuiteStandard) TestAnalyzeDebtsInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"broken body", `{ broken json`},
		{"no debts", `{ "debts": [], "monthlyIncomeAvailable": "1000", "strategy": "avalanche" }`},
		{"unknown strategy", `{ "debts": [{ "name": "A", "principal": "100", "annualRate": "10", "minimumPayment": "10" }], "monthlyIncomeAvailable": "1000", "strategy": "tsunami" }`},
		{"negative principal", `{ "debts": [{ "name": "A", "principal": "-100", "annualRate": "10", "minimumPayment": "10" }], "monthlyIncomeAvailable": "1000", "strategy": "avalanche" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
