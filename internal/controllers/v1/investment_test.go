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

func (suite *TestSuiteStandard) TestOptionsInvestment() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/investment", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBuildPortfolio() {
	body := v1.InvestmentRequest{
		TotalAmount: decimal.NewFromInt(50000),
		TermMonths:  60,
		RiskProfile: "moderate",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/investment", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	portfolio := response.Data.Portfolio
	require.Len(suite.T(), portfolio.Instruments, 3)
	assert.Equal(suite.T(), planner.RiskModerate, portfolio.RiskProfile)
	assert.True(suite.T(), portfolio.BlendedAnnualReturn.Equal(decimal.NewFromFloat(9.15)), "blended return is %s", portfolio.BlendedAnnualReturn)

	// The weights sum to 100 and the amounts to the investment
	weights := decimal.Zero
	amounts := decimal.Zero
	for _, instrument := range portfolio.Instruments {
		weights = weights.Add(instrument.WeightPercent)
		amounts = amounts.Add(instrument.Amount)
	}
	assert.True(suite.T(), weights.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), amounts.Equal(decimal.NewFromInt(50000)))

	assert.True(suite.T(), portfolio.Projection.FinalValue.GreaterThan(decimal.NewFromInt(50000)))
}

// The Spanish risk profile names of the first product generation are accepted.
func (suite *TestSuiteStandard) TestBuildPortfolioSpanishProfile() {
	body := v1.InvestmentRequest{
		TotalAmount: decimal.NewFromInt(10000),
		TermMonths:  12,
		RiskProfile: "conservador",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/investment", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), planner.RiskConservative, response.Data.Portfolio.RiskProfile)
}

func (suite *TestSuiteStandard) TestBuildPortfolioInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"broken body", `{ broken json`},
		{"amount zero", `{ "totalAmount": "0", "termMonths": 12, "riskProfile": "moderate" }`},
		{"term too long", `{ "totalAmount": "1000", "termMonths": 361, "riskProfile": "moderate" }`},
		{"unknown profile", `{ "totalAmount": "1000", "termMonths": 12, "riskProfile": "yolo" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/investment", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
