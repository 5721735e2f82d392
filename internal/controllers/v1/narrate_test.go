package v1_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	v1 "github.com/raisket/advisor/internal/controllers/v1"
	"github.com/raisket/advisor/internal/narrative"
	"github.com/raisket/advisor/internal/planner"
	"github.com/raisket/advisor/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Name() string { return "fake" }

func (g fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

func (suite *TestSuiteStandard) TestNarrativeFromGenerator() {
	v1.Configure(fakeGenerator{text: "You are doing great."}, time.Second)
	defer v1.Configure(nil, 0)

	body := planner.MonthlyBudget{
		Income:           decimal.NewFromInt(20000),
		FixedExpenses:    decimal.NewFromInt(8000),
		VariableExpenses: decimal.NewFromInt(5000),
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "You are doing great.", response.Data.Narrative)
}

// A generator failure never fails the request, the fallback is used.
func (suite *TestSuiteStandard) TestNarrativeFallbackOnError() {
	v1.Configure(fakeGenerator{err: errors.New("provider down")}, time.Second)
	defer v1.Configure(nil, 0)

	body := planner.MonthlyBudget{
		Income:           decimal.NewFromInt(20000),
		FixedExpenses:    decimal.NewFromInt(8000),
		VariableExpenses: decimal.NewFromInt(5000),
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), narrative.Fallback, response.Data.Narrative)
}
