package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/raisket/advisor/internal/controllers/v1"
	"github.com/raisket/advisor/internal/httperror"
	"github.com/raisket/advisor/internal/planner"
	"github.com/raisket/advisor/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestAnalysis runs a budget analysis to produce a stored record.
func createTestAnalysis(t *testing.T) v1.BudgetAnalysis {
	body := planner.MonthlyBudget{
		Income:           decimal.NewFromInt(20000),
		FixedExpenses:    decimal.NewFromInt(8000),
		VariableExpenses: decimal.NewFromInt(5000),
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budget", body)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(t, &r, &response)

	return response.Data
}

func (suite *TestSuiteStandard) TestOptionsAnalyses() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/analyses", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsAnalysisDetail() {
	analysis := createTestAnalysis(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/analyses/%s", analysis.ID), "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/analyses/6a463cc8-1938-474a-8aeb-0482b82ffb6f", "")
	assert.Equal(suite.T(), http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestGetAnalyses() {
	_ = createTestAnalysis(suite.T())
	_ = createTestAnalysis(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analyses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetAnalysesFilterKind() {
	_ = createTestAnalysis(suite.T())

	tests := []struct {
		kind   string
		count  int
		status int
	}{
		{"budget", 1, http.StatusOK},
		{"debt", 0, http.StatusOK},
		{"investment", 0, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.kind, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analyses?kind=%s", tt.kind), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AnalysisListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analyses?kind=horoscope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetAnalysesInvalidQuery() {
	for _, query := range []string{"offset=abc", "limit=abc", "offset=-1"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/analyses?"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httperror.Error
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "the query string contains unparseable data, please check the values", response.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetAnalysesPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestAnalysis(suite.T())
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analyses?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 1, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetAnalysis() {
	analysis := createTestAnalysis(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analyses/%s", analysis.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Equal(suite.T(), analysis.ID.String(), response.Data.ID.String())
	assert.Equal(suite.T(), analysis.Narrative, response.Data.Narrative)
	assert.NotEmpty(suite.T(), response.Data.Input)
	assert.NotEmpty(suite.T(), response.Data.Result)
}

func (suite *TestSuiteStandard) TestGetAnalysisNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analyses/6a463cc8-1938-474a-8aeb-0482b82ffb6f", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetAnalysisInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analyses/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
