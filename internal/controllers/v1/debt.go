package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/httperror"
	"github.com/raisket/advisor/internal/httputil"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/planner"
)

// RegisterDebtRoutes registers the routes for debt plans with the
// RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDebts)
	r.POST("", AnalyzeDebts)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Plan debt payoff
// @Description	Simulates the payoff of all debts at their minimum payments, ranked by the chosen strategy, and returns the plan with a narrative explanation
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			debts	body		DebtRequest	true	"Debts"
// @Router			/v1/debts [post]
func AnalyzeDebts(c *gin.Context) {
	var request DebtRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	strategy, err := planner.ParseStrategy(request.Strategy)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	plan, err := planner.AnalyzeDebts(request.Debts, request.MonthlyIncomeAvailable, strategy)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	text := narrate(c, debtPrompt(plan))
	id := saveAnalysis(c, models.AnalysisKindDebt, request, plan, text)

	c.JSON(http.StatusOK, DebtResponse{
		Data: DebtAnalysis{
			ID:        id,
			Plan:      plan,
			Narrative: text,
		},
	})
}
