package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/httperror"
	"github.com/raisket/advisor/internal/httputil"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/planner"
)

// RegisterBudgetRoutes registers the routes for budget analyses with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.POST("", AnalyzeBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Analyze budget
// @Description	Evaluates a monthly budget against the 50/30/20 rule and returns per-category statuses, recommendations and a narrative explanation
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		planner.MonthlyBudget	true	"Budget"
// @Router			/v1/budget [post]
func AnalyzeBudget(c *gin.Context) {
	var budget planner.MonthlyBudget

	err := httputil.BindData(c, &budget)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	report, err := planner.AnalyzeBudget(budget)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	text := narrate(c, budgetPrompt(budget, report))
	id := saveAnalysis(c, models.AnalysisKindBudget, budget, report, text)

	c.JSON(http.StatusOK, BudgetResponse{
		Data: BudgetAnalysis{
			ID:        id,
			Report:    report,
			Narrative: text,
		},
	})
}
