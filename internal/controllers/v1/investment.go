package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/httperror"
	"github.com/raisket/advisor/internal/httputil"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/planner"
)

// RegisterInvestmentRoutes registers the routes for investment analyses
// with the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInvestment)
	r.POST("", BuildPortfolio)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investment
// @Success		204
// @Router			/v1/investment [options]
func OptionsInvestment(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Build portfolio
// @Description	Builds a portfolio for the risk profile, projects its growth over the term and returns it with a narrative explanation
// @Tags			Investment
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvestmentResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			investment	body		InvestmentRequest	true	"Investment"
// @Router			/v1/investment [post]
func BuildPortfolio(c *gin.Context) {
	var request InvestmentRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	profile, err := planner.ParseRiskProfile(request.RiskProfile)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	plan := planner.InvestmentPlan{
		TotalAmount: request.TotalAmount,
		TermMonths:  request.TermMonths,
		RiskProfile: profile,
	}

	portfolio, err := planner.BuildPortfolio(plan)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	text := narrate(c, investmentPrompt(plan, portfolio))
	id := saveAnalysis(c, models.AnalysisKindInvestment, request, portfolio, text)

	c.JSON(http.StatusOK, InvestmentResponse{
		Data: InvestmentAnalysis{
			ID:        id,
			Portfolio: portfolio,
			Narrative: text,
		},
	})
}
