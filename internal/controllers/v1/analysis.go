package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/httperror"
	"github.com/raisket/advisor/internal/httputil"
	"github.com/raisket/advisor/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAnalysisRoutes registers the routes for stored analyses with
// the RouterGroup that is passed.
func RegisterAnalysisRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAnalysisList)
		r.GET("", GetAnalyses)
	}

	// Analysis with ID
	{
		r.OPTIONS("/:id", OptionsAnalysisDetail)
		r.GET("/:id", GetAnalysis)
	}
}

// AnalysisQueryFilter are the query string parameters for the analysis list.
type AnalysisQueryFilter struct {
	Kind   string `form:"kind" filterField:"false"`   // Filter by the operation that produced the analysis
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Analysis returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Analyses to return. Defaults to 50.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analyses
// @Success		204
// @Router			/v1/analyses [options]
func OptionsAnalysisList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analyses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/analyses/{id} [options]
func OptionsAnalysisDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Analysis{}, "id = ?", uri.ID.String()).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List analyses
// @Description	Returns a list of stored analyses, most recent first
// @Tags			Analyses
// @Produce		json
// @Success		200	{object}	AnalysisListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/analyses [get]
// @Param			kind	query	string	false	"Filter by kind: budget, debt or investment"
// @Param			offset	query	uint	false	"The offset of the first Analysis returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Analyses to return. Defaults to 50."
func GetAnalyses(c *gin.Context) {
	var filter AnalysisQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.Error{Message: "the query string contains unparseable data, please check the values"})
		return
	}

	if filter.Kind != "" && !slices.Contains([]models.AnalysisKind{
		models.AnalysisKindBudget,
		models.AnalysisKindDebt,
		models.AnalysisKindInvestment,
	}, models.AnalysisKind(filter.Kind)) {
		c.JSON(http.StatusBadRequest, httperror.Error{Message: "kind must be one of budget, debt or investment"})
		return
	}

	q := models.DB.Order("created_at DESC")
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := 50
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var analyses []models.Analysis
	err := q.Find(&analyses).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	if analyses == nil {
		analyses = make([]models.Analysis, 0)
	}

	c.JSON(http.StatusOK, AnalysisListResponse{
		Data: analyses,
		Pagination: Pagination{
			Count:  len(analyses),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get analysis
// @Description	Returns a specific stored analysis
// @Tags			Analyses
// @Produce		json
// @Success		200	{object}	AnalysisResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/analyses/{id} [get]
func GetAnalysis(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var analysis models.Analysis
	err = models.DB.First(&analysis, "id = ?", uri.ID.String()).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Data: analysis})
}
