package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/dto"
	"github.com/pipeyard/pipeyard_api/internal/middleware"
)

// companyHandler handles HTTP requests for the dashboard read views
type companyHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// newCompanyHandler creates a new companyHandler
func newCompanyHandler(ss portssvc.SummarySvcFacade) *companyHandler {
	return &companyHandler{summaryService: ss}
}

// registerCompanyRoutes registers routes for the company dashboard views
func registerCompanyRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newCompanyHandler(summaryService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanySummaries)
		companies.GET("/:company_id", h.getCompanyDetail)
		companies.GET("/:company_id/requests", h.listStorageRequests)
	}
}

// listCompanySummaries godoc
// @Summary List company summaries
// @Description Returns every company with its aggregate request, load and inventory counts
// @Tags companies
// @Produce json
// @Success 200 {array} domain.CompanySummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summaries, err := h.summaryService.ListCompanySummaries(c.Request.Context(), adminID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// getCompanyDetail godoc
// @Summary Get company detail
// @Description Returns the full nested request/load/document/inventory tree for one company
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} domain.CompanyDetail
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *companyHandler) getCompanyDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.summaryService.GetCompanyDetail(c.Request.Context(), companyID, adminID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// listStorageRequests godoc
// @Summary List a company's storage requests
// @Description Returns a token-paginated page of storage requests, newest first
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size" default(25)
// @Param nextToken query string false "Cursor from the previous page"
// @Param status query string false "Filter by request status"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /companies/{company_id}/requests [get]
func (h *companyHandler) listStorageRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query struct {
		Limit     int     `form:"limit"`
		NextToken *string `form:"nextToken"`
		Status    *string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query parameters", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	params := dto.ListRequestsParams{
		Limit:     query.Limit,
		NextToken: query.NextToken,
	}
	if query.Status != nil && *query.Status != "" {
		status := domain.RequestStatus(*query.Status)
		params.Status = &status
	}

	page, err := h.summaryService.ListStorageRequests(c.Request.Context(), companyID, adminID, params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
