package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade, ls portssvc.LedgerSvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs, ledgerService: ls}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newCategoryHandler(categoryService, ledgerService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategoryByID)
		categories.GET("/:id/transactions", h.listCategoryTransactions)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Registers a category, optionally nested under a parent
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Parent category not found"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategoryByID godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategoryByID(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists categories flat, or as the nested tree with ?tree=true
// @Tags categories
// @Produce  json
// @Param   tree query bool false "Return the nested hierarchy"
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	if c.Query("tree") == "true" {
		nodes, err := h.categoryService.CategoryHierarchy(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to build category hierarchy")
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryNodeResponses(nodes))
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// listCategoryTransactions godoc
// @Summary List transactions tagged with a category
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/{id}/transactions [get]
func (h *categoryHandler) listCategoryTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.ledgerService.CategoryTransactions(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list category transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}
