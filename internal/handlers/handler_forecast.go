package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// forecastHandler handles HTTP requests for scheduled transactions and
// forecast projections.
type forecastHandler struct {
	forecastService portssvc.ForecastSvcFacade
}

func newForecastHandler(fs portssvc.ForecastSvcFacade) *forecastHandler {
	return &forecastHandler{forecastService: fs}
}

// registerForecastRoutes registers routes related to forecasting.
func registerForecastRoutes(rg *gin.RouterGroup, forecastService portssvc.ForecastSvcFacade) {
	h := newForecastHandler(forecastService)

	scheduled := rg.Group("/scheduled-transactions")
	{
		scheduled.POST("", h.createScheduled)
		scheduled.GET("", h.listScheduled)
		scheduled.DELETE("/:scheduledID", h.deactivateScheduled)
	}

	forecast := rg.Group("/forecast")
	{
		forecast.GET("", h.forecast)
		forecast.GET("/accounts/:accountID", h.accountProjection)
	}
}

// createScheduled godoc
// @Summary Create a scheduled transaction
// @Description Registers a recurring transfer used by the forecast expander; it never posts to the ledger by itself
// @Tags forecast
// @Accept  json
// @Produce  json
// @Param   scheduled body dto.CreateScheduledRequest true "Schedule details"
// @Success 201 {object} dto.ScheduledResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /scheduled-transactions [post]
func (h *forecastHandler) createScheduled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateScheduledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateScheduled", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scheduled, err := h.forecastService.CreateScheduled(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create scheduled transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToScheduledResponse(scheduled))
}

// listScheduled godoc
// @Summary List scheduled transactions
// @Tags forecast
// @Produce  json
// @Success 200 {array} dto.ScheduledResponse
// @Router /scheduled-transactions [get]
func (h *forecastHandler) listScheduled(c *gin.Context) {
	scheduled, err := h.forecastService.ListScheduled(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list scheduled transactions")
		return
	}

	res := make([]dto.ScheduledResponse, len(scheduled))
	for i := range scheduled {
		res[i] = dto.ToScheduledResponse(&scheduled[i])
	}
	c.JSON(http.StatusOK, res)
}

// deactivateScheduled godoc
// @Summary Deactivate a scheduled transaction
// @Tags forecast
// @Produce  json
// @Param   scheduledID path string true "Scheduled transaction ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Scheduled transaction not found"
// @Router /scheduled-transactions/{scheduledID} [delete]
func (h *forecastHandler) deactivateScheduled(c *gin.Context) {
	if err := h.forecastService.DeactivateScheduled(c.Request.Context(), c.Param("scheduledID")); err != nil {
		respondError(c, err, "Failed to deactivate scheduled transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// forecast godoc
// @Summary Expand scheduled transactions into a forecast
// @Description Lists projected occurrences of every active schedule within [start, end]
// @Tags forecast
// @Produce  json
// @Param   start query string true "Range start (YYYY-MM-DD)"
// @Param   end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ForecastEntryResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /forecast [get]
func (h *forecastHandler) forecast(c *gin.Context) {
	var params dto.ForecastParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.forecastService.Forecast(c.Request.Context(), params.Start, params.End)
	if err != nil {
		respondError(c, err, "Failed to expand forecast")
		return
	}
	c.JSON(http.StatusOK, dto.ToForecastEntryResponses(entries))
}

// accountProjection godoc
// @Summary Project an account balance
// @Description Applies forecast entries touching the account to its current balance, producing a dated series
// @Tags forecast
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   start query string true "Range start (YYYY-MM-DD)"
// @Param   end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ProjectionPointResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /forecast/accounts/{accountID} [get]
func (h *forecastHandler) accountProjection(c *gin.Context) {
	var params dto.ForecastParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	points, err := h.forecastService.AccountProjection(c.Request.Context(), c.Param("accountID"), params.Start, params.End)
	if err != nil {
		respondError(c, err, "Failed to project account balance")
		return
	}

	res := make([]dto.ProjectionPointResponse, len(points))
	for i, p := range points {
		res[i] = dto.ProjectionPointResponse{Date: p.Date, Balance: p.Balance}
	}
	c.JSON(http.StatusOK, res)
}
