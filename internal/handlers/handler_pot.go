package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// potHandler handles HTTP requests related to savings pots.
type potHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

func newPotHandler(as portssvc.AccountSvcFacade, ls portssvc.LedgerSvcFacade) *potHandler {
	return &potHandler{accountService: as, ledgerService: ls}
}

// registerPotRoutes registers routes related to pots.
func registerPotRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newPotHandler(accountService, ledgerService)

	pots := rg.Group("/pots")
	{
		pots.POST("", h.createPot)
		pots.GET("", h.listPots)
		pots.GET("/:potID", h.getPot)
		pots.GET("/:potID/balance", h.getBalance)
		pots.GET("/:potID/transactions", h.listTransactions)
		pots.DELETE("/:potID", h.deactivatePot)
	}
}

// createPot godoc
// @Summary Create a pot
// @Description Registers a pot under an account; a positive initialAmount is moved into the pot atomically with its creation
// @Tags pots
// @Accept  json
// @Produce  json
// @Param   pot body dto.CreatePotRequest true "Pot details"
// @Success 201 {object} dto.PotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds for initial amount"
// @Router /pots [post]
func (h *potHandler) createPot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pot, err := h.accountService.CreatePot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create pot")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPotResponse(pot))
}

// getPot godoc
// @Summary Get a pot
// @Tags pots
// @Produce  json
// @Param   potID path string true "Pot ID"
// @Success 200 {object} dto.PotResponse
// @Failure 404 {object} map[string]string "Pot not found"
// @Router /pots/{potID} [get]
func (h *potHandler) getPot(c *gin.Context) {
	pot, err := h.accountService.GetPotByID(c.Request.Context(), c.Param("potID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve pot")
		return
	}
	c.JSON(http.StatusOK, dto.ToPotResponse(pot))
}

// listPots godoc
// @Summary List pots
// @Tags pots
// @Produce  json
// @Param   accountID query string false "Restrict to one account"
// @Success 200 {array} dto.PotResponse
// @Router /pots [get]
func (h *potHandler) listPots(c *gin.Context) {
	var accountID *string
	if id := c.Query("accountID"); id != "" {
		accountID = &id
	}

	pots, err := h.accountService.ListPots(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to list pots")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPotResponse(pots))
}

// getBalance godoc
// @Summary Get a pot balance
// @Description Returns the pot's folded balance alongside its savings target
// @Tags pots
// @Produce  json
// @Param   potID path string true "Pot ID"
// @Param   asOf query string false "Balance as of this date (RFC 3339)"
// @Success 200 {object} dto.PotBalanceResponse
// @Failure 404 {object} map[string]string "Pot not found"
// @Router /pots/{potID}/balance [get]
func (h *potHandler) getBalance(c *gin.Context) {
	potID := c.Param("potID")

	var asOf *time.Time
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be an RFC 3339 timestamp"})
			return
		}
		asOf = &parsed
	}

	pot, err := h.accountService.GetPotByID(c.Request.Context(), potID)
	if err != nil {
		respondError(c, err, "Failed to retrieve pot")
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), pot.AccountID)
	if err != nil {
		respondError(c, err, "Failed to retrieve pot account")
		return
	}

	balance, err := h.ledgerService.PotBalance(c.Request.Context(), potID, asOf)
	if err != nil {
		respondError(c, err, "Failed to fold pot balance")
		return
	}

	c.JSON(http.StatusOK, dto.PotBalanceResponse{
		PotID:        pot.PotID,
		AccountID:    pot.AccountID,
		CurrencyCode: account.CurrencyCode,
		Balance:      balance,
		TargetAmount: pot.TargetAmount,
		AsOf:         asOf,
	})
}

// listTransactions godoc
// @Summary List a pot's transactions
// @Tags pots
// @Produce  json
// @Param   potID path string true "Pot ID"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Pot not found"
// @Router /pots/{potID}/transactions [get]
func (h *potHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.ledgerService.PotTransactions(c.Request.Context(), c.Param("potID"), params)
	if err != nil {
		respondError(c, err, "Failed to list pot transactions")
		return
	}
	c.JSON(http.StatusOK, res)
}

// deactivatePot godoc
// @Summary Deactivate a pot
// @Description Soft-deletes a pot; the pot must be empty
// @Tags pots
// @Produce  json
// @Param   potID path string true "Pot ID"
// @Success 204 "Deactivated"
// @Failure 400 {object} map[string]string "Pot still holds funds"
// @Failure 404 {object} map[string]string "Pot not found"
// @Router /pots/{potID} [delete]
func (h *potHandler) deactivatePot(c *gin.Context) {
	if err := h.accountService.DeactivatePot(c.Request.Context(), c.Param("potID")); err != nil {
		respondError(c, err, "Failed to deactivate pot")
		return
	}
	c.Status(http.StatusNoContent)
}
