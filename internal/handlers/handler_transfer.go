package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// transferHandler handles HTTP requests that move money.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.transferBetweenAccounts)
		transfers.POST("/to-pot", h.transferToPot)
		transfers.POST("/from-pot", h.transferFromPot)
		transfers.POST("/between-pots", h.transferBetweenPots)
	}
}

// transferBetweenAccounts godoc
// @Summary Transfer between accounts
// @Description Moves an amount between two accounts, converting currency when they differ
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds or missing exchange rate"
// @Router /transfers [post]
func (h *transferHandler) transferBetweenAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transferService.TransferBetweenAccounts(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to execute transfer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transferToPot godoc
// @Summary Move funds into a pot
// @Description Ring-fences part of an account's balance inside one of its pots
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.PotTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or pot not owned by account"
// @Failure 422 {object} map[string]string "Insufficient available funds"
// @Router /transfers/to-pot [post]
func (h *transferHandler) transferToPot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PotTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferToPot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transferService.TransferToPot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to move funds to pot")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transferFromPot godoc
// @Summary Withdraw funds from a pot
// @Description Returns ring-fenced funds to the account's spendable balance; a pot never goes negative
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.PotTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or pot not owned by account"
// @Failure 422 {object} map[string]string "Insufficient pot funds"
// @Router /transfers/from-pot [post]
func (h *transferHandler) transferFromPot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PotTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferFromPot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transferService.TransferFromPot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to withdraw funds from pot")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transferBetweenPots godoc
// @Summary Move funds between pots
// @Description Moves funds between two pots of the same account
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.PotToPotTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or pot not owned by account"
// @Failure 422 {object} map[string]string "Insufficient source pot funds"
// @Router /transfers/between-pots [post]
func (h *transferHandler) transferBetweenPots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PotToPotTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferBetweenPots", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transferService.TransferBetweenPots(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to move funds between pots")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
