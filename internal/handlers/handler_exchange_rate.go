package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newExchangeRateHandler(cs portssvc.CurrencySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{currencyService: cs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newExchangeRateHandler(currencyService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.setExchangeRate)
		rates.GET("/convert", h.convert)
	}
}

// setExchangeRate godoc
// @Summary Set an exchange rate
// @Description Stores a rate for an ordered currency pair, and the reciprocal for the reverse pair when setInverse is true
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not registered"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) setExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rates, err := h.currencyService.SetExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to set exchange rate")
		return
	}

	res := make([]dto.ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = dto.ToExchangeRateResponse(&rates[i])
	}
	c.JSON(http.StatusCreated, res)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using the rate effective at the given time, or the latest when omitted
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Amount to convert"
// @Param   at query string false "Effective time (RFC 3339)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No rate for the pair"
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to currency codes are required"})
		return
	}

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	var at *time.Time
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at must be an RFC 3339 timestamp"})
			return
		}
		at = &parsed
	}

	rate, err := h.currencyService.RateAt(c.Request.Context(), from, to, at)
	if err != nil {
		respondError(c, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Amount:           amount,
		Converted:        amount.Mul(rate),
		Rate:             rate,
	})
}
