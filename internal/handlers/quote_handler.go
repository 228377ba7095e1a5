package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestegg/internal/quotes"
)

// QuoteHandler serves the symbol catalogue and historical daily closes.
type QuoteHandler struct {
	client *quotes.Client
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(client *quotes.Client) *QuoteHandler {
	return &QuoteHandler{client: client}
}

// ListSymbols returns the supported ticker catalogue
// @Summary     List symbols
// @Description List the tickers available for stock investments
// @Tags        quotes
// @Produce     json
// @Success     200 {array} quotes.Symbol "Symbols"
// @Router      /symbols [get]
func (h *QuoteHandler) ListSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": quotes.Symbols})
}

// GetDailyCloses returns a symbol's daily closing prices
// @Summary     Get daily closes
// @Description Fetch the symbol's daily closing prices in ascending date order
// @Tags        quotes
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {array} quotes.DailyClose "Daily closes"
// @Failure     502 {object} ErrorResponse "Historical data unavailable"
// @Router      /quotes/{symbol}/daily [get]
func (h *QuoteHandler) GetDailyCloses(c *gin.Context) {
	closes, err := h.client.DailyCloses(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closes": closes})
}
