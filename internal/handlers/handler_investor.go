package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type investorHandler struct {
	cryptoService portssvc.CryptoSvcFacade
}

func registerInvestorRoutes(rg *gin.RouterGroup, cryptoService portssvc.CryptoSvcFacade) {
	h := &investorHandler{cryptoService: cryptoService}
	rg.GET("/investor/crypto", h.getCryptoQuotes)
}

// getCryptoQuotes godoc
// @Summary Crypto prices
// @Description Live THB and USD prices with 24h change. Defaults to bitcoin, ethereum and binancecoin.
// @Tags investor
// @Produce json
// @Param ids query string false "Comma separated CoinGecko ids"
// @Success 200 {object} map[string]dto.CoinQuoteResponse
// @Failure 502 {object} ErrorResponse "Market data provider unavailable"
// @Security BearerAuth
// @Router /investor/crypto [get]
func (h *investorHandler) getCryptoQuotes(c *gin.Context) {
	var params dto.CryptoQuotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "GetCryptoQuotes")
		return
	}

	var ids []string
	if params.IDs != "" {
		ids = strings.Split(params.IDs, ",")
	}

	quotes, err := h.cryptoService.GetQuotes(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "Failed to fetch crypto prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToCoinQuotesResponse(quotes))
}
