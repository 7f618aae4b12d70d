package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

type PricingHandler struct {
	pricing *service.PricingService
}

func NewPricingHandler(ps *service.PricingService) *PricingHandler {
	return &PricingHandler{pricing: ps}
}

// GET /pricing
func (h *PricingHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.pricing.Current())
}

// PUT /pricing (admin only; the settings screen behind the password gate)
func (h *PricingHandler) Update(c *gin.Context) {
	var cfg domain.PriceConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.pricing.Update(c.Request.Context(), cfg); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.pricing.Current())
}
