package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

type SubscriptionHandler struct {
	ledger *service.LedgerService
}

func NewSubscriptionHandler(ls *service.LedgerService) *SubscriptionHandler {
	return &SubscriptionHandler{ledger: ls}
}

// POST /subscriptions
func (h *SubscriptionHandler) Register(c *gin.Context) {
	var dto domain.RegisterSubscriptionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	sub, err := h.ledger.RegisterSubscription(c.Request.Context(), dto)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// POST /subscriptions/:plate/renew
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	var dto domain.RenewSubscriptionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	sub, err := h.ledger.RenewSubscription(c.Request.Context(), c.Param("plate"), dto)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DELETE /subscriptions/:plate
func (h *SubscriptionHandler) Remove(c *gin.Context) {
	receipt, err := h.ledger.RemoveSubscription(c.Request.Context(), c.Param("plate"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// GET /subscriptions?plate=
func (h *SubscriptionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.ListSubscriptions(c.Query("plate")))
}
