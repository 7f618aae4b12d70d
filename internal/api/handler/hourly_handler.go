package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

type HourlyHandler struct {
	ledger *service.LedgerService
}

func NewHourlyHandler(ls *service.LedgerService) *HourlyHandler {
	return &HourlyHandler{ledger: ls}
}

// POST /hourly
func (h *HourlyHandler) Register(c *gin.Context) {
	var dto domain.RegisterHourlyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ticket, err := h.ledger.RegisterHourly(c.Request.Context(), dto.Plate)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// POST /plates/normalize
func (h *HourlyHandler) NormalizePlate(c *gin.Context) {
	var dto domain.NormalizePlateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	plate := domain.NormalizePlate(dto.Previous, dto.Text)
	c.JSON(http.StatusOK, domain.NormalizedPlateDTO{
		Plate:    plate,
		Complete: domain.ValidPlate(plate),
	})
}

// POST /hourly/:plate/bill
func (h *HourlyHandler) Bill(c *gin.Context) {
	receipt, err := h.ledger.BillHourly(c.Request.Context(), c.Param("plate"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// GET /hourly?plate=
func (h *HourlyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.ListHourly(c.Query("plate")))
}

// GET /occupancy
func (h *HourlyHandler) Occupancy(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Occupancy())
}

// GET /revenue
func (h *HourlyHandler) Revenue(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Revenue())
}
