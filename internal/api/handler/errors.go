package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/repository"
	"github.com/PunisherCE/Parqueaderos/internal/service"
)

// respondLedgerError maps the ledger error taxonomy onto HTTP statuses.
// Capacity denials include the current count and limit so the operator sees
// both numbers.
func respondLedgerError(c *gin.Context, err error) {
	var capErr *service.CapacityError
	switch {
	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   capErr.Error(),
			"type":    capErr.Type,
			"current": capErr.Current,
			"limit":   capErr.Limit,
		})
	case errors.Is(err, service.ErrInvalidPlate),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidUnit),
		errors.Is(err, service.ErrInvalidPriceConfig):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the change was applied but could not be saved", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
