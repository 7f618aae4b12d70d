package service

import (
	"fmt"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
)

// CapacityError carries the numbers the operator is shown when a vehicle is
// turned away.
type CapacityError struct {
	Type    domain.VehicleType
	Current int
	Limit   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity limit reached for %s: current %d, limit %d", e.Type, e.Current, e.Limit)
}

// CapacityGuard decides whether a vehicle of a given type may be admitted.
// The caller supplies the occupancy summed across both populations; neither
// population alone is authoritative.
type CapacityGuard struct{}

func (CapacityGuard) Admit(cfg domain.PriceConfig, t domain.VehicleType, current int) error {
	if limit := cfg.MaxFor(t); current >= limit {
		return &CapacityError{Type: t, Current: current, Limit: limit}
	}
	return nil
}
