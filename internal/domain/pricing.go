package domain

import "strconv"

// PriceConfig holds the capacity limits and rates of the lot. Values are kept
// as numeric strings because that is how they are edited and persisted; the
// typed accessors are what the guard and the billing calculator read.
type PriceConfig struct {
	MaxMotos         string `json:"maxMotos"`
	MaxCarros        string `json:"maxCarros"`
	PrecioHoraMotos  string `json:"precioHoraMotos"`
	PrecioHoraCarros string `json:"precioHoraCarros"`
	PrecioMesMotos   string `json:"precioMesMotos"`
	PrecioMesCarros  string `json:"precioMesCarros"`
}

func DefaultPriceConfig() PriceConfig {
	return PriceConfig{
		MaxMotos:         "50",
		MaxCarros:        "30",
		PrecioHoraMotos:  "2000",
		PrecioHoraCarros: "5000",
		PrecioMesMotos:   "40000",
		PrecioMesCarros:  "100000",
	}
}

// Validate checks that every field is a non-empty base-10 non-negative integer.
func (c PriceConfig) Validate() bool {
	for _, v := range []string{
		c.MaxMotos, c.MaxCarros,
		c.PrecioHoraMotos, c.PrecioHoraCarros,
		c.PrecioMesMotos, c.PrecioMesCarros,
	} {
		if v == "" {
			return false
		}
		if n, err := strconv.Atoi(v); err != nil || n < 0 {
			return false
		}
	}
	return true
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// MaxFor returns the capacity limit for a vehicle type.
func (c PriceConfig) MaxFor(t VehicleType) int {
	if t == TypeMotorcycle {
		return atoiOrZero(c.MaxMotos)
	}
	return atoiOrZero(c.MaxCarros)
}

// HourlyRateFor returns the per-hour rate for a vehicle type.
func (c PriceConfig) HourlyRateFor(t VehicleType) float64 {
	if t == TypeMotorcycle {
		return float64(atoiOrZero(c.PrecioHoraMotos))
	}
	return float64(atoiOrZero(c.PrecioHoraCarros))
}

// MonthlyRateFor returns the per-month subscription rate for a vehicle type.
func (c PriceConfig) MonthlyRateFor(t VehicleType) float64 {
	if t == TypeMotorcycle {
		return float64(atoiOrZero(c.PrecioMesMotos))
	}
	return float64(atoiOrZero(c.PrecioMesCarros))
}

// WeeklyRateFor is the monthly rate divided by four. The division is left in
// floating point, so fractional weekly amounts are a possible output.
func (c PriceConfig) WeeklyRateFor(t VehicleType) float64 {
	return c.MonthlyRateFor(t) / 4
}
