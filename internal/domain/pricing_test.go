package domain

import "testing"

func TestPriceConfigValidate(t *testing.T) {
	cfg := DefaultPriceConfig()
	if !cfg.Validate() {
		t.Fatal("default config should validate")
	}

	tests := []struct {
		name   string
		mutate func(*PriceConfig)
	}{
		{"empty field", func(c *PriceConfig) { c.MaxMotos = "" }},
		{"non-numeric field", func(c *PriceConfig) { c.PrecioHoraCarros = "12a" }},
		{"negative field", func(c *PriceConfig) { c.PrecioMesMotos = "-1" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultPriceConfig()
			tt.mutate(&c)
			if c.Validate() {
				t.Error("expected Validate() = false")
			}
		})
	}
}

func TestPriceConfigAccessors(t *testing.T) {
	cfg := DefaultPriceConfig()

	if got := cfg.MaxFor(TypeCar); got != 30 {
		t.Errorf("MaxFor(car) = %d, want 30", got)
	}
	if got := cfg.MaxFor(TypeMotorcycle); got != 50 {
		t.Errorf("MaxFor(motorcycle) = %d, want 50", got)
	}
	if got := cfg.HourlyRateFor(TypeCar); got != 5000 {
		t.Errorf("HourlyRateFor(car) = %v, want 5000", got)
	}
	if got := cfg.HourlyRateFor(TypeMotorcycle); got != 2000 {
		t.Errorf("HourlyRateFor(motorcycle) = %v, want 2000", got)
	}
	if got := cfg.MonthlyRateFor(TypeCar); got != 100000 {
		t.Errorf("MonthlyRateFor(car) = %v, want 100000", got)
	}
}

// The weekly rate is the monthly rate divided by four without rounding, so a
// monthly rate that is not a multiple of four yields a fractional weekly rate.
func TestWeeklyRateIsUnroundedQuarter(t *testing.T) {
	cfg := DefaultPriceConfig()
	if got := cfg.WeeklyRateFor(TypeCar); got != 25000 {
		t.Errorf("WeeklyRateFor(car) = %v, want 25000", got)
	}

	cfg.PrecioMesMotos = "50001"
	if got := cfg.WeeklyRateFor(TypeMotorcycle); got != 12500.25 {
		t.Errorf("WeeklyRateFor(motorcycle) = %v, want 12500.25", got)
	}
}
