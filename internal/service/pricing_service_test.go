package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
)

func TestPricingDefaultsWithoutSavedConfig(t *testing.T) {
	pricing := NewPricingService(newFakeStore(), zerolog.Nop())
	pricing.Load(context.Background())
	if got := pricing.Current(); got != domain.DefaultPriceConfig() {
		t.Errorf("Current() = %+v, want defaults", got)
	}
}

func TestPricingUpdate(t *testing.T) {
	store := newFakeStore()
	pricing := NewPricingService(store, zerolog.Nop())
	ctx := context.Background()

	cfg := domain.DefaultPriceConfig()
	cfg.PrecioHoraCarros = "6000"
	if err := pricing.Update(ctx, cfg); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := pricing.Current(); got.PrecioHoraCarros != "6000" {
		t.Errorf("Current().PrecioHoraCarros = %q, want 6000", got.PrecioHoraCarros)
	}

	// a second service over the same store sees the saved table
	other := NewPricingService(store, zerolog.Nop())
	other.Load(ctx)
	if got := other.Current(); got.PrecioHoraCarros != "6000" {
		t.Errorf("reloaded PrecioHoraCarros = %q, want 6000", got.PrecioHoraCarros)
	}
}

func TestPricingUpdateRejectsInvalid(t *testing.T) {
	pricing := NewPricingService(newFakeStore(), zerolog.Nop())

	for _, cfg := range []domain.PriceConfig{
		{},
		{MaxMotos: "50", MaxCarros: "30", PrecioHoraMotos: "abc", PrecioHoraCarros: "5000", PrecioMesMotos: "40000", PrecioMesCarros: "100000"},
		{MaxMotos: "-1", MaxCarros: "30", PrecioHoraMotos: "2000", PrecioHoraCarros: "5000", PrecioMesMotos: "40000", PrecioMesCarros: "100000"},
	} {
		if err := pricing.Update(context.Background(), cfg); !errors.Is(err, ErrInvalidPriceConfig) {
			t.Errorf("Update(%+v): got %v, want ErrInvalidPriceConfig", cfg, err)
		}
	}
}
