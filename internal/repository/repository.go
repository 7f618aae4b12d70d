package repository

import (
	"context"
	"errors"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateEntry = errors.New("record already exists")

// Persisted keys shared by every backend. Values are JSON-encoded; the
// collections are stored newest first.
const (
	KeyHourlyVehicles       = "hourlyVehicles"
	KeySubscriptionVehicles = "subscriptionVehicles"
	KeyRevenueTotal         = "revenueTotal"
	KeyPriceConfig          = "priceConfig"
	KeyUsers                = "users"
)

// LedgerRepository persists the two vehicle populations and the revenue
// snapshot. Save replaces the whole collection; Load returns ErrNotFound when
// a key has never been written.
type LedgerRepository interface {
	SaveHourly(ctx context.Context, sessions []domain.HourlySession) error
	LoadHourly(ctx context.Context) ([]domain.HourlySession, error)
	SaveSubscriptions(ctx context.Context, subs []domain.Subscription) error
	LoadSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	SaveRevenue(ctx context.Context, snap domain.RevenueSnapshot) error
	LoadRevenue(ctx context.Context) (domain.RevenueSnapshot, error)
}

type PriceConfigRepository interface {
	Save(ctx context.Context, cfg domain.PriceConfig) error
	Load(ctx context.Context) (domain.PriceConfig, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
