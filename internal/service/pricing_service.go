package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
)

var ErrInvalidPriceConfig = errors.New("every price config field must be a non-negative number")

// PricingService is the configuration authority: it owns the current price
// table, which the ledger only ever reads. Updates are validated and
// persisted immediately.
type PricingService struct {
	mu      sync.RWMutex
	repo    repository.PriceConfigRepository
	logger  zerolog.Logger
	current domain.PriceConfig
}

func NewPricingService(repo repository.PriceConfigRepository, logger zerolog.Logger) *PricingService {
	return &PricingService{
		repo:    repo,
		logger:  logger,
		current: domain.DefaultPriceConfig(),
	}
}

// Load restores the persisted config, falling back to the defaults when
// nothing was saved yet or the read fails.
func (s *PricingService) Load(ctx context.Context) {
	cfg, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().Err(err).Msg("loading price config failed, using defaults")
		}
		return
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
}

func (s *PricingService) Current() domain.PriceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies and persists a new price table. The in-memory config is
// swapped before the write, so a failed write leaves the new table active;
// the error still reaches the operator.
func (s *PricingService) Update(ctx context.Context, cfg domain.PriceConfig) error {
	if !cfg.Validate() {
		return ErrInvalidPriceConfig
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	if err := s.repo.Save(ctx, cfg); err != nil {
		s.logger.Error().Err(err).Msg("persisting price config failed")
		return errPersist(err)
	}
	return nil
}
