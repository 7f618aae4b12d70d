package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/config"
	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
)

// Store keeps every ledger key in Redis as a JSON-encoded string value.
type Store struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redisstore.New: ping: %w", err)
	}
	return &Store{rdb: rdb, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redisstore: marshal %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) getJSON(ctx context.Context, key string, v any) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("redisstore: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("redisstore: unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveHourly(ctx context.Context, sessions []domain.HourlySession) error {
	return s.setJSON(ctx, repository.KeyHourlyVehicles, sessions)
}

func (s *Store) LoadHourly(ctx context.Context) ([]domain.HourlySession, error) {
	var sessions []domain.HourlySession
	if err := s.getJSON(ctx, repository.KeyHourlyVehicles, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) SaveSubscriptions(ctx context.Context, subs []domain.Subscription) error {
	return s.setJSON(ctx, repository.KeySubscriptionVehicles, subs)
}

func (s *Store) LoadSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	if err := s.getJSON(ctx, repository.KeySubscriptionVehicles, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Store) SaveRevenue(ctx context.Context, snap domain.RevenueSnapshot) error {
	return s.setJSON(ctx, repository.KeyRevenueTotal, snap)
}

func (s *Store) LoadRevenue(ctx context.Context) (domain.RevenueSnapshot, error) {
	var snap domain.RevenueSnapshot
	if err := s.getJSON(ctx, repository.KeyRevenueTotal, &snap); err != nil {
		return domain.RevenueSnapshot{}, err
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, cfg domain.PriceConfig) error {
	return s.setJSON(ctx, repository.KeyPriceConfig, cfg)
}

func (s *Store) Load(ctx context.Context) (domain.PriceConfig, error) {
	var cfg domain.PriceConfig
	if err := s.getJSON(ctx, repository.KeyPriceConfig, &cfg); err != nil {
		return domain.PriceConfig{}, err
	}
	return cfg, nil
}
