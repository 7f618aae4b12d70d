package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
)

// Store persists the ledger keys in a single key/value table with JSONB
// values, mirroring the layout the Redis backend uses so either can restore
// the other's state.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewStore(db *sql.DB, logger zerolog.Logger) (*Store, error) {
	s := &Store{db: db, logger: logger}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ledger_kv (
	            key        TEXT PRIMARY KEY,
	            value      JSONB NOT NULL,
	            updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	          )`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("postgresql.Store.ensureSchema: %w", err)
	}
	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgresql: marshal %s: %w", key, err)
	}
	query := `INSERT INTO ledger_kv (key, value, updated_at)
	           VALUES ($1, $2, CURRENT_TIMESTAMP)
	           ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("postgresql: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) getJSON(ctx context.Context, key string, v any) error {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM ledger_kv WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("postgresql: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("postgresql: unmarshal %s: %w", key, err)
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
