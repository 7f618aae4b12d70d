package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
	"github.com/PunisherCE/Parqueaderos/internal/repository"
)

// userTable is the whole operator account table, persisted as one JSON value.
// The account population is a handful of operators, so a single document is
// simpler than per-user keys.
type userTable struct {
	NextID int                    `json:"next_id"`
	Users  map[string]domain.User `json:"users"`
}

func (s *Store) loadUsers(ctx context.Context) (userTable, error) {
	var table userTable
	err := s.getJSON(ctx, repository.KeyUsers, &table)
	if errors.Is(err, repository.ErrNotFound) {
		return userTable{NextID: 1, Users: map[string]domain.User{}}, nil
	}
	if err != nil {
		return userTable{}, err
	}
	if table.Users == nil {
		table.Users = map[string]domain.User{}
	}
	return table, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	table, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := table.Users[user.Username]; exists {
		return nil, repository.ErrDuplicateEntry
	}
	user.ID = table.NextID
	user.CreatedAt = time.Now().UTC()
	table.NextID++
	table.Users[user.Username] = *user
	if err := s.setJSON(ctx, repository.KeyUsers, table); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	table, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := table.Users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (s *Store) Update(ctx context.Context, user *domain.User) error {
	table, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	if _, ok := table.Users[user.Username]; !ok {
		return repository.ErrNotFound
	}
	table.Users[user.Username] = *user
	return s.setJSON(ctx, repository.KeyUsers, table)
}
