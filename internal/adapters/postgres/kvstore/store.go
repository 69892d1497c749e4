package kvstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

// Store is a Postgres implementation of kvstore.Store.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

// Migrate creates the kv table when absent. The schema is a single table,
// created idempotently at startup.
func (s *Store) Migrate(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.pool == nil {
		return "", false, errors.New("nil postgres pool")
	}
	var v string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM kv WHERE key = $1`, key)
	return err
}

var _ kvstoreport.Store = (*Store)(nil)
