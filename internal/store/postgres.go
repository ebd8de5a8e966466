package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/linx/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
// Uniqueness is enforced by the primary key on link.code.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Insert stores url under code, mapping a primary key violation to
// shortener.ErrDuplicateCode.
func (p *PostgresStore) Insert(ctx context.Context, code shortener.Code, url string) error {
	query := `INSERT INTO link (code, url) VALUES ($1, $2)`

	if _, err := p.pool.Exec(ctx, query, string(code), url); err != nil {
		if isUniqueViolation(err) {
			return shortener.ErrDuplicateCode
		}

		return fmt.Errorf("insert link: %w", err)
	}

	return nil
}

// Lookup returns the URL stored under code, or shortener.ErrNotFound.
func (p *PostgresStore) Lookup(ctx context.Context, code shortener.Code) (string, error) {
	query := `SELECT url FROM link WHERE code = $1`

	var url string

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shortener.ErrNotFound
		}

		return "", fmt.Errorf("lookup link: %w", err)
	}

	return url, nil
}

// Ping checks PostgreSQL connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Shutdown closes the connection pool.
func (p *PostgresStore) Shutdown() error {
	p.pool.Close()

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
