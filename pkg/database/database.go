// Package database wraps a pgx-backed *sql.DB with transaction helpers shared by
// every Postgres repository.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/stockroom/pkg/logger"
)

const (
	pgUniqueViolation    = "23505"
	pgCheckViolation     = "23514"
	pgExclusionViolation = "23P01"
	pgNumericOutOfRange  = "22003"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so query helpers run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Database is the shared connection pool.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pool against url and verifies it with a ping.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	return &Database{db: db, log: log}, nil
}

// DB returns the underlying pool for non-transactional reads.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a READ COMMITTED transaction, committing on nil and
// rolling back on error or panic.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				d.log.ErrorContext(ctx, "database: rollback failed", "error", rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// Ping checks connectivity for the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

func (d *Database) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Error("database: close", "error", err)
	}
}

// IsUniqueViolation reports whether err is a Postgres unique_violation,
// optionally restricted to the named constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	return isPgCode(err, pgUniqueViolation, constraint)
}

// IsConstraintViolation reports whether err is a CHECK or EXCLUDE violation.
func IsConstraintViolation(err error) bool {
	return isPgCode(err, pgCheckViolation, "") || isPgCode(err, pgExclusionViolation, "")
}

// IsCheckViolation reports whether err is a CHECK violation of the named constraint.
func IsCheckViolation(err error, constraint string) bool {
	return isPgCode(err, pgCheckViolation, constraint)
}

// IsOutOfRange reports whether a value did not fit its column type, such as a
// NUMERIC precision overflow or an INTEGER overflow.
func IsOutOfRange(err error) bool {
	return isPgCode(err, pgNumericOutOfRange, "")
}

func isPgCode(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
