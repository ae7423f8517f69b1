package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stockroom/pkg/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "items_name_lower_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"any constraint", dup, "", true},
		{"matching constraint", dup, "items_name_lower_key", true},
		{"other constraint", dup, "item_prices_one_open", false},
		{"wrapped", fmt.Errorf("insert item: %w", dup), "", true},
		{"check violation", &pgconn.PgError{Code: "23514"}, "", false},
		{"plain error", errors.New("boom"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err, tt.constraint); got != tt.want {
				t.Fatalf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsConstraintViolation(t *testing.T) {
	if !IsConstraintViolation(&pgconn.PgError{Code: "23514"}) {
		t.Fatal("check violation not detected")
	}
	if !IsConstraintViolation(&pgconn.PgError{Code: "23P01"}) {
		t.Fatal("exclusion violation not detected")
	}
	if IsConstraintViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation must not count as check/exclusion")
	}
}

// TestWithTx_Integration requires a running Postgres (DATABASE_URL).
func TestWithTx_Integration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := NewPool(ctx, url, logger.NewWithHandler(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close()

	if _, err := db.DB().ExecContext(ctx, `CREATE TEMP TABLE tx_probe (n int)`); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	boom := errors.New("boom")
	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tx_probe VALUES (1)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestIsOutOfRange(t *testing.T) {
	overflow := &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}
	if !IsOutOfRange(overflow) {
		t.Fatal("numeric overflow not detected")
	}
	if !IsOutOfRange(fmt.Errorf("insert price: %w", overflow)) {
		t.Fatal("wrapped overflow not detected")
	}
	if IsOutOfRange(&pgconn.PgError{Code: "23514"}) {
		t.Fatal("check violation must not count as out of range")
	}
	if IsOutOfRange(errors.New("boom")) {
		t.Fatal("plain error must not count as out of range")
	}
}
