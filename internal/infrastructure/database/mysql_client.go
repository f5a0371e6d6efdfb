package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"driveway_xpto/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

type DB struct {
	*sql.DB
}

// Connect opens the MySQL pool described by cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	dsn, err := cfg.FormatDSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[database] connected name=%s max_open_conns=%d", cfg.Name, cfg.MaxOpenConns)
	return &DB{db}, nil
}

// HealthCheck pings the database with a short deadline.
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
