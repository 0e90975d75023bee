package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id                BIGINT AUTO_INCREMENT PRIMARY KEY,
		email             VARCHAR(255) NOT NULL UNIQUE,
		auth_hash         VARCHAR(255) NOT NULL,
		password_strength VARCHAR(16)  NOT NULL,
		created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

// NewDB opens a MySQL connection pool and verifies it is reachable.
// parseTime is always enabled so timestamps scan into time.Time.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables the service needs if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, usersSchema); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}
