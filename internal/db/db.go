package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockview-be/internal/config"
	"stockview-be/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrNoDatabaseURL = errors.New("DB_URL is not set")

func buildDSN(cfg *config.Config) string {
	return cfg.DBURL
}

// NewDatabase opens and pings the Postgres product database.
func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, "postgres")
}

func newDatabaseWithDriver(cfg *config.Config, driver string) (*sql.DB, error) {
	dsn := buildDSN(cfg)
	if dsn == "" {
		return nil, ErrNoDatabaseURL
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}

// InitDB is NewDatabase for process start-up: any failure is fatal.
func InitDB(cfg *config.Config) *sql.DB {
	db, err := NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("database init failed", zap.Error(err))
	}

	logger.L().Info("database connection established")
	return db
}
