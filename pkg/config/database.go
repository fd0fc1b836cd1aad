package config

import (
	"fmt"
	"os"

	"github.com/anonto42/qa-forum/backend/pkg/logger"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the single database handle shared by every repository.
type DB struct {
	Conn *gorm.DB
	log  zerolog.Logger
}

// InitDB opens the configured database and verifies the connection.
// The sqlite file must already exist: the forum schema is provisioned elsewhere.
func InitDB(cfg DatabaseConfig, log zerolog.Logger) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		if _, err := os.Stat(cfg.Path); err != nil {
			return nil, fmt.Errorf("sqlite database file %s: %w", cfg.Path, err)
		}
		dialector = sqlite.Open(cfg.Path + "?_pragma=foreign_keys(1)&_pragma=query_only(1)")
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	conn, err := Open(dialector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == "sqlite" {
		if err := serialize(conn); err != nil {
			return nil, fmt.Errorf("configure sqlite pool: %w", err)
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("database connection established")
	return &DB{Conn: conn, log: log}, nil
}

// Open wraps gorm.Open with the zerolog query logger and a ping.
func Open(dialector gorm.Dialector, log zerolog.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.NewGormLogger(log),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}

// serialize pins the pool to one connection so every caller on the
// embedded engine takes turns.
func serialize(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

// CloseDB closes the underlying connection.
func (db *DB) CloseDB() {
	if db.Conn == nil {
		return
	}
	sqlDB, err := db.Conn.DB()
	if err != nil {
		db.log.Error().Err(err).Msg("error getting sql.DB from gorm")
		return
	}
	if err := sqlDB.Close(); err != nil {
		db.log.Error().Err(err).Msg("error closing database connection")
		return
	}
	db.log.Info().Msg("database connection closed")
}
