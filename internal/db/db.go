package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projeto-evento/evento-api/internal/config"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DB, conf.SSLMode,
	)

	db, err := OpenPostgresWithURL(dsn)
	if err != nil {
		return nil, err
	}

	if conf.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db.DB -> %w", err)
		}
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}

	return db, nil
}

// OpenPostgresWithURL accepts either a postgres:// URL or a key=value DSN.
func OpenPostgresWithURL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(postgres) -> %w", err)
	}

	return db, nil
}

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(sqlite) -> %w", err)
	}

	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY under load.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys -> %w", err)
	}

	return db, nil
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			zap.NewStdLog(zap.L().Named("gorm")),
			logger.Config{
				SlowThreshold:             300 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
