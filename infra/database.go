package infra

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mhaefliger/grocery/infra/repository"
	"github.com/mhaefliger/grocery/pkg/config"
)

// NewDBConnection opens the Postgres connection. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey and can be
// mapped to domain errors.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	databaseURL := cnf.Url
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates or updates the four tables the tracker owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.Category{},
		&repository.Store{},
		&repository.Receipt{},
		&repository.Item{},
	)
}
