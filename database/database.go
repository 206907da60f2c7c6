package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open подключение к БД. sqlite используется для локальной разработки и тестов,
// dsn для него - путь к файлу.
func Open(driver, dsn string, silent bool) (*gorm.DB, error) {
	// уникальные нарушения приходят как gorm.ErrDuplicatedKey
	cfg := &gorm.Config{TranslateError: true}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// одна запись за раз, иначе sqlite отвечает "database is locked"
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// OpenSQLite открывает файл и сразу мигрирует схему
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := Open(DriverSQLite, path, true)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
