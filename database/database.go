package database

import (
	"fmt"
	"time"

	"korus_backend/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Options - параметры подключения, не зависящие от формата config.yaml
type Options struct {
	Driver        string
	DSN           string
	SlowThreshold time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Driver:        cfg.Database.Driver,
		DSN:           cfg.Database.DSN,
		SlowThreshold: cfg.SlowQueryThreshold(),
	}
}

// Open открывает *gorm.DB для выбранного драйвера. Все времена пишутся в UTC,
// чтобы сравнения по created_at совпадали между драйверами.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  NewGormLogger(opts.SlowThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
		// Нарушение уникальности приходит как gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM (%s): %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}

	if opts.Driver == DriverSQLite {
		// SQLite сериализует писателей; одно соединение также держит in-memory базу живой
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
