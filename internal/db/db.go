// Package db opens the PowerDNS database the record engine works on.
package db

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
	"github.com/GoPowerDNS-Admin/record-engine/internal/logger/adapter/gormlogger"
)

// Open connects to the database named by cfg.DB.GormEngine. With
// db.auto_migrate enabled the PowerDNS tables are created when missing,
// existing tables are left alone.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch strings.ToLower(cfg.DB.GormEngine) {
	case "mysql":
		dialector = mysql.Open(dsn.MySQL(cfg))

	case "postgres", "postgresql":
		dialector = postgres.Open(dsn.Postgres(cfg))

	case "sqlite", "sqlite3":
		dialector = sqlite.Open(cfg.DB.Path)

	default:
		return nil, errors.Wrapf(config.ErrUnknownDBEngine, "%q", cfg.DB.GormEngine)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if cfg.DB.AutoMigrate {
		if err = Migrate(gdb); err != nil {
			return nil, err
		}
	}

	return gdb, nil
}

// Migrate creates missing PowerDNS tables.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(&models.Domain{}, &models.Record{}, &models.Comment{})
	if err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}
