package db

import (
	"rpg_backend/internal/domain" // Importing domain models

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table the service owns, parents first
var Models = []any{
	&domain.User{},
	&domain.Character{},
	&domain.Item{},
	&domain.InventoryEntry{},
	&domain.EquipmentEntry{},
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models...); err != nil {
		return errors.Wrap(err, "migration failed")
	}
	logrus.WithField("dialect", db.Dialector.Name()).Info("Migration completed.")
	return nil
}
