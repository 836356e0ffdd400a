package infra

import (
	"fmt"

	"github.com/WallaceMuylaert/optics-api/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens (or creates) the sqlite file at path and runs
// AutoMigrate so the schema exists before the first request. There is
// no migration system: the schema is derived from the model structs.
//
// _foreign_keys=on is required for the ON DELETE CASCADE constraints
// to fire — sqlite ships with foreign key enforcement off.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Map sqlite constraint errors onto gorm.ErrDuplicatedKey so
		// services can errors.Is instead of parsing driver messages.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; more connections just queue on
	// the file lock and surface SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Supplier{},
		&model.Order{},
		&model.Address{},
		&model.Role{},
		&model.UserRole{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
