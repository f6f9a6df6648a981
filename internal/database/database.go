package database

import (
	"fmt"

	"internlink_backend/internal/config"
	"internlink_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect открывает соединение с БД по драйверу из конфига.
// Продакшен живет на postgres; первая фаза и тесты - на sqlite-файле
// (та же схема, те же unique-индексы).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	// TranslateError превращает нарушение unique-индекса в gorm.ErrDuplicatedKey
	// независимо от драйвера - на этом держится обработка гонок check-then-insert
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
// Идемпотентна: повторный запуск ничего не ломает.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Application{},
		&models.ResetCode{},
	)
}
