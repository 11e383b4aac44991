package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Kecyverse/skill-swap-platform/internal/config"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the postgres connection, configures the pool and runs migrations.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gormLogLevel := logger.Warn
	if cfg.IsDevelopment() {
		gormLogLevel = logger.Info
	}

	// TranslateError turns driver duplicate-key failures into gorm.ErrDuplicatedKey,
	// which the skill/join repositories rely on
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, log); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, log *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkillOffered{},
		&models.UserSkillWanted{},
		&models.SwapRequest{},
		&models.Rating{},
		&models.RefreshToken{},
	); err != nil {
		return err
	}

	log.Info("Database migrations applied successfully")
	return nil
}
