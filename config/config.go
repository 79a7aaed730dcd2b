package config

import (
	"fmt"
	"os"

	"github.com/JavaChrist/in-shape/logger"
	"github.com/JavaChrist/in-shape/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetEnv reads an environment variable with a fallback default.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads .env if present. Missing files are fine in deployed
// environments where variables come from the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system env vars")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "inshape"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}

// Migrate runs schema migration for every persisted model. Shared with the
// test helpers so the sqlite test schema matches production.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SkinfoldMeasurement{},
		&models.WeightEntry{},
		&models.WeeklyLogSheet{},
		&models.WeeklyLogDay{},
		&models.HabitCompletion{},
		&models.Exchange{},
		&models.MissionTransformation{},
		&models.Alert{},
		&models.UserDevice{},
	)
}
