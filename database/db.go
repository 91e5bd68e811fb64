package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parchelector/internal/config"
	"parchelector/internal/http-api/models"
)

// Connect opens the postgres database and migrates the schema.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Book{},
		&models.Follow{},
		&models.AuthorFollow{},
		&models.ReadingStatus{},
		&models.Review{},
		&models.ReviewLike{},
		&models.ReviewComment{},
		&models.LibraryList{},
		&models.ListBook{},
		&models.ListLike{},
		&models.FavoriteBook{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
	)
}
