package repository

import (
	"errors"

	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	Add(favorite *models.FavoriteBook) error
	Remove(userID, bookID int64) error
	Exists(userID, bookID int64) (bool, error)
	FindByUserWithBooks(userID int64) ([]models.FavoriteBook, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(favorite *models.FavoriteBook) error {
	return mapDuplicate(r.db.Create(favorite).Error)
}

func (r *favoriteRepository) Remove(userID, bookID int64) error {
	result := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.FavoriteBook{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *favoriteRepository) Exists(userID, bookID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.FavoriteBook{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) FindByUserWithBooks(userID int64) ([]models.FavoriteBook, error) {
	var favorites []models.FavoriteBook
	err := r.db.Where("user_id = ?", userID).
		Preload("Book").
		Preload("Book.Authors").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
