package repository

import (
	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

type ReadingStatusRepository interface {
	FindByUserAndBook(userID, bookID int64) (*models.ReadingStatus, error)
	Create(status *models.ReadingStatus) error
	Update(status *models.ReadingStatus) error
	FindByUserWithBooks(userID int64) ([]models.ReadingStatus, error)
	CountByUserAndStatus(userID int64, status string) (int64, error)
}

type readingStatusRepository struct {
	db *gorm.DB
}

func NewReadingStatusRepository(db *gorm.DB) ReadingStatusRepository {
	return &readingStatusRepository{db: db}
}

func (r *readingStatusRepository) FindByUserAndBook(userID, bookID int64) (*models.ReadingStatus, error) {
	var status models.ReadingStatus
	if err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *readingStatusRepository) Create(status *models.ReadingStatus) error {
	return mapDuplicate(r.db.Create(status).Error)
}

func (r *readingStatusRepository) Update(status *models.ReadingStatus) error {
	return r.db.Save(status).Error
}

func (r *readingStatusRepository) FindByUserWithBooks(userID int64) ([]models.ReadingStatus, error) {
	var statuses []models.ReadingStatus
	err := r.db.Where("user_id = ?", userID).
		Preload("Book").
		Preload("Book.Authors").
		Order("updated_at DESC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *readingStatusRepository) CountByUserAndStatus(userID int64, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReadingStatus{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
