package repository

import (
	"errors"

	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrBookNotInList = errors.New("book not found in this list")

type ListRepository interface {
	Create(list *models.LibraryList) error
	Update(list *models.LibraryList) error
	Delete(listID int64) error
	FindByID(listID int64) (*models.LibraryList, error)
	FindByUser(userID int64) ([]models.LibraryList, error)
	FindByUserIDs(userIDs []int64) ([]models.LibraryList, error)
	CountBooks(listID int64) (int64, error)
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(list *models.LibraryList) error {
	return r.db.Create(list).Error
}

func (r *listRepository) Update(list *models.LibraryList) error {
	return r.db.Save(list).Error
}

func (r *listRepository) Delete(listID int64) error {
	return r.db.Delete(&models.LibraryList{}, listID).Error
}

func (r *listRepository) FindByID(listID int64) (*models.LibraryList, error) {
	var list models.LibraryList
	if err := r.db.Preload("User").First(&list, listID).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) FindByUser(userID int64) ([]models.LibraryList, error) {
	var lists []models.LibraryList
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// FindByUserIDs returns every list owned by any of the given users, newest
// first. Visibility filtering happens in the feed aggregator.
func (r *listRepository) FindByUserIDs(userIDs []int64) ([]models.LibraryList, error) {
	var lists []models.LibraryList
	err := r.db.Where("user_id IN ?", userIDs).
		Preload("User").
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) CountBooks(listID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ListBook{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

type ListBookRepository interface {
	Add(listBook *models.ListBook) error
	Remove(listID, bookID int64) error
	Exists(listID, bookID int64) (bool, error)
	FindByList(listID int64) ([]models.ListBook, error)
}

type listBookRepository struct {
	db *gorm.DB
}

func NewListBookRepository(db *gorm.DB) ListBookRepository {
	return &listBookRepository{db: db}
}

func (r *listBookRepository) Add(listBook *models.ListBook) error {
	return mapDuplicate(r.db.Create(listBook).Error)
}

func (r *listBookRepository) Remove(listID, bookID int64) error {
	result := r.db.Where("list_id = ? AND book_id = ?", listID, bookID).
		Delete(&models.ListBook{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotInList
	}
	return nil
}

func (r *listBookRepository) Exists(listID, bookID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ListBook{}).
		Where("list_id = ? AND book_id = ?", listID, bookID).
		Count(&count).Error
	return count > 0, err
}

func (r *listBookRepository) FindByList(listID int64) ([]models.ListBook, error) {
	var listBooks []models.ListBook
	err := r.db.Where("list_id = ?", listID).
		Preload("Book").
		Preload("Book.Authors").
		Order("position ASC, added_at ASC").
		Find(&listBooks).Error
	if err != nil {
		return nil, err
	}
	return listBooks, nil
}

type ListLikeRepository interface {
	Create(like *models.ListLike) error
	Delete(listID, userID int64) error
	Exists(listID, userID int64) (bool, error)
	CountByList(listID int64) (int64, error)
}

type listLikeRepository struct {
	db *gorm.DB
}

func NewListLikeRepository(db *gorm.DB) ListLikeRepository {
	return &listLikeRepository{db: db}
}

func (r *listLikeRepository) Create(like *models.ListLike) error {
	return mapDuplicate(r.db.Create(like).Error)
}

func (r *listLikeRepository) Delete(listID, userID int64) error {
	result := r.db.Where("list_id = ? AND user_id = ?", listID, userID).
		Delete(&models.ListLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listLikeRepository) Exists(listID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ListLike{}).
		Where("list_id = ? AND user_id = ?", listID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *listLikeRepository) CountByList(listID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ListLike{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}
