package repository

import (
	"context"
	"fmt"

	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

// BookFilter narrows the catalog query; zero values mean "no restriction".
type BookFilter struct {
	Genre   string
	MinYear int
	MaxYear int
	SortBy  string // popular | rating | newest | oldest
	Limit   int
}

type BookRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetAuthorByID(ctx context.Context, id int64) (*models.Author, error)
	Trending(ctx context.Context, limit int) ([]models.Book, error)
	Search(ctx context.Context, query string, limit int) ([]models.Book, error)
	Filter(ctx context.Context, f BookFilter) ([]models.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Preload("Authors").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) GetAuthorByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Trending orders books by the number of non-deleted reviews they carry.
func (r *bookRepository) Trending(ctx context.Context, limit int) ([]models.Book, error) {
	var books []models.Book
	err := r.db.WithContext(ctx).
		Preload("Authors").
		Joins("LEFT JOIN reviews ON reviews.book_id = books.id AND reviews.is_deleted = false").
		Group("books.id").
		Order("COUNT(reviews.id) DESC, books.id ASC").
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("trending books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) Search(ctx context.Context, query string, limit int) ([]models.Book, error) {
	var books []models.Book
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("Authors").
		Joins("LEFT JOIN book_authors ON book_authors.book_id = books.id").
		Joins("LEFT JOIN authors ON authors.id = book_authors.author_id").
		Where("books.title ILIKE ? OR authors.name ILIKE ?", pattern, pattern).
		Group("books.id").
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) Filter(ctx context.Context, f BookFilter) ([]models.Book, error) {
	q := r.db.WithContext(ctx).Model(&models.Book{}).Preload("Authors")

	if f.Genre != "" {
		q = q.Where("genre = ?", f.Genre)
	}
	if f.MinYear > 0 {
		q = q.Where("publication_year >= ?", f.MinYear)
	}
	if f.MaxYear > 0 {
		q = q.Where("publication_year <= ?", f.MaxYear)
	}

	switch f.SortBy {
	case "newest":
		q = q.Order("publication_year DESC")
	case "oldest":
		q = q.Order("publication_year ASC")
	case "rating":
		q = q.Joins("LEFT JOIN reviews ON reviews.book_id = books.id AND reviews.is_deleted = false").
			Group("books.id").
			Order("COALESCE(AVG(reviews.rating), 0) DESC")
	default: // popular
		q = q.Joins("LEFT JOIN reviews ON reviews.book_id = books.id AND reviews.is_deleted = false").
			Group("books.id").
			Order("COUNT(reviews.id) DESC")
	}

	var books []models.Book
	if err := q.Limit(f.Limit).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("filter books: %w", err)
	}
	return books, nil
}
