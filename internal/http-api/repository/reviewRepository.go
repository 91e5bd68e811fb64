package repository

import (
	"errors"

	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// notDeleted is the single soft-delete predicate applied wherever reviews
// are read. Keep every review query behind it.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("reviews.is_deleted = false")
}

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	SoftDelete(reviewID int64) error
	FindByID(reviewID int64) (*models.Review, error)
	FindByUserAndBook(userID, bookID int64) (*models.Review, error)
	FindByBook(bookID int64) ([]models.Review, error)
	FindByUserIDs(userIDs []int64) ([]models.Review, error)
	FindByUser(userID int64) ([]models.Review, error)
	CountByUser(userID int64) (int64, error)
	AverageRatingByBook(bookID int64) (float64, error)
	AverageRatingByUser(userID int64) (float64, error)
	CountLikes(reviewID int64) (int64, error)
	CountComments(reviewID int64) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return mapDuplicate(r.db.Create(review).Error)
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) SoftDelete(reviewID int64) error {
	return r.db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update("is_deleted", true).Error
}

func (r *reviewRepository) FindByID(reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Scopes(notDeleted).
		Preload("User").
		Preload("Book").
		First(&review, reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndBook(userID, bookID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Scopes(notDeleted).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Preload("Book").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByBook(bookID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Scopes(notDeleted).
		Where("book_id = ?", bookID).
		Preload("User").
		Preload("Book").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByUserIDs returns every non-deleted review authored by any of the
// given users, newest first, with user and book display fields loaded.
// Consumed by the feed aggregator.
func (r *reviewRepository) FindByUserIDs(userIDs []int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Scopes(notDeleted).
		Where("user_id IN ?", userIDs).
		Preload("User").
		Preload("Book").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByUser(userID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Scopes(notDeleted).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Scopes(notDeleted).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *reviewRepository) AverageRatingByBook(bookID int64) (float64, error) {
	return r.averageRating("book_id = ?", bookID)
}

func (r *reviewRepository) AverageRatingByUser(userID int64) (float64, error) {
	return r.averageRating("user_id = ?", userID)
}

func (r *reviewRepository) averageRating(cond string, arg int64) (float64, error) {
	var res struct {
		Average float64
	}
	err := r.db.Model(&models.Review{}).Scopes(notDeleted).
		Select("COALESCE(AVG(rating), 0) as average").
		Where(cond, arg).
		Scan(&res).Error
	if err != nil {
		return 0, err
	}
	return res.Average, nil
}

func (r *reviewRepository) CountLikes(reviewID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReviewLike{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}

func (r *reviewRepository) CountComments(reviewID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReviewComment{}).
		Where("review_id = ? AND is_deleted = false", reviewID).
		Count(&count).Error
	return count, err
}

type ReviewLikeRepository interface {
	Create(like *models.ReviewLike) error
	Delete(reviewID, userID int64) error
	Exists(reviewID, userID int64) (bool, error)
}

type reviewLikeRepository struct {
	db *gorm.DB
}

func NewReviewLikeRepository(db *gorm.DB) ReviewLikeRepository {
	return &reviewLikeRepository{db: db}
}

func (r *reviewLikeRepository) Create(like *models.ReviewLike) error {
	return mapDuplicate(r.db.Create(like).Error)
}

func (r *reviewLikeRepository) Delete(reviewID, userID int64) error {
	result := r.db.Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&models.ReviewLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewLikeRepository) Exists(reviewID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReviewLike{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Count(&count).Error
	return count > 0, err
}

type ReviewCommentRepository interface {
	Create(comment *models.ReviewComment) error
	SoftDelete(commentID int64) error
	FindByID(commentID int64) (*models.ReviewComment, error)
	FindByReview(reviewID int64) ([]models.ReviewComment, error)
}

type reviewCommentRepository struct {
	db *gorm.DB
}

func NewReviewCommentRepository(db *gorm.DB) ReviewCommentRepository {
	return &reviewCommentRepository{db: db}
}

func (r *reviewCommentRepository) Create(comment *models.ReviewComment) error {
	return r.db.Create(comment).Error
}

func (r *reviewCommentRepository) SoftDelete(commentID int64) error {
	result := r.db.Model(&models.ReviewComment{}).
		Where("id = ? AND is_deleted = false", commentID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *reviewCommentRepository) FindByID(commentID int64) (*models.ReviewComment, error) {
	var comment models.ReviewComment
	err := r.db.Where("id = ? AND is_deleted = false", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *reviewCommentRepository) FindByReview(reviewID int64) ([]models.ReviewComment, error) {
	var comments []models.ReviewComment
	err := r.db.Where("review_id = ? AND is_deleted = false", reviewID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
