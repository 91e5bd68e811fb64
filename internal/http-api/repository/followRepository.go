package repository

import (
	"errors"

	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrFollowNotFound = errors.New("follow relationship not found")

type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(followerID, followedID int64) error
	Exists(followerID, followedID int64) (bool, error)
	CountFollowers(userID int64) (int64, error)
	CountFollowing(userID int64) (int64, error)
	FollowedIDs(followerID int64) ([]int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(follow *models.Follow) error {
	return mapDuplicate(r.db.Create(follow).Error)
}

func (r *followRepository) Delete(followerID, followedID int64) error {
	result := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *followRepository) Exists(followerID, followedID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) CountFollowers(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// FollowedIDs returns every user id the follower follows. Consumed by the
// feed aggregator.
func (r *followRepository) FollowedIDs(followerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

type AuthorFollowRepository interface {
	Create(follow *models.AuthorFollow) error
	Delete(userID, authorID int64) error
	Exists(userID, authorID int64) (bool, error)
}

type authorFollowRepository struct {
	db *gorm.DB
}

func NewAuthorFollowRepository(db *gorm.DB) AuthorFollowRepository {
	return &authorFollowRepository{db: db}
}

func (r *authorFollowRepository) Create(follow *models.AuthorFollow) error {
	return mapDuplicate(r.db.Create(follow).Error)
}

func (r *authorFollowRepository) Delete(userID, authorID int64) error {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.AuthorFollow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *authorFollowRepository) Exists(userID, authorID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.AuthorFollow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}
