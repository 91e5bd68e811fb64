package service

import (
	"context"

	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository interfaces. Each service test
// wires only the mocks it needs; unused ones stay empty.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(usernameOrEmail string) (*models.User, error) {
	args := m.Called(usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(followerID, followedID int64) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(followerID, followedID int64) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) FollowedIDs(followerID int64) ([]int64, error) {
	args := m.Called(followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockAuthorFollowRepository struct {
	mock.Mock
}

func (m *MockAuthorFollowRepository) Create(follow *models.AuthorFollow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockAuthorFollowRepository) Delete(userID, authorID int64) error {
	args := m.Called(userID, authorID)
	return args.Error(0)
}

func (m *MockAuthorFollowRepository) Exists(userID, authorID int64) (bool, error) {
	args := m.Called(userID, authorID)
	return args.Bool(0), args.Error(1)
}

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) GetAuthorByID(ctx context.Context, id int64) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockBookRepository) Trending(ctx context.Context, limit int) ([]models.Book, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Search(ctx context.Context, query string, limit int) ([]models.Book, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Filter(ctx context.Context, f repository.BookFilter) ([]models.Book, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

type MockReadingStatusRepository struct {
	mock.Mock
}

func (m *MockReadingStatusRepository) FindByUserAndBook(userID, bookID int64) (*models.ReadingStatus, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingStatus), args.Error(1)
}

func (m *MockReadingStatusRepository) Create(status *models.ReadingStatus) error {
	args := m.Called(status)
	return args.Error(0)
}

func (m *MockReadingStatusRepository) Update(status *models.ReadingStatus) error {
	args := m.Called(status)
	return args.Error(0)
}

func (m *MockReadingStatusRepository) FindByUserWithBooks(userID int64) ([]models.ReadingStatus, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingStatus), args.Error(1)
}

func (m *MockReadingStatusRepository) CountByUserAndStatus(userID int64, status string) (int64, error) {
	args := m.Called(userID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(favorite *models.FavoriteBook) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(userID, bookID int64) error {
	args := m.Called(userID, bookID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(userID, bookID int64) (bool, error) {
	args := m.Called(userID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FindByUserWithBooks(userID int64) ([]models.FavoriteBook, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteBook), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) SoftDelete(reviewID int64) error {
	args := m.Called(reviewID)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(reviewID int64) (*models.Review, error) {
	args := m.Called(reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByUserAndBook(userID, bookID int64) (*models.Review, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByBook(bookID int64) ([]models.Review, error) {
	args := m.Called(bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByUserIDs(userIDs []int64) ([]models.Review, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByUser(userID int64) ([]models.Review, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) CountByUser(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) AverageRatingByBook(bookID int64) (float64, error) {
	args := m.Called(bookID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) AverageRatingByUser(userID int64) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) CountLikes(reviewID int64) (int64, error) {
	args := m.Called(reviewID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) CountComments(reviewID int64) (int64, error) {
	args := m.Called(reviewID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewLikeRepository struct {
	mock.Mock
}

func (m *MockReviewLikeRepository) Create(like *models.ReviewLike) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockReviewLikeRepository) Delete(reviewID, userID int64) error {
	args := m.Called(reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewLikeRepository) Exists(reviewID, userID int64) (bool, error) {
	args := m.Called(reviewID, userID)
	return args.Bool(0), args.Error(1)
}

type MockReviewCommentRepository struct {
	mock.Mock
}

func (m *MockReviewCommentRepository) Create(comment *models.ReviewComment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockReviewCommentRepository) SoftDelete(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockReviewCommentRepository) FindByID(commentID int64) (*models.ReviewComment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewComment), args.Error(1)
}

func (m *MockReviewCommentRepository) FindByReview(reviewID int64) ([]models.ReviewComment, error) {
	args := m.Called(reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewComment), args.Error(1)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(list *models.LibraryList) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListRepository) Update(list *models.LibraryList) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListRepository) Delete(listID int64) error {
	args := m.Called(listID)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(listID int64) (*models.LibraryList, error) {
	args := m.Called(listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LibraryList), args.Error(1)
}

func (m *MockListRepository) FindByUser(userID int64) ([]models.LibraryList, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LibraryList), args.Error(1)
}

func (m *MockListRepository) FindByUserIDs(userIDs []int64) ([]models.LibraryList, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LibraryList), args.Error(1)
}

func (m *MockListRepository) CountBooks(listID int64) (int64, error) {
	args := m.Called(listID)
	return args.Get(0).(int64), args.Error(1)
}

type MockListBookRepository struct {
	mock.Mock
}

func (m *MockListBookRepository) Add(listBook *models.ListBook) error {
	args := m.Called(listBook)
	return args.Error(0)
}

func (m *MockListBookRepository) Remove(listID, bookID int64) error {
	args := m.Called(listID, bookID)
	return args.Error(0)
}

func (m *MockListBookRepository) Exists(listID, bookID int64) (bool, error) {
	args := m.Called(listID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *MockListBookRepository) FindByList(listID int64) ([]models.ListBook, error) {
	args := m.Called(listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ListBook), args.Error(1)
}

type MockListLikeRepository struct {
	mock.Mock
}

func (m *MockListLikeRepository) Create(like *models.ListLike) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockListLikeRepository) Delete(listID, userID int64) error {
	args := m.Called(listID, userID)
	return args.Error(0)
}

func (m *MockListLikeRepository) Exists(listID, userID int64) (bool, error) {
	args := m.Called(listID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockListLikeRepository) CountByList(listID int64) (int64, error) {
	args := m.Called(listID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Create(token *models.PasswordResetToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) Update(token *models.PasswordResetToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) DeleteByUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindCandidates() ([]models.PasswordResetToken, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PasswordResetToken), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(to, username, token string) {
	m.Called(to, username, token)
}
