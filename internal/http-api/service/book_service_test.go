package service

import (
	"context"
	"testing"
	"time"

	"parchelector/internal/cache"
	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// nilCache always misses; the cache path is exercised where a redis client
// is available.
var nilCache = cache.NewTrendingCache(nil, time.Minute)

func newBookService(
	bookRepo *MockBookRepository,
	statusRepo *MockReadingStatusRepository,
	favoriteRepo *MockFavoriteRepository,
	reviewRepo *MockReviewRepository,
) BookService {
	return NewBookService(bookRepo, statusRepo, favoriteRepo, reviewRepo, nilCache)
}

func TestSetReadingStatus_InvalidStatus(t *testing.T) {
	svc := newBookService(new(MockBookRepository), new(MockReadingStatusRepository), new(MockFavoriteRepository), new(MockReviewRepository))

	_, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: "FINISHED"})

	assert.Equal(t, ErrInvalidStatus, err)
}

func TestSetReadingStatus_InvalidProgress(t *testing.T) {
	svc := newBookService(new(MockBookRepository), new(MockReadingStatusRepository), new(MockFavoriteRepository), new(MockReviewRepository))

	progress := 120
	_, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: models.StatusReading, Progress: &progress})

	assert.Equal(t, ErrInvalidProgress, err)
}

func TestSetReadingStatus_ReadingStampsStartDate(t *testing.T) {
	bookRepo := new(MockBookRepository)
	statusRepo := new(MockReadingStatusRepository)
	svc := newBookService(bookRepo, statusRepo, new(MockFavoriteRepository), new(MockReviewRepository))

	bookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1}, nil)
	statusRepo.On("FindByUserAndBook", int64(1), int64(1)).Return(nil, gorm.ErrRecordNotFound)
	statusRepo.On("Create", mock.AnythingOfType("*models.ReadingStatus")).Return(nil)

	status, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: models.StatusReading})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusReading, status.Status)
	assert.NotNil(t, status.StartedAt)
	assert.Nil(t, status.FinishedAt)
}

func TestSetReadingStatus_ReadForcesCompletion(t *testing.T) {
	bookRepo := new(MockBookRepository)
	statusRepo := new(MockReadingStatusRepository)
	svc := newBookService(bookRepo, statusRepo, new(MockFavoriteRepository), new(MockReviewRepository))

	existing := &models.ReadingStatus{ID: 9, UserID: 1, BookID: 1, Status: models.StatusReading, ProgressPercent: 40}
	bookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1}, nil)
	statusRepo.On("FindByUserAndBook", int64(1), int64(1)).Return(existing, nil)
	statusRepo.On("Update", mock.AnythingOfType("*models.ReadingStatus")).Return(nil)

	status, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: models.StatusRead})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusRead, status.Status)
	assert.Equal(t, 100, status.ProgressPercent)
	assert.NotNil(t, status.StartedAt)
	assert.NotNil(t, status.FinishedAt)
}

func TestSetReadingStatus_RegressionKeepsProgress(t *testing.T) {
	bookRepo := new(MockBookRepository)
	statusRepo := new(MockReadingStatusRepository)
	svc := newBookService(bookRepo, statusRepo, new(MockFavoriteRepository), new(MockReviewRepository))

	finished := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	started := finished.AddDate(0, 0, -14)
	existing := &models.ReadingStatus{
		ID: 9, UserID: 1, BookID: 1,
		Status:          models.StatusRead,
		ProgressPercent: 100,
		StartedAt:       &started,
		FinishedAt:      &finished,
	}
	bookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1}, nil)
	statusRepo.On("FindByUserAndBook", int64(1), int64(1)).Return(existing, nil)
	statusRepo.On("Update", mock.AnythingOfType("*models.ReadingStatus")).Return(nil)

	status, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: models.StatusWantToRead})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusWantToRead, status.Status)
	assert.Equal(t, 100, status.ProgressPercent)
	assert.Equal(t, &finished, status.FinishedAt)
}

func TestSetReadingStatus_RaceFallsBackToUpdate(t *testing.T) {
	bookRepo := new(MockBookRepository)
	statusRepo := new(MockReadingStatusRepository)
	svc := newBookService(bookRepo, statusRepo, new(MockFavoriteRepository), new(MockReviewRepository))

	bookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1}, nil)
	statusRepo.On("FindByUserAndBook", int64(1), int64(1)).Return(nil, gorm.ErrRecordNotFound).Once()
	statusRepo.On("Create", mock.AnythingOfType("*models.ReadingStatus")).Return(repository.ErrDuplicate)
	statusRepo.On("FindByUserAndBook", int64(1), int64(1)).Return(&models.ReadingStatus{ID: 42, UserID: 1, BookID: 1, Status: models.StatusWantToRead}, nil)
	statusRepo.On("Update", mock.AnythingOfType("*models.ReadingStatus")).Return(nil)

	status, err := svc.SetReadingStatus(context.Background(), 1, dto.ReadingStatusRequest{BookID: 1, Status: models.StatusReading})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), status.ID)
	statusRepo.AssertExpectations(t)
}

func TestTrending_AnnotatesViewerStatus(t *testing.T) {
	bookRepo := new(MockBookRepository)
	statusRepo := new(MockReadingStatusRepository)
	reviewRepo := new(MockReviewRepository)
	svc := newBookService(bookRepo, statusRepo, new(MockFavoriteRepository), reviewRepo)

	bookRepo.On("Trending", mock.Anything, defaultShelfSize).Return([]models.Book{
		{ID: 1, Title: "Dune", Authors: []models.Author{{Name: "Frank Herbert"}}},
		{ID: 2, Title: "Solaris"},
	}, nil)
	reviewRepo.On("AverageRatingByBook", int64(1)).Return(4.5, nil)
	reviewRepo.On("AverageRatingByBook", int64(2)).Return(0.0, nil)
	statusRepo.On("FindByUserAndBook", int64(7), int64(1)).Return(&models.ReadingStatus{Status: models.StatusReading}, nil)
	statusRepo.On("FindByUserAndBook", int64(7), int64(2)).Return(nil, gorm.ErrRecordNotFound)

	books, err := svc.Trending(context.Background(), 0, 7)

	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "Frank Herbert", books[0].Author)
	assert.Equal(t, 4.5, books[0].Rating)
	assert.Equal(t, models.StatusReading, *books[0].Status)
	assert.Nil(t, books[1].Status)
}

func TestTrending_ClipsToRequestedLimit(t *testing.T) {
	bookRepo := new(MockBookRepository)
	reviewRepo := new(MockReviewRepository)
	svc := newBookService(bookRepo, new(MockReadingStatusRepository), new(MockFavoriteRepository), reviewRepo)

	bookRepo.On("Trending", mock.Anything, defaultShelfSize).Return([]models.Book{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Solaris"},
	}, nil)
	reviewRepo.On("AverageRatingByBook", int64(1)).Return(4.5, nil)
	reviewRepo.On("AverageRatingByBook", int64(2)).Return(0.0, nil)

	books, err := svc.Trending(context.Background(), 1, 0)

	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestSearch_UsesRequestedLimit(t *testing.T) {
	bookRepo := new(MockBookRepository)
	reviewRepo := new(MockReviewRepository)
	svc := newBookService(bookRepo, new(MockReadingStatusRepository), new(MockFavoriteRepository), reviewRepo)

	bookRepo.On("Search", mock.Anything, "dune", 5).Return([]models.Book{{ID: 1, Title: "Dune"}}, nil)
	reviewRepo.On("AverageRatingByBook", int64(1)).Return(4.5, nil)

	books, err := svc.Search(context.Background(), "dune", 5, 0)

	assert.NoError(t, err)
	assert.Len(t, books, 1)
	bookRepo.AssertExpectations(t)
}

func TestSearch_BlankQuery(t *testing.T) {
	svc := newBookService(new(MockBookRepository), new(MockReadingStatusRepository), new(MockFavoriteRepository), new(MockReviewRepository))

	books, err := svc.Search(context.Background(), "   ", 10, 0)

	assert.NoError(t, err)
	assert.Empty(t, books)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	bookRepo := new(MockBookRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := newBookService(bookRepo, new(MockReadingStatusRepository), favoriteRepo, new(MockReviewRepository))

	bookRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{ID: 1}, nil)
	favoriteRepo.On("Add", mock.AnythingOfType("*models.FavoriteBook")).Return(repository.ErrDuplicate)

	err := svc.AddFavorite(context.Background(), 1, 1)

	assert.Equal(t, ErrAlreadyFavorite, err)
}

func TestRemoveFavorite_Absent(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	svc := newBookService(new(MockBookRepository), new(MockReadingStatusRepository), favoriteRepo, new(MockReviewRepository))

	favoriteRepo.On("Remove", int64(1), int64(2)).Return(repository.ErrFavoriteNotFound)

	err := svc.RemoveFavorite(1, 2)

	assert.Equal(t, ErrNotFavorite, err)
}
