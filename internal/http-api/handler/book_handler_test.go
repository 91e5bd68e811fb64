package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) GetBook(ctx context.Context, bookID, viewerID int64) (*dto.BookResponse, error) {
	args := m.Called(ctx, bookID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Trending(ctx context.Context, limit int, viewerID int64) ([]dto.BookResponse, error) {
	args := m.Called(ctx, limit, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Search(ctx context.Context, query string, limit int, viewerID int64) ([]dto.BookResponse, error) {
	args := m.Called(ctx, query, limit, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BookResponse), args.Error(1)
}

func (m *MockBookService) Filter(ctx context.Context, f repository.BookFilter, viewerID int64) ([]dto.BookResponse, error) {
	args := m.Called(ctx, f, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BookResponse), args.Error(1)
}

func (m *MockBookService) SetReadingStatus(ctx context.Context, userID int64, req dto.ReadingStatusRequest) (*models.ReadingStatus, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingStatus), args.Error(1)
}

func (m *MockBookService) Shelf(userID int64) ([]dto.UserBookResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserBookResponse), args.Error(1)
}

func (m *MockBookService) AddFavorite(ctx context.Context, userID, bookID int64) error {
	args := m.Called(ctx, userID, bookID)
	return args.Error(0)
}

func (m *MockBookService) RemoveFavorite(userID, bookID int64) error {
	args := m.Called(userID, bookID)
	return args.Error(0)
}

func (m *MockBookService) Favorites(userID int64) ([]dto.BookResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BookResponse), args.Error(1)
}

func TestGetBook_AnonymousViewer(t *testing.T) {
	mockBooks := new(MockBookService)
	h := NewBookHandler(mockBooks, nil)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockBooks.On("GetBook", mock.Anything, int64(3), int64(0)).
		Return(&dto.BookResponse{ID: 3, Title: "Dune"}, nil)

	req, _ := http.NewRequest("GET", "/api/books/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockBooks.AssertExpectations(t)
}

func TestTrending_PassesLimit(t *testing.T) {
	mockBooks := new(MockBookService)
	h := NewBookHandler(mockBooks, nil)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockBooks.On("Trending", mock.Anything, 1, int64(0)).
		Return([]dto.BookResponse{{ID: 1, Title: "Dune"}}, nil)

	req, _ := http.NewRequest("GET", "/api/books/trending?limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockBooks.AssertExpectations(t)
}

func TestSearch_PassesQueryAndLimit(t *testing.T) {
	mockBooks := new(MockBookService)
	h := NewBookHandler(mockBooks, nil)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api"))

	mockBooks.On("Search", mock.Anything, "dune", 5, int64(0)).
		Return([]dto.BookResponse{}, nil)

	req, _ := http.NewRequest("GET", "/api/books/search?query=dune&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockBooks.AssertExpectations(t)
}
