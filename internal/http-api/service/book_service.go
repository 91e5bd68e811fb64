package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"parchelector/internal/cache"
	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"gorm.io/gorm"
)

const defaultShelfSize = 20

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrInvalidStatus   = errors.New("invalid reading status")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrAlreadyFavorite = errors.New("book is already a favorite")
	ErrNotFavorite     = errors.New("book is not a favorite")
)

type BookService interface {
	GetBook(ctx context.Context, bookID, viewerID int64) (*dto.BookResponse, error)
	Trending(ctx context.Context, limit int, viewerID int64) ([]dto.BookResponse, error)
	Search(ctx context.Context, query string, limit int, viewerID int64) ([]dto.BookResponse, error)
	Filter(ctx context.Context, f repository.BookFilter, viewerID int64) ([]dto.BookResponse, error)
	SetReadingStatus(ctx context.Context, userID int64, req dto.ReadingStatusRequest) (*models.ReadingStatus, error)
	Shelf(userID int64) ([]dto.UserBookResponse, error)
	AddFavorite(ctx context.Context, userID, bookID int64) error
	RemoveFavorite(userID, bookID int64) error
	Favorites(userID int64) ([]dto.BookResponse, error)
}

type bookService struct {
	bookRepo          repository.BookRepository
	readingStatusRepo repository.ReadingStatusRepository
	favoriteRepo      repository.FavoriteRepository
	reviewRepo        repository.ReviewRepository
	trendingCache     *cache.TrendingCache
}

func NewBookService(
	bookRepo repository.BookRepository,
	readingStatusRepo repository.ReadingStatusRepository,
	favoriteRepo repository.FavoriteRepository,
	reviewRepo repository.ReviewRepository,
	trendingCache *cache.TrendingCache,
) BookService {
	return &bookService{
		bookRepo:          bookRepo,
		readingStatusRepo: readingStatusRepo,
		favoriteRepo:      favoriteRepo,
		reviewRepo:        reviewRepo,
		trendingCache:     trendingCache,
	}
}

func (s *bookService) GetBook(ctx context.Context, bookID, viewerID int64) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	resp, err := s.bookResponse(book)
	if err != nil {
		return nil, err
	}
	if err := s.annotateStatus(viewerID, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Trending serves the shared shelf from cache when possible. The caller's
// reading status is layered on after the cache so entries stay
// viewer-independent; the cache always holds the full default-size shelf
// and each request is clipped to its own limit.
func (s *bookService) Trending(ctx context.Context, limit int, viewerID int64) ([]dto.BookResponse, error) {
	if limit <= 0 || limit > defaultShelfSize {
		limit = defaultShelfSize
	}
	if cached, ok := s.trendingCache.Get(ctx); ok {
		return s.annotateStatuses(viewerID, clipShelf(cached, limit))
	}

	books, err := s.bookRepo.Trending(ctx, defaultShelfSize)
	if err != nil {
		return nil, err
	}

	responses, err := s.bookResponses(books)
	if err != nil {
		return nil, err
	}
	s.trendingCache.Set(ctx, responses)

	return s.annotateStatuses(viewerID, clipShelf(responses, limit))
}

func (s *bookService) Search(ctx context.Context, query string, limit int, viewerID int64) ([]dto.BookResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []dto.BookResponse{}, nil
	}
	if limit <= 0 {
		limit = defaultShelfSize
	}

	books, err := s.bookRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	responses, err := s.bookResponses(books)
	if err != nil {
		return nil, err
	}
	return s.annotateStatuses(viewerID, responses)
}

func (s *bookService) Filter(ctx context.Context, f repository.BookFilter, viewerID int64) ([]dto.BookResponse, error) {
	if f.Limit <= 0 {
		f.Limit = defaultShelfSize
	}

	books, err := s.bookRepo.Filter(ctx, f)
	if err != nil {
		return nil, err
	}

	responses, err := s.bookResponses(books)
	if err != nil {
		return nil, err
	}
	return s.annotateStatuses(viewerID, responses)
}

// SetReadingStatus upserts the caller's status for one book and applies the
// lifecycle side effects: entering READING stamps a start date, entering
// READ stamps a finish date and forces progress to 100. Moving away from
// READ leaves progress and the finish date as they were.
func (s *bookService) SetReadingStatus(ctx context.Context, userID int64, req dto.ReadingStatusRequest) (*models.ReadingStatus, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		return nil, ErrInvalidProgress
	}

	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	status, err := s.readingStatusRepo.FindByUserAndBook(userID, req.BookID)
	isNew := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		status = &models.ReadingStatus{
			UserID: userID,
			BookID: req.BookID,
		}
		isNew = true
	}

	status.Status = req.Status
	if req.Progress != nil {
		status.ProgressPercent = *req.Progress
	}

	now := time.Now()
	switch req.Status {
	case models.StatusReading:
		if status.StartedAt == nil {
			status.StartedAt = &now
		}
	case models.StatusRead:
		if status.StartedAt == nil {
			status.StartedAt = &now
		}
		status.FinishedAt = &now
		status.ProgressPercent = 100
	}

	if isNew {
		if err := s.readingStatusRepo.Create(status); err != nil {
			// another request created the row first; update it instead
			if errors.Is(err, repository.ErrDuplicate) {
				existing, ferr := s.readingStatusRepo.FindByUserAndBook(userID, req.BookID)
				if ferr != nil {
					return nil, ferr
				}
				status.ID = existing.ID
				status.CreatedAt = existing.CreatedAt
				if err := s.readingStatusRepo.Update(status); err != nil {
					return nil, err
				}
				return status, nil
			}
			return nil, err
		}
		return status, nil
	}

	if err := s.readingStatusRepo.Update(status); err != nil {
		return nil, err
	}
	return status, nil
}

// Shelf returns the caller's tracked books with their statuses, most
// recently touched first. Rating is the caller's own review rating, zero
// when they have not reviewed the book.
func (s *bookService) Shelf(userID int64) ([]dto.UserBookResponse, error) {
	statuses, err := s.readingStatusRepo.FindByUserWithBooks(userID)
	if err != nil {
		return nil, err
	}

	shelf := make([]dto.UserBookResponse, 0, len(statuses))
	for _, st := range statuses {
		entry := dto.UserBookResponse{
			Status: st.Status,
		}
		if st.Book != nil {
			entry.ID = st.Book.ID
			entry.Title = st.Book.Title
			entry.Author = authorNames(st.Book.Authors)
			entry.Cover = st.Book.CoverURL

			review, err := s.reviewRepo.FindByUserAndBook(userID, st.Book.ID)
			if err == nil {
				entry.Rating = float64(review.Rating)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		shelf = append(shelf, entry)
	}
	return shelf, nil
}

func (s *bookService) AddFavorite(ctx context.Context, userID, bookID int64) error {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	favorite := &models.FavoriteBook{
		UserID: userID,
		BookID: bookID,
	}
	if err := s.favoriteRepo.Add(favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

func (s *bookService) RemoveFavorite(userID, bookID int64) error {
	if err := s.favoriteRepo.Remove(userID, bookID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return ErrNotFavorite
		}
		return err
	}
	return nil
}

func (s *bookService) Favorites(userID int64) ([]dto.BookResponse, error) {
	favorites, err := s.favoriteRepo.FindByUserWithBooks(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BookResponse, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Book == nil {
			continue
		}
		resp, err := s.bookResponse(fav.Book)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return s.annotateStatuses(userID, responses)
}

func (s *bookService) bookResponse(book *models.Book) (*dto.BookResponse, error) {
	rating, err := s.reviewRepo.AverageRatingByBook(book.ID)
	if err != nil {
		return nil, err
	}
	return &dto.BookResponse{
		ID:     book.ID,
		Title:  book.Title,
		Author: authorNames(book.Authors),
		Rating: rating,
		Cover:  book.CoverURL,
	}, nil
}

func (s *bookService) bookResponses(books []models.Book) ([]dto.BookResponse, error) {
	responses := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		resp, err := s.bookResponse(&books[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// annotateStatus fills Status with the viewer's reading status, if any.
// A zero viewer means an anonymous request.
func (s *bookService) annotateStatus(viewerID int64, resp *dto.BookResponse) error {
	if viewerID == 0 {
		return nil
	}
	status, err := s.readingStatusRepo.FindByUserAndBook(viewerID, resp.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	resp.Status = &status.Status
	return nil
}

func (s *bookService) annotateStatuses(viewerID int64, responses []dto.BookResponse) ([]dto.BookResponse, error) {
	if viewerID == 0 {
		return responses, nil
	}
	for i := range responses {
		if err := s.annotateStatus(viewerID, &responses[i]); err != nil {
			return nil, err
		}
	}
	return responses, nil
}

func clipShelf(responses []dto.BookResponse, limit int) []dto.BookResponse {
	if limit < len(responses) {
		return responses[:limit]
	}
	return responses
}

func authorNames(authors []models.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
