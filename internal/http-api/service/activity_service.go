package service

import (
	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"
)

// recentReviewLimit caps the review excerpt on the activity page.
const recentReviewLimit = 10

type ActivityService interface {
	Activity(userID int64) (*dto.ActivityResponse, error)
}

type activityService struct {
	reviewRepo        repository.ReviewRepository
	readingStatusRepo repository.ReadingStatusRepository
	reviewService     ReviewService
	listService       ListService
}

func NewActivityService(
	reviewRepo repository.ReviewRepository,
	readingStatusRepo repository.ReadingStatusRepository,
	reviewService ReviewService,
	listService ListService,
) ActivityService {
	return &activityService{
		reviewRepo:        reviewRepo,
		readingStatusRepo: readingStatusRepo,
		reviewService:     reviewService,
		listService:       listService,
	}
}

// Activity aggregates a user's own activity page: counters, the most recent
// reviews, and every list they own.
func (s *activityService) Activity(userID int64) (*dto.ActivityResponse, error) {
	totalReviews, err := s.reviewRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	averageRating, err := s.reviewRepo.AverageRatingByUser(userID)
	if err != nil {
		return nil, err
	}

	booksRead, err := s.readingStatusRepo.CountByUserAndStatus(userID, models.StatusRead)
	if err != nil {
		return nil, err
	}
	booksReading, err := s.readingStatusRepo.CountByUserAndStatus(userID, models.StatusReading)
	if err != nil {
		return nil, err
	}
	booksToRead, err := s.readingStatusRepo.CountByUserAndStatus(userID, models.StatusWantToRead)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewService.UserReviews(userID)
	if err != nil {
		return nil, err
	}
	if len(reviews) > recentReviewLimit {
		reviews = reviews[:recentReviewLimit]
	}

	// The owner is the viewer here, so private lists are included.
	lists, err := s.listService.UserLists(userID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityResponse{
		Stats: dto.ActivityStats{
			TotalReviews:   totalReviews,
			TotalReadLists: len(lists),
			BooksRead:      booksRead,
			BooksReading:   booksReading,
			BooksToRead:    booksToRead,
			AverageRating:  averageRating,
		},
		RecentReviews: reviews,
		ReadLists:     lists,
	}, nil
}
