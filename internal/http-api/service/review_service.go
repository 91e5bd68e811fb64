package service

import (
	"context"
	"errors"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewOwner  = errors.New("only the author can modify a review")
	ErrAlreadyReviewed = errors.New("user has already reviewed this book")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the author can delete a comment")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID int64, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(userID, reviewID int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(userID, reviewID int64) error
	GetReview(reviewID int64) (*dto.ReviewResponse, error)
	BookReviews(ctx context.Context, bookID int64) (*dto.BookReviewsResponse, error)
	MyReview(userID, bookID int64) (*dto.ReviewResponse, error)
	UserReviews(userID int64) ([]dto.ReviewResponse, error)
	LikeReview(userID, reviewID int64) error
	UnlikeReview(userID, reviewID int64) error
	LikeStatus(userID, reviewID int64) (bool, error)
	AddComment(userID, reviewID int64, req dto.AddCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(userID, commentID int64) error
	Comments(reviewID int64) ([]dto.CommentResponse, error)
}

type reviewService struct {
	reviewRepo        repository.ReviewRepository
	reviewLikeRepo    repository.ReviewLikeRepository
	reviewCommentRepo repository.ReviewCommentRepository
	bookRepo          repository.BookRepository
	userRepo          repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	reviewLikeRepo repository.ReviewLikeRepository,
	reviewCommentRepo repository.ReviewCommentRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:        reviewRepo,
		reviewLikeRepo:    reviewLikeRepo,
		reviewCommentRepo: reviewCommentRepo,
		bookRepo:          bookRepo,
		userRepo:          userRepo,
	}
}

// CreateReview posts a review. A user gets one active review per book;
// deleting a review frees the slot.
func (s *reviewService) CreateReview(ctx context.Context, userID int64, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if _, err := s.reviewRepo.FindByUserAndBook(userID, req.BookID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID: userID,
		BookID: req.BookID,
		Rating: req.Rating,
		Title:  req.Title,
		Body:   req.Body,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	created, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, err
	}
	return s.reviewResponse(created)
}

func (s *reviewService) UpdateReview(userID, reviewID int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.ownedReview(userID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Body != nil {
		review.Body = *req.Body
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return s.reviewResponse(review)
}

func (s *reviewService) DeleteReview(userID, reviewID int64) error {
	if _, err := s.ownedReview(userID, reviewID); err != nil {
		return err
	}
	return s.reviewRepo.SoftDelete(reviewID)
}

func (s *reviewService) GetReview(reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.reviewResponse(review)
}

func (s *reviewService) BookReviews(ctx context.Context, bookID int64) (*dto.BookReviewsResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByBook(bookID)
	if err != nil {
		return nil, err
	}
	average, err := s.reviewRepo.AverageRatingByBook(bookID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp, err := s.reviewResponse(&reviews[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &dto.BookReviewsResponse{
		BookID:        book.ID,
		BookTitle:     book.Title,
		AverageRating: average,
		TotalReviews:  len(responses),
		Reviews:       responses,
	}, nil
}

// MyReview returns the caller's active review of a book.
func (s *reviewService) MyReview(userID, bookID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByUserAndBook(userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.reviewResponse(review)
}

func (s *reviewService) UserReviews(userID int64) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp, err := s.reviewResponse(&reviews[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *reviewService) LikeReview(userID, reviewID int64) error {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	like := &models.ReviewLike{
		ReviewID: reviewID,
		UserID:   userID,
	}
	if err := s.reviewLikeRepo.Create(like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *reviewService) UnlikeReview(userID, reviewID int64) error {
	if err := s.reviewLikeRepo.Delete(reviewID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotLiked
		}
		return err
	}
	return nil
}

func (s *reviewService) LikeStatus(userID, reviewID int64) (bool, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrReviewNotFound
		}
		return false, err
	}
	return s.reviewLikeRepo.Exists(reviewID, userID)
}

func (s *reviewService) AddComment(userID, reviewID int64, req dto.AddCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &models.ReviewComment{
		ReviewID: reviewID,
		UserID:   userID,
		Body:     req.Body,
	}
	if err := s.reviewCommentRepo.Create(comment); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return commentResponse(comment, user), nil
}

func (s *reviewService) DeleteComment(userID, commentID int64) error {
	comment, err := s.reviewCommentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.reviewCommentRepo.SoftDelete(commentID)
}

func (s *reviewService) Comments(reviewID int64) ([]dto.CommentResponse, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comments, err := s.reviewCommentRepo.FindByReview(reviewID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *commentResponse(&comments[i], comments[i].User))
	}
	return responses, nil
}

func (s *reviewService) ownedReview(userID, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}
	return review, nil
}

func (s *reviewService) reviewResponse(review *models.Review) (*dto.ReviewResponse, error) {
	likes, err := s.reviewRepo.CountLikes(review.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.reviewRepo.CountComments(review.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReviewResponse{
		ID:        review.ID,
		BookID:    review.BookID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Title:     review.Title,
		Body:      review.Body,
		CreatedAt: review.CreatedAt.Format(timeLayout),
		UpdatedAt: review.UpdatedAt.Format(timeLayout),
		Likes:     likes,
		Comments:  comments,
	}
	if review.User != nil {
		resp.Username = review.User.Username
		resp.UserAvatar = review.User.AvatarURL
	}
	if review.Book != nil {
		resp.BookTitle = review.Book.Title
		resp.BookCover = review.Book.CoverURL
	}
	return resp, nil
}

func commentResponse(comment *models.ReviewComment, user *models.User) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		ID:        comment.ID,
		ReviewID:  comment.ReviewID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(timeLayout),
	}
	if user != nil {
		resp.Username = user.Username
		resp.UserAvatar = user.AvatarURL
	}
	return resp
}
