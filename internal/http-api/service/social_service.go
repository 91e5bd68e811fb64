package service

import (
	"context"
	"errors"
	"sort"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"gorm.io/gorm"
)

// timeLayout is the wire format for all timestamps in response payloads.
const timeLayout = "2006-01-02 15:04:05"

var (
	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
	ErrUserNotFound     = errors.New("user not found")
	ErrAuthorNotFound   = errors.New("author not found")
)

type SocialService interface {
	FollowUser(followerID, targetID int64) (*dto.FollowResponse, error)
	UnfollowUser(followerID, targetID int64) error
	IsFollowingUser(followerID, targetID int64) (bool, error)
	FollowAuthor(ctx context.Context, userID, authorID int64) error
	UnfollowAuthor(userID, authorID int64) error
	IsFollowingAuthor(userID, authorID int64) (bool, error)
	FollowStats(targetID, viewerID int64) (*dto.UserFollowStatsResponse, error)
	GetFeed(userID int64, limit, offset int) (*dto.FeedResponse, error)
}

type socialService struct {
	userRepo         repository.UserRepository
	followRepo       repository.FollowRepository
	authorFollowRepo repository.AuthorFollowRepository
	bookRepo         repository.BookRepository
	reviewRepo       repository.ReviewRepository
	listRepo         repository.ListRepository
	listLikeRepo     repository.ListLikeRepository
}

func NewSocialService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	authorFollowRepo repository.AuthorFollowRepository,
	bookRepo repository.BookRepository,
	reviewRepo repository.ReviewRepository,
	listRepo repository.ListRepository,
	listLikeRepo repository.ListLikeRepository,
) SocialService {
	return &socialService{
		userRepo:         userRepo,
		followRepo:       followRepo,
		authorFollowRepo: authorFollowRepo,
		bookRepo:         bookRepo,
		reviewRepo:       reviewRepo,
		listRepo:         listRepo,
		listLikeRepo:     listLikeRepo,
	}
}

// FollowUser creates a follow edge from follower to target.
func (s *socialService) FollowUser(followerID, targetID int64) (*dto.FollowResponse, error) {
	if followerID == targetID {
		return nil, ErrSelfFollow
	}

	follower, err := s.userRepo.FindByID(followerID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	follow := &models.Follow{
		FollowerID: followerID,
		FollowedID: targetID,
	}
	if err := s.followRepo.Create(follow); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return &dto.FollowResponse{
		FollowerID:       follower.ID,
		FollowerUsername: follower.Username,
		FollowedID:       target.ID,
		FollowedUsername: target.Username,
		CreatedAt:        follow.CreatedAt.Format(timeLayout),
	}, nil
}

func (s *socialService) UnfollowUser(followerID, targetID int64) error {
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		return ErrUserNotFound
	}
	if err := s.followRepo.Delete(followerID, targetID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *socialService) IsFollowingUser(followerID, targetID int64) (bool, error) {
	return s.followRepo.Exists(followerID, targetID)
}

func (s *socialService) FollowAuthor(ctx context.Context, userID, authorID int64) error {
	if _, err := s.bookRepo.GetAuthorByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAuthorNotFound
		}
		return err
	}

	follow := &models.AuthorFollow{
		UserID:   userID,
		AuthorID: authorID,
	}
	if err := s.authorFollowRepo.Create(follow); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *socialService) UnfollowAuthor(userID, authorID int64) error {
	if err := s.authorFollowRepo.Delete(userID, authorID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *socialService) IsFollowingAuthor(userID, authorID int64) (bool, error) {
	return s.authorFollowRepo.Exists(userID, authorID)
}

// FollowStats returns follower and following counts for the target user.
// IsFollowing is set to the viewer's relationship unless the viewer is
// looking at themselves.
func (s *socialService) FollowStats(targetID, viewerID int64) (*dto.UserFollowStatsResponse, error) {
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	followers, err := s.followRepo.CountFollowers(targetID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(targetID)
	if err != nil {
		return nil, err
	}

	stats := &dto.UserFollowStatsResponse{
		UserID:         target.ID,
		Username:       target.Username,
		FollowersCount: followers,
		FollowingCount: following,
	}

	if viewerID != targetID {
		isFollowing, err := s.followRepo.Exists(viewerID, targetID)
		if err != nil {
			return nil, err
		}
		stats.IsFollowing = &isFollowing
	}

	return stats, nil
}

// GetFeed merges the recent reviews and lists of every followed user into
// one chronological stream and returns the requested page.
//
// Private lists never appear. Follower-only lists do: everyone in the feed
// audience follows the owner already.
func (s *socialService) GetFeed(userID int64, limit, offset int) (*dto.FeedResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	followedIDs, err := s.followRepo.FollowedIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(followedIDs) == 0 {
		return &dto.FeedResponse{
			Items:   []dto.FeedItem{},
			Total:   0,
			Limit:   limit,
			Offset:  offset,
			HasMore: false,
		}, nil
	}

	reviews, err := s.reviewRepo.FindByUserIDs(followedIDs)
	if err != nil {
		return nil, err
	}
	lists, err := s.listRepo.FindByUserIDs(followedIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItem, 0, len(reviews)+len(lists))
	for i := range reviews {
		item, err := s.reviewFeedItem(&reviews[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	for i := range lists {
		if lists[i].Visibility == models.VisibilityPrivate {
			continue
		}
		item, err := s.listFeedItem(&lists[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	// Stable keeps reviews ahead of lists on equal timestamps.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})

	total := len(items)
	start := offset
	if start > total {
		start = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &dto.FeedResponse{
		Items:   items[start:end],
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: end < total,
	}, nil
}

func (s *socialService) reviewFeedItem(review *models.Review) (dto.FeedItem, error) {
	likes, err := s.reviewRepo.CountLikes(review.ID)
	if err != nil {
		return dto.FeedItem{}, err
	}
	comments, err := s.reviewRepo.CountComments(review.ID)
	if err != nil {
		return dto.FeedItem{}, err
	}

	item := dto.FeedItem{
		Type:      dto.FeedItemReview,
		UserID:    review.UserID,
		CreatedAt: review.CreatedAt.Format(timeLayout),
		Review: &dto.FeedReview{
			ReviewID: review.ID,
			BookID:   review.BookID,
			Rating:   review.Rating,
			Title:    review.Title,
			Body:     review.Body,
			Likes:    likes,
			Comments: comments,
		},
	}
	if review.User != nil {
		item.Username = review.User.Username
		item.UserAvatar = review.User.AvatarURL
	}
	if review.Book != nil {
		item.Review.BookTitle = review.Book.Title
		item.Review.BookCover = review.Book.CoverURL
	}
	return item, nil
}

func (s *socialService) listFeedItem(list *models.LibraryList) (dto.FeedItem, error) {
	bookCount, err := s.listRepo.CountBooks(list.ID)
	if err != nil {
		return dto.FeedItem{}, err
	}
	likes, err := s.listLikeRepo.CountByList(list.ID)
	if err != nil {
		return dto.FeedItem{}, err
	}

	item := dto.FeedItem{
		Type:      dto.FeedItemList,
		UserID:    list.UserID,
		CreatedAt: list.CreatedAt.Format(timeLayout),
		List: &dto.FeedList{
			ListID:      list.ID,
			Name:        list.Name,
			Description: list.Description,
			Visibility:  list.Visibility,
			BookCount:   bookCount,
			Likes:       likes,
		},
	}
	if list.User != nil {
		item.Username = list.User.Username
		item.UserAvatar = list.User.AvatarURL
	}
	return item, nil
}
