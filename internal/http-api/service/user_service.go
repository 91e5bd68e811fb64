package service

import (
	"errors"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	Profile(userID int64) (*dto.UserProfileResponse, error)
	UpdateProfile(userID int64, req dto.UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	bookService BookService
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	bookService BookService,
) UserService {
	return &userService{
		userRepo:    userRepo,
		followRepo:  followRepo,
		bookService: bookService,
	}
}

// Profile assembles the user's profile page: identity, follow counts, and
// the tracked shelf.
func (s *userService) Profile(userID int64) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(userID)
	if err != nil {
		return nil, err
	}

	shelf, err := s.bookService.Shelf(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		UserName:   user.Username,
		UserAvatar: user.AvatarURL,
		Bio:        user.Bio,
		Followers:  followers,
		Following:  following,
		UserBooks:  shelf,
	}, nil
}

// UpdateProfile applies a partial profile update. A username change is
// rejected when the name is already taken.
func (s *userService) UpdateProfile(userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if existing, err := s.userRepo.FindByUsername(*req.Username); err == nil && existing.ID != userID {
			return nil, ErrNameInUse
		}
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNameInUse
		}
		return nil, err
	}
	return user, nil
}
