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
	ErrListNotFound      = errors.New("list not found")
	ErrNotListOwner      = errors.New("only the owner can modify a list")
	ErrInvalidVisibility = errors.New("invalid list visibility")
	ErrBookAlreadyInList = errors.New("book is already in the list")
	ErrBookNotInList     = errors.New("book is not in the list")
	ErrAlreadyLiked      = errors.New("already liked")
	ErrNotLiked          = errors.New("not liked")
)

type ListService interface {
	CreateList(userID int64, req dto.CreateListRequest) (*dto.ListResponse, error)
	UpdateList(userID, listID int64, req dto.UpdateListRequest) (*dto.ListResponse, error)
	DeleteList(userID, listID int64) error
	GetList(listID, viewerID int64) (*dto.ListResponse, error)
	UserLists(ownerID, viewerID int64) ([]dto.ListResponse, error)
	AddBook(ctx context.Context, userID, listID int64, req dto.AddBookToListRequest) error
	RemoveBook(userID, listID, bookID int64) error
	LikeList(userID, listID int64) error
	UnlikeList(userID, listID int64) error
	LikeStatus(userID, listID int64) (bool, error)
}

type listService struct {
	listRepo     repository.ListRepository
	listBookRepo repository.ListBookRepository
	listLikeRepo repository.ListLikeRepository
	bookRepo     repository.BookRepository
}

func NewListService(
	listRepo repository.ListRepository,
	listBookRepo repository.ListBookRepository,
	listLikeRepo repository.ListLikeRepository,
	bookRepo repository.BookRepository,
) ListService {
	return &listService{
		listRepo:     listRepo,
		listBookRepo: listBookRepo,
		listLikeRepo: listLikeRepo,
		bookRepo:     bookRepo,
	}
}

func (s *listService) CreateList(userID int64, req dto.CreateListRequest) (*dto.ListResponse, error) {
	if !models.ValidVisibility(req.Visibility) {
		return nil, ErrInvalidVisibility
	}

	list := &models.LibraryList{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}
	if err := s.listRepo.Create(list); err != nil {
		return nil, err
	}

	created, err := s.listRepo.FindByID(list.ID)
	if err != nil {
		return nil, err
	}
	return s.listResponse(created, false)
}

func (s *listService) UpdateList(userID, listID int64, req dto.UpdateListRequest) (*dto.ListResponse, error) {
	list, err := s.ownedList(userID, listID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}
	if req.Visibility != nil {
		if !models.ValidVisibility(*req.Visibility) {
			return nil, ErrInvalidVisibility
		}
		list.Visibility = *req.Visibility
	}

	if err := s.listRepo.Update(list); err != nil {
		return nil, err
	}
	return s.listResponse(list, true)
}

func (s *listService) DeleteList(userID, listID int64) error {
	if _, err := s.ownedList(userID, listID); err != nil {
		return err
	}
	return s.listRepo.Delete(listID)
}

// GetList returns one list with its books. Private lists are visible to the
// owner only; public and follower-only lists are readable by anyone.
func (s *listService) GetList(listID, viewerID int64) (*dto.ListResponse, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	if list.Visibility == models.VisibilityPrivate && list.UserID != viewerID {
		return nil, ErrListNotFound
	}

	return s.listResponse(list, true)
}

// UserLists returns the lists owned by ownerID that viewerID may see. The
// owner sees everything; everyone else sees all but private lists.
func (s *listService) UserLists(ownerID, viewerID int64) ([]dto.ListResponse, error) {
	lists, err := s.listRepo.FindByUser(ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ListResponse, 0, len(lists))
	for i := range lists {
		if lists[i].Visibility == models.VisibilityPrivate && ownerID != viewerID {
			continue
		}
		resp, err := s.listResponse(&lists[i], false)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *listService) AddBook(ctx context.Context, userID, listID int64, req dto.AddBookToListRequest) error {
	if _, err := s.ownedList(userID, listID); err != nil {
		return err
	}
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	position := 1
	if req.Position != nil {
		position = *req.Position
	}

	listBook := &models.ListBook{
		ListID:   listID,
		BookID:   req.BookID,
		Position: position,
		Note:     req.Note,
	}
	if err := s.listBookRepo.Add(listBook); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrBookAlreadyInList
		}
		return err
	}
	return nil
}

func (s *listService) RemoveBook(userID, listID, bookID int64) error {
	if _, err := s.ownedList(userID, listID); err != nil {
		return err
	}
	if err := s.listBookRepo.Remove(listID, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotInList) {
			return ErrBookNotInList
		}
		return err
	}
	return nil
}

// LikeList records a like from userID. Likes work on any list the user can
// read, including their own.
func (s *listService) LikeList(userID, listID int64) error {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}
	if list.Visibility == models.VisibilityPrivate && list.UserID != userID {
		return ErrListNotFound
	}

	like := &models.ListLike{
		ListID: listID,
		UserID: userID,
	}
	if err := s.listLikeRepo.Create(like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *listService) UnlikeList(userID, listID int64) error {
	if err := s.listLikeRepo.Delete(listID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotLiked
		}
		return err
	}
	return nil
}

func (s *listService) LikeStatus(userID, listID int64) (bool, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrListNotFound
		}
		return false, err
	}
	if list.Visibility == models.VisibilityPrivate && list.UserID != userID {
		return false, ErrListNotFound
	}
	return s.listLikeRepo.Exists(listID, userID)
}

// ownedList loads a list and checks ownership before a mutation.
func (s *listService) ownedList(userID, listID int64) (*models.LibraryList, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	if list.UserID != userID {
		return nil, ErrNotListOwner
	}
	return list, nil
}

func (s *listService) listResponse(list *models.LibraryList, withBooks bool) (*dto.ListResponse, error) {
	bookCount, err := s.listRepo.CountBooks(list.ID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.listLikeRepo.CountByList(list.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListResponse{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		Visibility:  list.Visibility,
		UserID:      list.UserID,
		CreatedAt:   list.CreatedAt.Format(timeLayout),
		UpdatedAt:   list.UpdatedAt.Format(timeLayout),
		BookCount:   bookCount,
		LikeCount:   likeCount,
		Books:       []dto.BookInListItem{},
	}
	if list.User != nil {
		resp.Username = list.User.Username
	}

	if withBooks {
		entries, err := s.listBookRepo.FindByList(list.ID)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			item := dto.BookInListItem{
				BookID:   entry.BookID,
				Position: entry.Position,
				Note:     entry.Note,
				AddedAt:  entry.AddedAt.Format(timeLayout),
			}
			if entry.Book != nil {
				item.Title = entry.Book.Title
				item.CoverURL = entry.Book.CoverURL
				for _, a := range entry.Book.Authors {
					item.Authors = append(item.Authors, a.Name)
				}
			}
			resp.Books = append(resp.Books, item)
		}
	}
	return resp, nil
}
