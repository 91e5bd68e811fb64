package handler

import (
	"errors"
	"net/http"
	"strconv"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/middleware"
	"parchelector/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listService service.ListService
	authService service.AuthService
}

func NewListHandler(listService service.ListService, authService service.AuthService) *ListHandler {
	return &ListHandler{listService: listService, authService: authService}
}

func (h *ListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lists := rg.Group("/lists", middleware.AuthMiddleware(h.authService))
	{
		lists.POST("", h.Create)
		lists.GET("", h.MyLists)
		lists.GET("/:id", h.Get)
		lists.PUT("/:id", h.Update)
		lists.DELETE("/:id", h.Delete)
		lists.POST("/:id/books", h.AddBook)
		lists.DELETE("/:id/books/:bookId", h.RemoveBook)
		lists.POST("/:id/likes", h.Like)
		lists.DELETE("/:id/likes", h.Unlike)
		lists.GET("/:id/likes/status", h.LikeStatus)
	}
}

func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.listService.CreateList(middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVisibility) {
			dto.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not create list")
		return
	}

	dto.Success(c, http.StatusCreated, "list created", list)
}

func (h *ListHandler) MyLists(c *gin.Context) {
	userID := middleware.UserID(c)
	lists, err := h.listService.UserLists(userID, userID)
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not load lists")
		return
	}
	dto.Success(c, http.StatusOK, "lists", lists)
}

func (h *ListHandler) Get(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.listService.GetList(listID, middleware.UserID(c))
	if err != nil {
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "list", list)
}

func (h *ListHandler) Update(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.listService.UpdateList(middleware.UserID(c), listID, req)
	if err != nil {
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "list updated", list)
}

func (h *ListHandler) Delete(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(middleware.UserID(c), listID); err != nil {
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "list deleted", nil)
}

func (h *ListHandler) AddBook(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddBookToListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.listService.AddBook(c.Request.Context(), middleware.UserID(c), listID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrBookAlreadyInList):
			dto.Error(c, http.StatusBadRequest, "book is already in this list")
		case errors.Is(err, service.ErrBookNotFound):
			dto.Error(c, http.StatusNotFound, "book not found")
		default:
			h.writeListError(c, err)
		}
		return
	}

	dto.Success(c, http.StatusCreated, "book added to list", nil)
}

func (h *ListHandler) RemoveBook(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.listService.RemoveBook(middleware.UserID(c), listID, bookID); err != nil {
		if errors.Is(err, service.ErrBookNotInList) {
			dto.Error(c, http.StatusBadRequest, "book is not in this list")
			return
		}
		h.writeListError(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "book removed from list", nil)
}

func (h *ListHandler) Like(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listService.LikeList(middleware.UserID(c), listID); err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			dto.Error(c, http.StatusBadRequest, "already liked")
			return
		}
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusCreated, "list liked", nil)
}

func (h *ListHandler) Unlike(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listService.UnlikeList(middleware.UserID(c), listID); err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			dto.Error(c, http.StatusBadRequest, "not liked")
			return
		}
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "like removed", nil)
}

func (h *ListHandler) LikeStatus(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	liked, err := h.listService.LikeStatus(middleware.UserID(c), listID)
	if err != nil {
		h.writeListError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "like status", gin.H{"liked": liked})
}

func (h *ListHandler) writeListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrListNotFound):
		dto.Error(c, http.StatusNotFound, "list not found")
	case errors.Is(err, service.ErrNotListOwner):
		dto.Error(c, http.StatusBadRequest, "only the owner can modify this list")
	case errors.Is(err, service.ErrInvalidVisibility):
		dto.Error(c, http.StatusBadRequest, err.Error())
	default:
		dto.Error(c, http.StatusInternalServerError, "list operation failed")
	}
}

// pathID parses a numeric path parameter, writing the 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
