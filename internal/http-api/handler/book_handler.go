package handler

import (
	"errors"
	"net/http"
	"strconv"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/middleware"
	"parchelector/internal/http-api/repository"
	"parchelector/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.BookService
	authService service.AuthService
}

func NewBookHandler(bookService service.BookService, authService service.AuthService) *BookHandler {
	return &BookHandler{bookService: bookService, authService: authService}
}

// RegisterRoutes mounts the catalog endpoints. Reads work anonymously but
// personalize when a token is present; tracking and favorites require one.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")

	public := books.Group("", middleware.OptionalAuthMiddleware(h.authService))
	{
		public.GET("/trending", h.Trending)
		public.GET("/search", h.Search)
		public.GET("/filter", h.Filter)
		public.GET("/:id", h.GetBook)
	}

	private := books.Group("", middleware.AuthMiddleware(h.authService))
	{
		private.POST("/reading-status", h.SetReadingStatus)
		private.GET("/favorites", h.Favorites)
		private.POST("/favorites", h.AddFavorite)
		private.DELETE("/favorites/:bookId", h.RemoveFavorite)
	}
}

func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), bookID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			dto.Error(c, http.StatusNotFound, "book not found")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not load book")
		return
	}
	dto.Success(c, http.StatusOK, "book", book)
}

func (h *BookHandler) Trending(c *gin.Context) {
	books, err := h.bookService.Trending(c.Request.Context(), intQuery(c, "limit"), middleware.UserID(c))
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not load trending books")
		return
	}
	dto.Success(c, http.StatusOK, "trending books", books)
}

func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.bookService.Search(c.Request.Context(), c.Query("query"), intQuery(c, "limit"), middleware.UserID(c))
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "search failed")
		return
	}
	dto.Success(c, http.StatusOK, "search results", books)
}

func (h *BookHandler) Filter(c *gin.Context) {
	filter := repository.BookFilter{
		Genre:   c.Query("genre"),
		MinYear: intQuery(c, "minYear"),
		MaxYear: intQuery(c, "maxYear"),
		SortBy:  c.Query("sortBy"),
		Limit:   intQuery(c, "limit"),
	}

	books, err := h.bookService.Filter(c.Request.Context(), filter, middleware.UserID(c))
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "filter failed")
		return
	}
	dto.Success(c, http.StatusOK, "filtered books", books)
}

func (h *BookHandler) SetReadingStatus(c *gin.Context) {
	var req dto.ReadingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.bookService.SetReadingStatus(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidProgress):
			dto.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookNotFound):
			dto.Error(c, http.StatusNotFound, "book not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not update reading status")
		}
		return
	}

	dto.Success(c, http.StatusOK, "reading status updated", status)
}

func (h *BookHandler) Favorites(c *gin.Context) {
	favorites, err := h.bookService.Favorites(middleware.UserID(c))
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not load favorites")
		return
	}
	dto.Success(c, http.StatusOK, "favorites", favorites)
}

func (h *BookHandler) AddFavorite(c *gin.Context) {
	var req dto.FavoriteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bookService.AddFavorite(c.Request.Context(), middleware.UserID(c), req.BookID); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyFavorite):
			dto.Error(c, http.StatusBadRequest, "book is already in favorites")
		case errors.Is(err, service.ErrBookNotFound):
			dto.Error(c, http.StatusNotFound, "book not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not add favorite")
		}
		return
	}

	dto.Success(c, http.StatusCreated, "book added to favorites", nil)
}

func (h *BookHandler) RemoveFavorite(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.bookService.RemoveFavorite(middleware.UserID(c), bookID); err != nil {
		if errors.Is(err, service.ErrNotFavorite) {
			dto.Error(c, http.StatusBadRequest, "book is not in favorites")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not remove favorite")
		return
	}

	dto.Success(c, http.StatusOK, "book removed from favorites", nil)
}

// intQuery parses an integer query parameter, zero when absent or malformed.
func intQuery(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
