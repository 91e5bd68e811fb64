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

type ReviewHandler struct {
	reviewService service.ReviewService
	authService   service.AuthService
}

func NewReviewHandler(reviewService service.ReviewService, authService service.AuthService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, authService: authService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews", middleware.AuthMiddleware(h.authService))
	{
		reviews.POST("", h.Create)
		reviews.GET("/:id", h.Get)
		reviews.PUT("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
		reviews.GET("/book/:bookId", h.BookReviews)
		reviews.GET("/book/:bookId/my-review", h.MyReview)
		reviews.POST("/:id/likes", h.Like)
		reviews.DELETE("/:id/likes", h.Unlike)
		reviews.GET("/:id/likes/status", h.LikeStatus)
		reviews.GET("/:id/comments", h.Comments)
		reviews.POST("/:id/comments", h.AddComment)
		reviews.DELETE("/:id/comments/:commentId", h.DeleteComment)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyReviewed), errors.Is(err, service.ErrInvalidRating):
			dto.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookNotFound):
			dto.Error(c, http.StatusNotFound, "book not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not create review")
		}
		return
	}

	dto.Success(c, http.StatusCreated, "review created", review)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(reviewID)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "review", review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(middleware.UserID(c), reviewID, req)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "review updated", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(middleware.UserID(c), reviewID); err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "review deleted", nil)
}

func (h *ReviewHandler) BookReviews(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid book id")
		return
	}

	reviews, err := h.reviewService.BookReviews(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			dto.Error(c, http.StatusNotFound, "book not found")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not load reviews")
		return
	}
	dto.Success(c, http.StatusOK, "book reviews", reviews)
}

func (h *ReviewHandler) MyReview(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid book id")
		return
	}

	review, err := h.reviewService.MyReview(middleware.UserID(c), bookID)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "review", review)
}

func (h *ReviewHandler) Like(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.LikeReview(middleware.UserID(c), reviewID); err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			dto.Error(c, http.StatusBadRequest, "already liked")
			return
		}
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusCreated, "review liked", nil)
}

func (h *ReviewHandler) Unlike(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.UnlikeReview(middleware.UserID(c), reviewID); err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			dto.Error(c, http.StatusBadRequest, "not liked")
			return
		}
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "like removed", nil)
}

func (h *ReviewHandler) LikeStatus(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	liked, err := h.reviewService.LikeStatus(middleware.UserID(c), reviewID)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "like status", gin.H{"liked": liked})
}

func (h *ReviewHandler) Comments(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.reviewService.Comments(reviewID)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusOK, "comments", comments)
}

func (h *ReviewHandler) AddComment(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.reviewService.AddComment(middleware.UserID(c), reviewID, req)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}
	dto.Success(c, http.StatusCreated, "comment added", comment)
}

func (h *ReviewHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.reviewService.DeleteComment(middleware.UserID(c), commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			dto.Error(c, http.StatusNotFound, "comment not found")
		case errors.Is(err, service.ErrNotCommentOwner):
			dto.Error(c, http.StatusBadRequest, err.Error())
		default:
			dto.Error(c, http.StatusInternalServerError, "could not delete comment")
		}
		return
	}
	dto.Success(c, http.StatusOK, "comment deleted", nil)
}

func (h *ReviewHandler) writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		dto.Error(c, http.StatusNotFound, "review not found")
	case errors.Is(err, service.ErrNotReviewOwner), errors.Is(err, service.ErrInvalidRating):
		dto.Error(c, http.StatusBadRequest, err.Error())
	default:
		dto.Error(c, http.StatusInternalServerError, "review operation failed")
	}
}
