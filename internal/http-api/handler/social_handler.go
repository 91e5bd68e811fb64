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

type SocialHandler struct {
	socialService service.SocialService
	authService   service.AuthService
}

func NewSocialHandler(socialService service.SocialService, authService service.AuthService) *SocialHandler {
	return &SocialHandler{socialService: socialService, authService: authService}
}

func (h *SocialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	social := rg.Group("/social", middleware.AuthMiddleware(h.authService))
	{
		social.POST("/follow/user", h.FollowUser)
		social.DELETE("/follow/user/:userId", h.UnfollowUser)
		social.GET("/follow/user/:userId/status", h.FollowUserStatus)
		social.POST("/follow/author", h.FollowAuthor)
		social.DELETE("/follow/author/:authorId", h.UnfollowAuthor)
		social.GET("/follow/author/:authorId/status", h.FollowAuthorStatus)
		social.GET("/users/:userId/stats", h.UserStats)
		social.GET("/feed", h.Feed)
	}
}

func (h *SocialHandler) FollowUser(c *gin.Context) {
	var req dto.FollowUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	follow, err := h.socialService.FollowUser(middleware.UserID(c), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			dto.Error(c, http.StatusBadRequest, "cannot follow yourself")
		case errors.Is(err, service.ErrAlreadyFollowing):
			dto.Error(c, http.StatusBadRequest, "already following this user")
		case errors.Is(err, service.ErrUserNotFound):
			dto.Error(c, http.StatusNotFound, "user not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not follow user")
		}
		return
	}

	dto.Success(c, http.StatusCreated, "user followed", follow)
}

func (h *SocialHandler) UnfollowUser(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.socialService.UnfollowUser(middleware.UserID(c), targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFollowing):
			dto.Error(c, http.StatusBadRequest, "not following this user")
		case errors.Is(err, service.ErrUserNotFound):
			dto.Error(c, http.StatusNotFound, "user not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not unfollow user")
		}
		return
	}

	dto.Success(c, http.StatusOK, "user unfollowed", nil)
}

func (h *SocialHandler) FollowUserStatus(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	following, err := h.socialService.IsFollowingUser(middleware.UserID(c), targetID)
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not check follow status")
		return
	}
	dto.Success(c, http.StatusOK, "follow status", gin.H{"following": following})
}

func (h *SocialHandler) FollowAuthor(c *gin.Context) {
	var req dto.FollowAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.socialService.FollowAuthor(c.Request.Context(), middleware.UserID(c), req.AuthorID); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyFollowing):
			dto.Error(c, http.StatusBadRequest, "already following this author")
		case errors.Is(err, service.ErrAuthorNotFound):
			dto.Error(c, http.StatusNotFound, "author not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not follow author")
		}
		return
	}

	dto.Success(c, http.StatusCreated, "author followed", nil)
}

func (h *SocialHandler) UnfollowAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("authorId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid author id")
		return
	}

	if err := h.socialService.UnfollowAuthor(middleware.UserID(c), authorID); err != nil {
		if errors.Is(err, service.ErrNotFollowing) {
			dto.Error(c, http.StatusBadRequest, "not following this author")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not unfollow author")
		return
	}

	dto.Success(c, http.StatusOK, "author unfollowed", nil)
}

func (h *SocialHandler) FollowAuthorStatus(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("authorId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid author id")
		return
	}

	following, err := h.socialService.IsFollowingAuthor(middleware.UserID(c), authorID)
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not check follow status")
		return
	}
	dto.Success(c, http.StatusOK, "follow status", gin.H{"following": following})
}

func (h *SocialHandler) UserStats(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := h.socialService.FollowStats(targetID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			dto.Error(c, http.StatusNotFound, "user not found")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not load stats")
		return
	}
	dto.Success(c, http.StatusOK, "follow stats", stats)
}

func (h *SocialHandler) Feed(c *gin.Context) {
	limit := intQuery(c, "limit")
	offset := intQuery(c, "offset")

	feed, err := h.socialService.GetFeed(middleware.UserID(c), limit, offset)
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not load feed")
		return
	}
	dto.Success(c, http.StatusOK, "feed", feed)
}
