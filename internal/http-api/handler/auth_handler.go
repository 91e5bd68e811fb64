package handler

import (
	"errors"
	"net/http"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/middleware"
	"parchelector/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService     service.AuthService
	userService     service.UserService
	activityService service.ActivityService
}

func NewAuthHandler(
	authService service.AuthService,
	userService service.UserService,
	activityService service.ActivityService,
) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		userService:     userService,
		activityService: activityService,
	}
}

// RegisterRoutes mounts the auth endpoints. Public routes carry the rate
// limiter; profile routes require a valid token.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, limiter gin.HandlerFunc) {
	public := rg.Group("/auth", limiter)
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
		public.POST("/refresh", h.Refresh)
		public.POST("/forgot-password", h.ForgotPassword)
		public.POST("/reset-password", h.ResetPassword)
	}

	private := rg.Group("/auth", middleware.AuthMiddleware(h.authService))
	{
		private.GET("/me", h.Me)
		private.PUT("/update", h.Update)
		private.GET("/activity", h.Activity)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameInUse), errors.Is(err, service.ErrEmailInUse):
			dto.Error(c, http.StatusBadRequest, err.Error())
		default:
			dto.Error(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	dto.Success(c, http.StatusCreated, "user registered", dto.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			dto.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "login failed")
		return
	}

	dto.Success(c, http.StatusOK, "login successful", dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		dto.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	dto.Success(c, http.StatusOK, "token refreshed", dto.RefreshResponse{Token: token})
}

// ForgotPassword answers identically whether the address is known or not.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not process request")
		return
	}

	dto.Success(c, http.StatusOK, "if the email exists, a reset token has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ConfirmPasswordReset(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid),
			errors.Is(err, service.ErrResetTokenUsed),
			errors.Is(err, service.ErrResetTokenExpired):
			dto.Error(c, http.StatusBadRequest, err.Error())
		default:
			dto.Error(c, http.StatusInternalServerError, "could not reset password")
		}
		return
	}

	dto.Success(c, http.StatusOK, "password updated", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.userService.Profile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			dto.Error(c, http.StatusNotFound, "user not found")
			return
		}
		dto.Error(c, http.StatusInternalServerError, "could not load profile")
		return
	}
	dto.Success(c, http.StatusOK, "profile", profile)
}

func (h *AuthHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameInUse):
			dto.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			dto.Error(c, http.StatusNotFound, "user not found")
		default:
			dto.Error(c, http.StatusInternalServerError, "could not update profile")
		}
		return
	}

	dto.Success(c, http.StatusOK, "profile updated", gin.H{
		"userId":    user.ID,
		"username":  user.Username,
		"bio":       user.Bio,
		"avatarUrl": user.AvatarURL,
	})
}

func (h *AuthHandler) Activity(c *gin.Context) {
	activity, err := h.activityService.Activity(middleware.UserID(c))
	if err != nil {
		dto.Error(c, http.StatusInternalServerError, "could not load activity")
		return
	}
	dto.Success(c, http.StatusOK, "activity", activity)
}
