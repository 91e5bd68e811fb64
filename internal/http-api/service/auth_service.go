package service

import (
	"errors"
	"time"

	"parchelector/internal/config"
	"parchelector/internal/http-api/models"
	"parchelector/internal/http-api/repository"
	"parchelector/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNameInUse          = errors.New("username already exists")
	ErrEmailInUse         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
	ErrResetTokenUsed     = errors.New("this reset token has already been used")
	ErrResetTokenExpired  = errors.New("this reset token has expired")
)

// TokenClaims is the caller identity resolved from a bearer token. Services
// only ever see the numeric user id.
type TokenClaims struct {
	UserID   int64
	Username string
}

type AuthService interface {
	Register(username, email, password string) (*models.User, string, error)
	Login(usernameOrEmail, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (string, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
	RequestPasswordReset(email string) error
	ConfirmPasswordReset(token, newPassword string) error
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	resetTokenRepo   repository.ResetTokenRepository
	mailer           Mailer
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	resetTokenTTL    time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	resetTokenRepo repository.ResetTokenRepository,
	mailer Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		resetTokenRepo:   resetTokenRepo,
		mailer:           mailer,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		resetTokenTTL:    cfg.ResetTokenTTL,
	}
}

// Register creates a new user with the given username, email, and password.
// Returns the user and a signed access token.
func (s *authService) Register(username, email, password string) (*models.User, string, error) {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, "", ErrNameInUse
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     "USER",
		Active:   true,
	}

	if err := s.userRepo.Create(user); err != nil {
		// the unique index decides races the pre-checks missed
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrNameInUse
		}
		return nil, "", err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by username or email and returns access and refresh
// tokens on success.
func (s *authService) Login(usernameOrEmail, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		// dummy compare so unknown users take as long as bad passwords
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}

	return accessToken, refreshToken, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.accessTokenTTL).Unix(),
		"iat":      time.Now().Unix(),
		"type":     "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

func (s *authService) RefreshAccessToken(refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", errors.New("refresh token expired")
	}

	user, err := s.userRepo.FindByID(refreshToken.UserID)
	if err != nil {
		return "", err
	}

	return s.generateAccessToken(user)
}

func (s *authService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := mapClaims["username"].(string)

	return &TokenClaims{
		UserID:   int64(userID),
		Username: username,
	}, nil
}

// RequestPasswordReset generates a reset token and mails it. Whether the
// email exists is never revealed to the caller: an unknown address is a
// silent no-op.
func (s *authService) RequestPasswordReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil
	}

	if err := s.resetTokenRepo.DeleteByUser(user.ID); err != nil {
		return err
	}

	rawToken := uuid.New().String()
	tokenHash, err := auth.HashPassword(rawToken)
	if err != nil {
		return err
	}

	resetToken := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.resetTokenTTL),
	}
	if err := s.resetTokenRepo.Create(resetToken); err != nil {
		return err
	}

	s.mailer.SendPasswordReset(user.Email, user.Username, rawToken)
	return nil
}

// ConfirmPasswordReset consumes a reset token and replaces the password.
func (s *authService) ConfirmPasswordReset(token, newPassword string) error {
	candidates, err := s.resetTokenRepo.FindCandidates()
	if err != nil {
		return err
	}

	var resetToken *models.PasswordResetToken
	for i := range candidates {
		if auth.VerifyPassword(candidates[i].TokenHash, token) == nil {
			resetToken = &candidates[i]
			break
		}
	}
	if resetToken == nil {
		return ErrResetTokenInvalid
	}
	if resetToken.Used() {
		return ErrResetTokenUsed
	}
	if resetToken.Expired() {
		return ErrResetTokenExpired
	}

	user, err := s.userRepo.FindByID(resetToken.UserID)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	now := time.Now()
	resetToken.UsedAt = &now
	return s.resetTokenRepo.Update(resetToken)
}
