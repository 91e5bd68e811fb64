package repository

import (
	"parchelector/internal/http-api/models"

	"gorm.io/gorm"
)

type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error
	FindByToken(token string) (*models.RefreshToken, error)
	Delete(id string) error
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.Where("token = ? AND revoked = false", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Delete(id string) error {
	return r.db.Delete(&models.RefreshToken{}, "id = ?", id).Error
}

type ResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error
	Update(token *models.PasswordResetToken) error
	DeleteByUser(userID int64) error
	FindCandidates() ([]models.PasswordResetToken, error)
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *resetTokenRepository) Update(token *models.PasswordResetToken) error {
	return r.db.Save(token).Error
}

func (r *resetTokenRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error
}

// FindCandidates returns every stored token. Only bcrypt hashes are kept,
// so the caller compares the presented token against each row and then
// checks used/expired itself; used and expired rows stay visible so those
// cases can be reported distinctly. The table stays small because each new
// reset request purges the user's earlier tokens.
func (r *resetTokenRepository) FindCandidates() ([]models.PasswordResetToken, error) {
	var tokens []models.PasswordResetToken
	if err := r.db.Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
