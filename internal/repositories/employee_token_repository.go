package repositories

import (
	"errors"
	"time"

	"korus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployeeTokenNotFound = errors.New("employee token not found")

type EmployeeTokenRepository interface {
	CreateToken(db *gorm.DB, token *models.EmployeeToken) error
	FindTokenByValue(db *gorm.DB, value string) (*models.EmployeeToken, error)
	// MarkUsed атомарно гасит токен; true, если именно этот вызов его погасил
	MarkUsed(db *gorm.DB, id uint, usedAt time.Time) (bool, error)
	// DeactivateExpiredTokens выключает непогашенные токены с истекшим сроком
	DeactivateExpiredTokens(db *gorm.DB, now time.Time) (int64, error)
}

type EmployeeTokenRepositoryImpl struct{}

func NewEmployeeTokenRepository() EmployeeTokenRepository {
	return &EmployeeTokenRepositoryImpl{}
}

func (r *EmployeeTokenRepositoryImpl) CreateToken(db *gorm.DB, token *models.EmployeeToken) error {
	return db.Create(token).Error
}

func (r *EmployeeTokenRepositoryImpl) FindTokenByValue(db *gorm.DB, value string) (*models.EmployeeToken, error) {
	var token models.EmployeeToken
	if err := db.Where("token = ?", value).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *EmployeeTokenRepositoryImpl) MarkUsed(db *gorm.DB, id uint, usedAt time.Time) (bool, error) {
	result := db.Model(&models.EmployeeToken{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *EmployeeTokenRepositoryImpl) DeactivateExpiredTokens(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.EmployeeToken{}).
		Where("is_active = ? AND is_used = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, false, now.UTC()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
