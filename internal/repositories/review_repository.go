package repositories

import (
	"errors"

	"korus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewFilter struct {
	CompanyID *uint
	Skip      int
	Limit     int
}

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewByID(db *gorm.DB, id uint) (*models.Review, error)
	FindReviews(db *gorm.DB, filter ReviewFilter) ([]models.Review, error)
	// FindReviewsByCompany возвращает все отзывы компании (для пересчета рейтингов)
	FindReviewsByCompany(db *gorm.DB, companyID uint) ([]models.Review, error)
	IncrementHelpful(db *gorm.DB, id uint) error
	DeleteReview(db *gorm.DB, id uint) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviews(db *gorm.DB, filter ReviewFilter) ([]models.Review, error) {
	var reviews []models.Review
	query := db.Model(&models.Review{})
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	err := query.Order("created_at DESC, id DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindReviewsByCompany(db *gorm.DB, companyID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("company_id = ?", companyID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) IncrementHelpful(db *gorm.DB, id uint) error {
	result := db.Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteReview(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
