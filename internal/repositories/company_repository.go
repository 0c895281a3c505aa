package repositories

import (
	"errors"
	"time"

	"korus_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company with this email already exists")
)

// CompanyRatings - производный блок рейтингов компании
type CompanyRatings struct {
	RatingWorkConditions float64
	RatingPay            float64
	RatingTreatment      float64
	RatingSafety         float64
	OverallRating        float64
	TrustScore           float64
	TotalReviews         int
}

type CompanyRepository interface {
	CreateCompany(db *gorm.DB, company *models.Company) error
	FindCompanyByID(db *gorm.DB, id uint) (*models.Company, error)
	FindCompanyByEmail(db *gorm.DB, email string) (*models.Company, error)
	// LockCompany берет блокировку строки (SELECT ... FOR UPDATE) до конца транзакции
	LockCompany(db *gorm.DB, id uint) (*models.Company, error)
	ListCompanies(db *gorm.DB, skip, limit int) ([]models.Company, error)
	UpdateCompanyFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	UpdateRatings(db *gorm.DB, id uint, ratings CompanyRatings) error
	DeleteCompany(db *gorm.DB, id uint) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) CreateCompany(db *gorm.DB, company *models.Company) error {
	if err := db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindCompanyByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindCompanyByEmail(db *gorm.DB, email string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("email = ?", email).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) LockCompany(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	q := db
	// SQLite блокирует базу целиком, FOR UPDATE там не нужен
	if db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) ListCompanies(db *gorm.DB, skip, limit int) ([]models.Company, error) {
	var companies []models.Company
	err := db.Order("id ASC").Offset(skip).Limit(limit).Find(&companies).Error
	return companies, err
}

// UpdateCompanyFields применяет только переданные поля (patch)
func (r *CompanyRepositoryImpl) UpdateCompanyFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return result.Error
	}
	return updatedOrMissing(db, &models.Company{}, id, result.RowsAffected, ErrCompanyNotFound)
}

func (r *CompanyRepositoryImpl) UpdateRatings(db *gorm.DB, id uint, ratings CompanyRatings) error {
	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating_work_conditions": ratings.RatingWorkConditions,
		"rating_pay":             ratings.RatingPay,
		"rating_treatment":       ratings.RatingTreatment,
		"rating_safety":          ratings.RatingSafety,
		"overall_rating":         ratings.OverallRating,
		"trust_score":            ratings.TrustScore,
		"total_reviews":          ratings.TotalReviews,
		"updated_at":             time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	return updatedOrMissing(db, &models.Company{}, id, result.RowsAffected, ErrCompanyNotFound)
}

// DeleteCompany удаляет компанию вместе с токенами сотрудников, отзывами и вакансиями.
// Должен вызываться внутри транзакции.
func (r *CompanyRepositoryImpl) DeleteCompany(db *gorm.DB, id uint) error {
	if err := db.Where("company_id = ?", id).Delete(&models.EmployeeToken{}).Error; err != nil {
		return err
	}
	if err := db.Where("company_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := db.Where("company_id = ?", id).Delete(&models.Job{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Company{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
