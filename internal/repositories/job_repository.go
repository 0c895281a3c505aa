package repositories

import (
	"errors"
	"time"

	"korus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	CompanyID *uint
	Skip      int
	Limit     int
}

type JobRepository interface {
	CreateJob(db *gorm.DB, job *models.Job) error
	FindJobByID(db *gorm.DB, id uint) (*models.Job, error)
	// FindActiveJobs - только активные вакансии, новые первыми
	FindActiveJobs(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	UpdateJobFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	DeleteJob(db *gorm.DB, id uint) error
	// DeactivateExpiredJobs снимает с публикации вакансии с expires_at <= now
	DeactivateExpiredJobs(db *gorm.DB, now time.Time) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) CreateJob(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActiveJobs(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	var jobs []models.Job
	query := db.Model(&models.Job{}).Where("is_active = ?", true)
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	err := query.Order("posted_at DESC, id DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateJobFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now().UTC()
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	return updatedOrMissing(db, &models.Job{}, id, result.RowsAffected, ErrJobNotFound)
}

func (r *JobRepositoryImpl) DeleteJob(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeactivateExpiredJobs(db *gorm.DB, now time.Time) (int64, error) {
	now = now.UTC()
	result := db.Model(&models.Job{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
