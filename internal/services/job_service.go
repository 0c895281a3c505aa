package services

import (
	"errors"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	ListJobs(db *gorm.DB, companyID *uint, skip, limit int) ([]models.Job, error)
	GetJob(db *gorm.DB, id uint) (*models.Job, error)
	// CreateJob - только для своей компании (company_id в запросе должен совпадать)
	CreateJob(db *gorm.DB, companyID uint, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, companyID, jobID uint, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, companyID, jobID uint) error
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListJobs(db *gorm.DB, companyID *uint, skip, limit int) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindActiveJobs(db, repositories.JobFilter{
		CompanyID: companyID,
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) GetJob(db *gorm.DB, id uint) (*models.Job, error) {
	job, err := s.jobRepo.FindJobByID(db, id)
	if err != nil {
		return nil, handleJobError(err)
	}
	return job, nil
}

func (s *jobService) CreateJob(db *gorm.DB, companyID uint, req *dto.CreateJobRequest) (*models.Job, error) {
	if req.CompanyID != companyID {
		return nil, apperrors.ErrJobForeignCompany
	}

	job := &models.Job{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		IsActive:     true,
	}
	if req.ExpiresAt != nil {
		expires := req.ExpiresAt.UTC()
		job.ExpiresAt = &expires
	}

	if err := s.jobRepo.CreateJob(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(db *gorm.DB, companyID, jobID uint, req *dto.UpdateJobRequest) (*models.Job, error) {
	if _, err := s.ownedJob(db, companyID, jobID); err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateJobFields(db, jobID, req.Fields()); err != nil {
		return nil, handleJobError(err)
	}
	return s.GetJob(db, jobID)
}

func (s *jobService) DeleteJob(db *gorm.DB, companyID, jobID uint) error {
	if _, err := s.ownedJob(db, companyID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.DeleteJob(db, jobID); err != nil {
		return handleJobError(err)
	}
	return nil
}

// ownedJob: 404, если вакансии нет, 403, если она чужая
func (s *jobService) ownedJob(db *gorm.DB, companyID, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.CompanyID != companyID {
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}

func handleJobError(err error) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound
	}
	return apperrors.InternalError(err)
}
