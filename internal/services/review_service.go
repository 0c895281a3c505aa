package services

import (
	"errors"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// CreateReview - публичная операция. Токен сотрудника, привязанный к другой
	// компании или уже погашенный, не ошибка: отзыв сохраняется неверифицированным.
	CreateReview(db *gorm.DB, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(db *gorm.DB, id uint) (*dto.ReviewResponse, error)
	ListReviews(db *gorm.DB, companyID *uint, skip, limit int) ([]*dto.ReviewResponse, error)
	MarkHelpful(db *gorm.DB, id uint) (*dto.ReviewResponse, error)
	// DeleteReview удаляет отзыв и синхронизирует рейтинги его компании
	DeleteReview(db *gorm.DB, id uint) error
}

type reviewService struct {
	reviewRepo    repositories.ReviewRepository
	companyRepo   repositories.CompanyRepository
	jobRepo       repositories.JobRepository
	tokenService  EmployeeTokenService
	ratingService RatingService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	tokenService EmployeeTokenService,
	ratingService RatingService,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		companyRepo:   companyRepo,
		jobRepo:       jobRepo,
		tokenService:  tokenService,
		ratingService: ratingService,
	}
}

// ---------------- Review Operations ----------------

func (s *reviewService) CreateReview(db *gorm.DB, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	// Блокировка строки компании сериализует создание отзывов и пересчет
	company, err := s.companyRepo.LockCompany(tx, req.CompanyID)
	if err != nil {
		return nil, handleCompanyError(err)
	}

	if req.JobID != nil {
		job, err := s.jobRepo.FindJobByID(tx, *req.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return nil, apperrors.ErrReviewJobMismatch
			}
			return nil, apperrors.InternalError(err)
		}
		if job.CompanyID != company.ID {
			return nil, apperrors.ErrReviewJobMismatch
		}
	}

	review := &models.Review{
		CompanyID:            company.ID,
		JobID:                req.JobID,
		RatingWorkConditions: req.RatingWorkConditions,
		RatingPay:            req.RatingPay,
		RatingTreatment:      req.RatingTreatment,
		RatingSafety:         req.RatingSafety,
		Comment:              req.Comment,
		IsAnonymous:          req.Anonymous(),
	}

	if req.EmployeeToken != nil && *req.EmployeeToken != "" {
		verified, err := s.redeemEmployeeToken(tx, company.ID, *req.EmployeeToken)
		if err != nil {
			return nil, err
		}
		if verified {
			redacted := RedactToken(*req.EmployeeToken)
			review.VerifiedEmployee = true
			review.EmployeeToken = &redacted
		}
	}

	if err := s.reviewRepo.CreateReview(tx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.ratingService.RecomputeCompanyRatings(tx, company.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewReviewResponse(review), nil
}

// redeemEmployeeToken гасит токен, только если он годен и принадлежит этой компании
func (s *reviewService) redeemEmployeeToken(tx *gorm.DB, companyID uint, token string) (bool, error) {
	et, ok, err := s.tokenService.Verify(tx, token)
	if err != nil || !ok {
		return false, err
	}
	if et.CompanyID != companyID {
		return false, nil
	}
	return s.tokenService.Consume(tx, et.ID)
}

func (s *reviewService) GetReview(db *gorm.DB, id uint) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindReviewByID(db, id)
	if err != nil {
		return nil, handleReviewError(err)
	}
	return dto.NewReviewResponse(review), nil
}

func (s *reviewService) ListReviews(db *gorm.DB, companyID *uint, skip, limit int) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindReviews(db, repositories.ReviewFilter{
		CompanyID: companyID,
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponseList(reviews), nil
}

func (s *reviewService) MarkHelpful(db *gorm.DB, id uint) (*dto.ReviewResponse, error) {
	if err := s.reviewRepo.IncrementHelpful(db, id); err != nil {
		return nil, handleReviewError(err)
	}
	return s.GetReview(db, id)
}

func (s *reviewService) DeleteReview(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	review, err := s.reviewRepo.FindReviewByID(tx, id)
	if err != nil {
		return handleReviewError(err)
	}

	if _, err := s.companyRepo.LockCompany(tx, review.CompanyID); err != nil {
		return handleCompanyError(err)
	}

	if err := s.reviewRepo.DeleteReview(tx, id); err != nil {
		return handleReviewError(err)
	}

	if err := s.ratingService.SyncCompanyRatings(tx, review.CompanyID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func handleReviewError(err error) error {
	if errors.Is(err, repositories.ErrReviewNotFound) {
		return apperrors.ErrReviewNotFound
	}
	return apperrors.InternalError(err)
}
