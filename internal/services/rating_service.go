package services

import (
	"errors"
	"math"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	maxRatingScore = 5.0
	// Максимальная надбавка к доверию, когда все отзывы верифицированы
	verificationBonusWeight = 0.5
)

// RatingBlock - производные рейтинги компании, округленные до 2 знаков
type RatingBlock struct {
	WorkConditions float64
	Pay            float64
	Treatment      float64
	Safety         float64
	Overall        float64
	Trust          float64
	TotalReviews   int
}

func (b RatingBlock) toRepository() repositories.CompanyRatings {
	return repositories.CompanyRatings{
		RatingWorkConditions: b.WorkConditions,
		RatingPay:            b.Pay,
		RatingTreatment:      b.Treatment,
		RatingSafety:         b.Safety,
		OverallRating:        b.Overall,
		TrustScore:           b.Trust,
		TotalReviews:         b.TotalReviews,
	}
}

// ComputeRatings - полный пересчет по текущему набору отзывов.
// false, если отзывов нет: блок в этом случае не меняется.
func ComputeRatings(reviews []models.Review) (RatingBlock, bool) {
	if len(reviews) == 0 {
		return RatingBlock{}, false
	}

	var work, pay, treatment, safety float64
	verified := 0
	for i := range reviews {
		work += reviews[i].RatingWorkConditions
		pay += reviews[i].RatingPay
		treatment += reviews[i].RatingTreatment
		safety += reviews[i].RatingSafety
		if reviews[i].VerifiedEmployee {
			verified++
		}
	}

	n := float64(len(reviews))
	work /= n
	pay /= n
	treatment /= n
	safety /= n

	overall := (work + pay + treatment + safety) / 4
	bonus := float64(verified) / n * verificationBonusWeight
	trust := math.Min(overall+bonus, maxRatingScore)

	return RatingBlock{
		WorkConditions: round2(work),
		Pay:            round2(pay),
		Treatment:      round2(treatment),
		Safety:         round2(safety),
		Overall:        round2(overall),
		Trust:          round2(trust),
		TotalReviews:   len(reviews),
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RatingService - единственный писатель блока рейтингов компании
type RatingService interface {
	// RecomputeCompanyRatings пересчитывает блок; без отзывов ничего не меняет
	RecomputeCompanyRatings(db *gorm.DB, companyID uint) error
	// SyncCompanyRatings пересчитывает блок, а без отзывов обнуляет его (после удаления отзыва)
	SyncCompanyRatings(db *gorm.DB, companyID uint) error
}

type ratingService struct {
	reviewRepo  repositories.ReviewRepository
	companyRepo repositories.CompanyRepository
}

func NewRatingService(reviewRepo repositories.ReviewRepository, companyRepo repositories.CompanyRepository) RatingService {
	return &ratingService{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
	}
}

func (s *ratingService) RecomputeCompanyRatings(db *gorm.DB, companyID uint) error {
	_, err := s.recompute(db, companyID)
	return err
}

func (s *ratingService) SyncCompanyRatings(db *gorm.DB, companyID uint) error {
	applied, err := s.recompute(db, companyID)
	if err != nil || applied {
		return err
	}
	return s.saveRatings(db, companyID, RatingBlock{})
}

func (s *ratingService) recompute(db *gorm.DB, companyID uint) (bool, error) {
	reviews, err := s.reviewRepo.FindReviewsByCompany(db, companyID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	block, ok := ComputeRatings(reviews)
	if !ok {
		return false, nil
	}
	return true, s.saveRatings(db, companyID, block)
}

func (s *ratingService) saveRatings(db *gorm.DB, companyID uint, block RatingBlock) error {
	if err := s.companyRepo.UpdateRatings(db, companyID, block.toRepository()); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
