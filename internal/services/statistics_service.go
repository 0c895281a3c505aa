package services

import (
	"errors"
	"time"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	recentReviewsWindow = 30 * 24 * time.Hour

	dashboardCompanies  = 100
	dashboardJobs       = 200
	dashboardReviews    = 200
	dashboardSupportOrg = 200
)

// StatisticsService только читает данные; блок рейтингов не меняет
type StatisticsService interface {
	PlatformStatistics(db *gorm.DB) (*dto.PlatformStatistics, error)
	// CompanyStatistics считает recent_reviews за 30 суток до now
	CompanyStatistics(db *gorm.DB, companyID uint, now time.Time) (*dto.CompanyStatistics, error)
	Dashboard(db *gorm.DB) (*dto.Dashboard, error)
}

type statisticsService struct {
	statsRepo      repositories.StatisticsRepository
	companyRepo    repositories.CompanyRepository
	jobRepo        repositories.JobRepository
	reviewRepo     repositories.ReviewRepository
	supportOrgRepo repositories.SupportOrgRepository
}

func NewStatisticsService(
	statsRepo repositories.StatisticsRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	reviewRepo repositories.ReviewRepository,
	supportOrgRepo repositories.SupportOrgRepository,
) StatisticsService {
	return &statisticsService{
		statsRepo:      statsRepo,
		companyRepo:    companyRepo,
		jobRepo:        jobRepo,
		reviewRepo:     reviewRepo,
		supportOrgRepo: supportOrgRepo,
	}
}

func (s *statisticsService) PlatformStatistics(db *gorm.DB) (*dto.PlatformStatistics, error) {
	counts, err := s.statsRepo.GetPlatformCounts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlatformStatistics{
		TotalCompanies:    counts.TotalCompanies,
		TotalReviews:      counts.TotalReviews,
		TotalJobs:         counts.ActiveJobs,
		TotalSupportOrgs:  counts.ActiveSupportOrgs,
		AverageRating:     round2(counts.AverageRating),
		AverageTrustScore: round2(counts.AverageTrustScore),
		VerifiedCompanies: counts.VerifiedCompanies,
		CriticalReviews:   counts.CriticalReviews,
	}, nil
}

func (s *statisticsService) CompanyStatistics(db *gorm.DB, companyID uint, now time.Time) (*dto.CompanyStatistics, error) {
	company, err := s.companyRepo.FindCompanyByID(db, companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.statsRepo.GetCompanyCounts(db, companyID, now.Add(-recentReviewsWindow))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CompanyStatistics{
		CompanyID:     company.ID,
		CompanyName:   company.CompanyName,
		TotalReviews:  counts.TotalReviews,
		TotalJobs:     counts.TotalJobs,
		ActiveJobs:    counts.ActiveJobs,
		AverageRating: company.OverallRating,
		TrustScore:    company.TrustScore,
		RatingBreakdown: dto.RatingBreakdown{
			WorkConditions: company.RatingWorkConditions,
			Pay:            company.RatingPay,
			Treatment:      company.RatingTreatment,
			Safety:         company.RatingSafety,
		},
		RecentReviews: counts.RecentReviews,
	}, nil
}

// Dashboard читает пять независимых срезов параллельно
func (s *statisticsService) Dashboard(db *gorm.DB) (*dto.Dashboard, error) {
	g, ctx := errgroup.WithContext(db.Statement.Context)
	gdb := db.WithContext(ctx)

	var (
		companies []models.Company
		jobs      []models.Job
		reviews   []models.Review
		orgs      []models.SupportOrganization
		stats     *dto.PlatformStatistics
	)

	g.Go(func() (err error) {
		companies, err = s.companyRepo.ListCompanies(gdb, 0, dashboardCompanies)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = s.jobRepo.FindActiveJobs(gdb, repositories.JobFilter{Limit: dashboardJobs})
		return err
	})
	g.Go(func() (err error) {
		reviews, err = s.reviewRepo.FindReviews(gdb, repositories.ReviewFilter{Limit: dashboardReviews})
		return err
	})
	g.Go(func() (err error) {
		orgs, err = s.supportOrgRepo.FindActiveSupportOrgs(gdb, 0, dashboardSupportOrg)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.PlatformStatistics(gdb)
		return err
	})

	if err := g.Wait(); err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.Dashboard{
		Companies:            dto.NewCompanyPublicList(companies),
		Jobs:                 jobs,
		Reviews:              dto.NewReviewResponseList(reviews),
		SupportOrganizations: orgs,
		Statistics:           stats,
	}, nil
}
