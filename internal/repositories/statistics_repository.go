package repositories

import (
	"database/sql"
	"time"

	"korus_backend/internal/models"

	"gorm.io/gorm"
)

// PlatformCounts - сырые агрегаты по всей платформе
type PlatformCounts struct {
	TotalCompanies    int64
	TotalReviews      int64
	ActiveJobs        int64
	ActiveSupportOrgs int64
	VerifiedCompanies int64
	CriticalReviews   int64
	AverageRating     float64
	AverageTrustScore float64
}

// CompanyCounts - счетчики по одной компании
type CompanyCounts struct {
	TotalReviews  int64
	TotalJobs     int64
	ActiveJobs    int64
	RecentReviews int64
}

type StatisticsRepository interface {
	GetPlatformCounts(db *gorm.DB) (*PlatformCounts, error)
	GetCompanyCounts(db *gorm.DB, companyID uint, since time.Time) (*CompanyCounts, error)
}

type StatisticsRepositoryImpl struct{}

func NewStatisticsRepository() StatisticsRepository {
	return &StatisticsRepositoryImpl{}
}

func (r *StatisticsRepositoryImpl) GetPlatformCounts(db *gorm.DB) (*PlatformCounts, error) {
	var counts PlatformCounts

	if err := db.Model(&models.Company{}).Count(&counts.TotalCompanies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Count(&counts.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Job{}).Where("is_active = ?", true).Count(&counts.ActiveJobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.SupportOrganization{}).Where("is_active = ?", true).Count(&counts.ActiveSupportOrgs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Company{}).Where("verified = ?", true).Count(&counts.VerifiedCompanies).Error; err != nil {
		return nil, err
	}

	// Критичный отзыв: хотя бы одна оценка <= 2 (OR, а не AND)
	err := db.Model(&models.Review{}).
		Where("rating_work_conditions <= ? OR rating_pay <= ? OR rating_treatment <= ? OR rating_safety <= ?", 2, 2, 2, 2).
		Count(&counts.CriticalReviews).Error
	if err != nil {
		return nil, err
	}

	var avgRating, avgTrust sql.NullFloat64
	row := db.Model(&models.Company{}).
		Select("AVG(overall_rating), AVG(trust_score)").
		Row()
	if err := row.Scan(&avgRating, &avgTrust); err != nil {
		return nil, err
	}
	counts.AverageRating = avgRating.Float64
	counts.AverageTrustScore = avgTrust.Float64

	return &counts, nil
}

func (r *StatisticsRepositoryImpl) GetCompanyCounts(db *gorm.DB, companyID uint, since time.Time) (*CompanyCounts, error) {
	var counts CompanyCounts

	if err := db.Model(&models.Review{}).Where("company_id = ?", companyID).Count(&counts.TotalReviews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Job{}).Where("company_id = ?", companyID).Count(&counts.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Job{}).Where("company_id = ? AND is_active = ?", companyID, true).Count(&counts.ActiveJobs).Error; err != nil {
		return nil, err
	}
	err := db.Model(&models.Review{}).
		Where("company_id = ? AND created_at >= ?", companyID, since.UTC()).
		Count(&counts.RecentReviews).Error
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
