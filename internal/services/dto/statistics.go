package dto

import "korus_backend/internal/models"

type PlatformStatistics struct {
	TotalCompanies    int64   `json:"total_companies"`
	TotalReviews      int64   `json:"total_reviews"`
	TotalJobs         int64   `json:"total_jobs"`
	TotalSupportOrgs  int64   `json:"total_support_orgs"`
	AverageRating     float64 `json:"average_rating"`
	AverageTrustScore float64 `json:"average_trust_score"`
	VerifiedCompanies int64   `json:"verified_companies"`
	CriticalReviews   int64   `json:"critical_reviews"`
}

type RatingBreakdown struct {
	WorkConditions float64 `json:"work_conditions"`
	Pay            float64 `json:"pay"`
	Treatment      float64 `json:"treatment"`
	Safety         float64 `json:"safety"`
}

type CompanyStatistics struct {
	CompanyID       uint            `json:"company_id"`
	CompanyName     string          `json:"company_name"`
	TotalReviews    int64           `json:"total_reviews"`
	TotalJobs       int64           `json:"total_jobs"`
	ActiveJobs      int64           `json:"active_jobs"`
	AverageRating   float64         `json:"average_rating"`
	TrustScore      float64         `json:"trust_score"`
	RatingBreakdown RatingBreakdown `json:"rating_breakdown"`
	RecentReviews   int64           `json:"recent_reviews"`
}

// Dashboard - все данные для главной страницы одним запросом
type Dashboard struct {
	Companies            []*CompanyPublic             `json:"companies"`
	Jobs                 []models.Job                 `json:"jobs"`
	Reviews              []*ReviewResponse            `json:"reviews"`
	SupportOrganizations []models.SupportOrganization `json:"support_organizations"`
	Statistics           *PlatformStatistics          `json:"statistics"`
}
