package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"korus_backend/internal/models"
	"korus_backend/internal/services/dto"
	"korus_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSupportOrg(t *testing.T, ts *helpers.TestServer, name string, active bool) *models.SupportOrganization {
	t.Helper()
	org := &models.SupportOrganization{
		Name:      name,
		Type:      models.SupportOrgTypeLegalAid,
		Latitude:  25.2048,
		Longitude: 55.2708,
		Address:   "123 Sheikh Zayed Road, Dubai, UAE",
		Contact:   "+971-4-123-4567",
		Email:     "help@mwrc.ae",
		Services:  []string{"Legal consultation", "Contract review"},
		OpenHours: "Mon-Fri: 9AM-6PM",
		Languages: []string{"English", "Arabic"},
		IsActive:  true,
	}
	require.NoError(t, ts.DB.Create(org).Error)
	if !active {
		require.NoError(t, ts.DB.Model(org).Update("is_active", false).Error)
	}
	return org
}

// TestPlatformStatistics - критичный отзыв: хотя бы одна оценка <= 2
func TestPlatformStatistics(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	a := helpers.CreateCompany(t, ts.DB, &models.Company{Verified: true, OverallRating: 4, TrustScore: 4.5}, "")
	b := helpers.CreateCompany(t, ts.DB, &models.Company{OverallRating: 2, TrustScore: 2}, "")
	helpers.CreateJob(t, ts.DB, a.ID, "Construction Worker")

	helpers.CreateReview(t, ts.DB, &models.Review{CompanyID: a.ID, RatingWorkConditions: 4, RatingPay: 4, RatingTreatment: 4, RatingSafety: 4})
	helpers.CreateReview(t, ts.DB, &models.Review{CompanyID: b.ID, RatingWorkConditions: 5, RatingPay: 1.5, RatingTreatment: 5, RatingSafety: 5})
	helpers.CreateReview(t, ts.DB, &models.Review{CompanyID: b.ID, RatingWorkConditions: 2, RatingPay: 2, RatingTreatment: 2, RatingSafety: 2})
	createSupportOrg(t, ts, "Migrant Workers Rights Center", true)
	createSupportOrg(t, ts, "Closed Center", false)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/statistics/platform", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats dto.PlatformStatistics
	helpers.DecodeJSON(t, body, &stats)
	assert.Equal(t, int64(2), stats.TotalCompanies)
	assert.Equal(t, int64(3), stats.TotalReviews)
	assert.Equal(t, int64(1), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.TotalSupportOrgs)
	assert.Equal(t, int64(1), stats.VerifiedCompanies)
	assert.Equal(t, int64(2), stats.CriticalReviews)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, 3.25, stats.AverageTrustScore)
}

func TestPlatformStatistics_Empty(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/statistics/platform", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats dto.PlatformStatistics
	helpers.DecodeJSON(t, body, &stats)
	assert.Zero(t, stats.TotalCompanies)
	assert.Zero(t, stats.AverageRating)
}

// TestCompanyStatistics - recent_reviews считает только последние 30 дней
func TestCompanyStatistics(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{
		CompanyName:          "Mediterranean Hospitality Group",
		OverallRating:        4.25,
		TrustScore:           4.75,
		RatingWorkConditions: 4.5,
		RatingPay:            4,
		RatingTreatment:      4.5,
		RatingSafety:         4,
	}, "")
	helpers.CreateJob(t, ts.DB, company.ID, "Hotel Staff")
	inactive := helpers.CreateJob(t, ts.DB, company.ID, "Kitchen Staff")
	require.NoError(t, ts.DB.Model(inactive).Update("is_active", false).Error)

	helpers.CreateReview(t, ts.DB, &models.Review{CompanyID: company.ID, RatingWorkConditions: 4, RatingPay: 4, RatingTreatment: 4, RatingSafety: 4})
	old := &models.Review{CompanyID: company.ID, RatingWorkConditions: 4, RatingPay: 4, RatingTreatment: 4, RatingSafety: 4}
	old.CreatedAt = time.Now().UTC().Add(-40 * 24 * time.Hour)
	helpers.CreateReview(t, ts.DB, old)

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/statistics/company/%d", company.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats dto.CompanyStatistics
	helpers.DecodeJSON(t, body, &stats)
	assert.Equal(t, "Mediterranean Hospitality Group", stats.CompanyName)
	assert.Equal(t, int64(2), stats.TotalReviews)
	assert.Equal(t, int64(1), stats.RecentReviews)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, 4.25, stats.AverageRating)
	assert.Equal(t, 4.75, stats.TrustScore)
	assert.Equal(t, 4.5, stats.RatingBreakdown.WorkConditions)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/statistics/company/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	helpers.CreateJob(t, ts.DB, company.ID, "Construction Worker")
	helpers.CreateReview(t, ts.DB, &models.Review{CompanyID: company.ID, RatingWorkConditions: 3, RatingPay: 3, RatingTreatment: 3, RatingSafety: 3})
	createSupportOrg(t, ts, "Migrant Workers Rights Center", true)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var dashboard map[string]interface{}
	helpers.DecodeJSON(t, body, &dashboard)
	assert.Len(t, dashboard["companies"], 1)
	assert.Len(t, dashboard["jobs"], 1)
	assert.Len(t, dashboard["reviews"], 1)
	assert.Len(t, dashboard["support_organizations"], 1)
	assert.NotNil(t, dashboard["statistics"])
}
