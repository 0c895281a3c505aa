package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services"
	"korus_backend/internal/services/dto"
	"korus_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func issueEmployeeToken(t *testing.T, db *gorm.DB, companyID uint) string {
	t.Helper()
	svc := services.NewEmployeeTokenService(
		repositories.NewEmployeeTokenRepository(),
		repositories.NewCompanyRepository(),
		nil,
	)
	issued, err := svc.Issue(db, &dto.IssueEmployeeTokenRequest{CompanyID: companyID})
	require.NoError(t, err)
	return issued.Token
}

func reviewBody(companyID uint, work, pay, treatment, safety float64) map[string]interface{} {
	return map[string]interface{}{
		"company_id":             companyID,
		"rating_work_conditions": work,
		"rating_pay":             pay,
		"rating_treatment":       treatment,
		"rating_safety":          safety,
		"comment":                "Long hours but the pay arrived on time every month.",
	}
}

func loadCompany(t *testing.T, db *gorm.DB, id uint) models.Company {
	t.Helper()
	var company models.Company
	require.NoError(t, db.First(&company, id).Error)
	return company
}

// TestCreateReview_VerifiedAndRatings - токен гасится один раз, рейтинги пересчитываются
func TestCreateReview_VerifiedAndRatings(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	employeeToken := issueEmployeeToken(t, ts.DB, company.ID)

	// 1. Верифицированный отзыв
	body := reviewBody(company.ID, 4, 4, 4, 4)
	body["employee_token"] = employeeToken
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var first dto.ReviewResponse
	helpers.DecodeJSON(t, resBody, &first)
	assert.True(t, first.VerifiedEmployee)
	assert.True(t, first.IsAnonymous, "по умолчанию отзыв анонимный")
	assert.NotContains(t, resBody, employeeToken)

	stored := loadCompany(t, ts.DB, company.ID)
	assert.Equal(t, 1, stored.TotalReviews)
	assert.Equal(t, 4.0, stored.OverallRating)
	assert.Equal(t, 4.5, stored.TrustScore)

	// 2. Повторное использование токена: отзыв принимается, но без верификации
	body = reviewBody(company.ID, 2, 3, 4, 5)
	body["employee_token"] = employeeToken
	body["is_anonymous"] = false
	res, resBody = ts.SendRequest(t, http.MethodPost, "/api/reviews", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var second dto.ReviewResponse
	helpers.DecodeJSON(t, resBody, &second)
	assert.False(t, second.VerifiedEmployee)
	assert.False(t, second.IsAnonymous)

	stored = loadCompany(t, ts.DB, company.ID)
	assert.Equal(t, 2, stored.TotalReviews)
	assert.Equal(t, 3.0, stored.RatingWorkConditions)
	assert.Equal(t, 3.5, stored.RatingPay)
	assert.Equal(t, 4.0, stored.RatingTreatment)
	assert.Equal(t, 4.5, stored.RatingSafety)
	assert.Equal(t, 3.75, stored.OverallRating)
	assert.Equal(t, 4.0, stored.TrustScore)

	// Замаскирован весь токен, кроме последних четырех символов
	var review models.Review
	require.NoError(t, ts.DB.First(&review, first.ID).Error)
	require.NotNil(t, review.EmployeeToken)
	assert.Equal(t, services.RedactToken(employeeToken), *review.EmployeeToken)
}

// TestCreateReview_ForeignToken - токен другой компании не верифицирует и не гасится
func TestCreateReview_ForeignToken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	other := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	foreignToken := issueEmployeeToken(t, ts.DB, other.ID)

	body := reviewBody(company.ID, 3, 3, 3, 3)
	body["employee_token"] = foreignToken
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)
	assert.Contains(t, resBody, `"verified_employee":false`)

	var et models.EmployeeToken
	require.NoError(t, ts.DB.Where("token = ?", foreignToken).First(&et).Error)
	assert.False(t, et.IsUsed)
}

func TestCreateReview_Errors(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	other := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	foreignJob := helpers.CreateJob(t, ts.DB, other.ID, "Hotel Staff")

	t.Run("unknown company", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", reviewBody(9999, 3, 3, 3, 3))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("job of another company", func(t *testing.T) {
		body := reviewBody(company.ID, 3, 3, 3, 3)
		body["job_id"] = foreignJob.ID
		res, resBody := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, resBody, "Job does not belong")
	})

	t.Run("rating out of range", func(t *testing.T) {
		res, resBody := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", reviewBody(company.ID, 5.5, 3, 3, 3))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, resBody, "rating_work_conditions")
	})

	t.Run("short comment", func(t *testing.T) {
		body := reviewBody(company.ID, 3, 3, 3, 3)
		body["comment"] = "bad"
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	var count int64
	ts.DB.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
	assert.Zero(t, loadCompany(t, ts.DB, company.ID).TotalReviews)
}

func TestListAndHelpfulReviews(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	a := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")
	b := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")

	for _, id := range []uint{a.ID, b.ID, b.ID} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/reviews", "", reviewBody(id, 3, 3, 3, 3))
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/reviews?company_id=%d", b.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var reviews []dto.ReviewResponse
	helpers.DecodeJSON(t, body, &reviews)
	require.Len(t, reviews, 2)

	path := fmt.Sprintf("/api/reviews/%d/helpful", reviews[0].ID)
	ts.SendRequest(t, http.MethodPost, path, "", nil)
	res, body = ts.SendRequest(t, http.MethodPost, path, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var marked dto.ReviewResponse
	helpers.DecodeJSON(t, body, &marked)
	assert.Equal(t, 2, marked.HelpfulCount)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/reviews/9999/helpful", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/reviews/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
