package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"korus_backend/internal/models"
	"korus_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCompanies_PublicView(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.CreateCompany(t, ts.DB, &models.Company{Email: "a@test.com", CompanyName: "Alpha"}, "")
	helpers.CreateCompany(t, ts.DB, &models.Company{Email: "b@test.com", CompanyName: "Beta"}, "")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/companies?limit=1", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var companies []map[string]interface{}
	helpers.DecodeJSON(t, body, &companies)
	require.Len(t, companies, 1)
	assert.Equal(t, "Alpha", companies[0]["company_name"])
	assert.NotContains(t, companies[0], "email")
	assert.NotContains(t, companies[0], "is_active")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/companies?skip=1", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &companies)
	require.Len(t, companies, 1)
	assert.Equal(t, "Beta", companies[0]["company_name"])
}

func TestGetCompany(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{CompanyName: "Pacific Agriculture Ltd."}, "")

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/companies/%d", company.ID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Pacific Agriculture Ltd.")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/companies/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/companies/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestUpdateProfile_Patch - непереданные поля не меняются
func TestUpdateProfile_Patch(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, company := ts.CreateAndLoginCompany(t)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/companies/me", token, map[string]interface{}{
		"location": "Abu Dhabi, UAE",
		"website":  "https://example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated map[string]interface{}
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Abu Dhabi, UAE", updated["location"])
	assert.Equal(t, "https://example.com", updated["website"])
	assert.Equal(t, company.CompanyName, updated["company_name"])
	assert.Equal(t, company.Industry, updated["industry"])

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/companies/me", token, map[string]interface{}{
		"website": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestDeleteAccount_Cascade - удаление компании уносит вакансии и отзывы
func TestDeleteAccount_Cascade(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, company := ts.CreateAndLoginCompany(t)
	other := helpers.CreateCompany(t, ts.DB, &models.Company{}, "")

	job := helpers.CreateJob(t, ts.DB, company.ID, "Construction Worker")
	helpers.CreateJob(t, ts.DB, other.ID, "Hotel Staff")
	helpers.CreateReview(t, ts.DB, &models.Review{
		CompanyID: company.ID, JobID: &job.ID,
		RatingWorkConditions: 3, RatingPay: 3, RatingTreatment: 3, RatingSafety: 3,
	})

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/companies/me", token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Company{}).Where("id = ?", company.ID).Count(&count)
	assert.Zero(t, count)
	ts.DB.Model(&models.Job{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Zero(t, count)
	ts.DB.Model(&models.Review{}).Where("company_id = ?", company.ID).Count(&count)
	assert.Zero(t, count)

	ts.DB.Model(&models.Job{}).Where("company_id = ?", other.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRootAndHealth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "1.0.0")
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	res, body = ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}
