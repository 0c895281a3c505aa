package integration_test

import (
	"net/http"
	"net/url"
	"testing"

	"korus_backend/internal/models"
	"korus_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":        email,
		"password":     "SecurePass123",
		"company_name": "Global Construction Co.",
		"industry":     "Construction",
		"location":     "Dubai, UAE",
		"country":      "UAE",
	}
}

// TestAuthFlow - регистрация, логин и /auth/me
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	ts := helpers.NewTestServer(t)

	// 2. Регистрация
	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody("contact@globalconstruction.com"))
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBody)

	var registered map[string]interface{}
	helpers.DecodeJSON(t, regBody, &registered)
	assert.Equal(t, "contact@globalconstruction.com", registered["email"])
	assert.Equal(t, true, registered["is_active"])
	assert.Equal(t, float64(0), registered["total_reviews"])
	assert.NotContains(t, regBody, "password")

	// 3. Логин
	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "contact@globalconstruction.com",
		"password": "SecurePass123",
	})
	require.Equal(t, http.StatusOK, logRes.StatusCode, logBody)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		CompanyID   uint   `json:"company_id"`
		CompanyName string `json:"company_name"`
	}
	helpers.DecodeJSON(t, logBody, &token)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "Global Construction Co.", token.CompanyName)

	// 4. Текущая компания
	meRes, meBody := ts.SendRequest(t, http.MethodGet, "/api/auth/me", token.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBody, "contact@globalconstruction.com")
	t.Logf("ME: %s", meBody)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.CreateCompany(t, ts.DB, &models.Company{Email: "duplicate@test.com"}, "")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody("duplicate@test.com"))

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email already registered")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	body := registerBody("weak@test.com")
	body["password"] = "password"

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "password")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.CreateCompany(t, ts.DB, &models.Company{Email: "user@test.com"}, "")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "user@test.com",
		"password": "WrongPass123",
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Bearer", res.Header.Get("WWW-Authenticate"))
	assert.Contains(t, body, "Incorrect email or password")
}

// TestLogin_InactiveCompany - неактивный аккаунт не отличим от неверного пароля
func TestLogin_InactiveCompany(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, &models.Company{Email: "inactive@test.com"}, "")
	helpers.DeactivateCompany(t, ts.DB, company.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "inactive@test.com",
		"password": helpers.DefaultPassword,
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Incorrect email or password")
}

// TestLogin_Form - OAuth2 password flow: email передается в поле username
func TestLogin_Form(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.CreateCompany(t, ts.DB, &models.Company{Email: "form@test.com"}, "")

	res, body := ts.SendForm(t, "/api/auth/login", url.Values{
		"username": {"form@test.com"},
		"password": {helpers.DefaultPassword},
	})

	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "access_token")
}

func TestMe_Unauthorized(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	t.Run("no token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Bearer", res.Header.Get("WWW-Authenticate"))
	})

	t.Run("garbage token", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Could not validate credentials")
	})
}

// TestMe_InactiveCompany - токен выдан до отключения аккаунта
func TestMe_InactiveCompany(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, company := ts.CreateAndLoginCompany(t)
	helpers.DeactivateCompany(t, ts.DB, company.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/me", token, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "inactive")
}

// TestMe_DeletedCompany - токен удаленной компании больше не действует
func TestMe_DeletedCompany(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := ts.CreateAndLoginCompany(t)

	delRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/companies/me", token, nil)
	require.Equal(t, http.StatusNoContent, delRes.StatusCode)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
