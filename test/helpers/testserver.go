package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"korus_backend/internal/app"
	"korus_backend/internal/config"
	"korus_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const TestJWTSecret = "my_super_secret_key_for_tests_12345"

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// TestConfig - конфигурация без файла и переменных окружения
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8000
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file::memory:"
	cfg.JWT.Secret = TestJWTSecret
	cfg.JWT.TTLMinutes = 60 * 24
	cfg.JWT.DefaultTTLMinutes = 15
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

// NewTestServer поднимает полный роутер поверх собственной тестовой БД
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := OpenTestDB(t)
	cfg := TestConfig()

	router, err := app.SetupRouter(cfg, db)
	require.NoError(t, err, "Не удалось настроить роутер")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

// SendRequest отправляет JSON-запрос и возвращает ответ с телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "Ошибка создания HTTP-запроса")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendForm отправляет application/x-www-form-urlencoded (OAuth2 password flow)
func (ts *TestServer) SendForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err, "Ошибка создания HTTP-запроса")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")

	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), "Не удалось распарсить JSON: %s", body)
}

// Login логинит компанию через API и возвращает access token
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	DecodeJSON(t, body, &loginResponse)
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")
	return loginResponse.Token
}

// CreateAndLoginCompany создает компанию с уникальным email и логинит ее
func (ts *TestServer) CreateAndLoginCompany(t *testing.T) (string, *models.Company) {
	t.Helper()

	company := CreateCompany(t, ts.DB, &models.Company{}, DefaultPassword)
	token := ts.Login(t, company.Email, DefaultPassword)
	return token, company
}
