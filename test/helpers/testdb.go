package helpers

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"korus_backend/database"
	"korus_backend/internal/auth"
	"korus_backend/internal/logger"
	"korus_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const DefaultPassword = "SecurePass123"

var (
	dbCounter  atomic.Int64
	loggerOnce sync.Once
)

// OpenTestDB открывает отдельную in-memory SQLite базу с примененной схемой.
// Каждый тест получает свою базу, поэтому тесты можно запускать параллельно.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loggerOnce.Do(func() { logger.Init("test") })

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbCounter.Add(1))

	db, err := database.Open(database.Options{Driver: database.DriverSQLite, DSN: dsn})
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить миграцию тестовой БД")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateCompany создает компанию напрямую в БД с хешированием пароля.
// Пустые поля заполняются значениями по умолчанию.
func CreateCompany(t *testing.T, db *gorm.DB, company *models.Company, password string) *models.Company {
	t.Helper()

	if password == "" {
		password = DefaultPassword
	}
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	company.PasswordHash = hash

	if company.Email == "" {
		company.Email = fmt.Sprintf("company_%d@test.com", dbCounter.Add(1))
	}
	if company.CompanyName == "" {
		company.CompanyName = "Test Company"
	}
	if company.Industry == "" {
		company.Industry = "Construction"
	}
	if company.Location == "" {
		company.Location = "Dubai, UAE"
	}
	if company.Country == "" {
		company.Country = "UAE"
	}
	company.IsActive = true

	require.NoError(t, db.Create(company).Error, "Не удалось создать компанию %s", company.Email)
	return company
}

// DeactivateCompany отключает аккаунт. Отдельный UPDATE нужен из-за default:true у is_active.
func DeactivateCompany(t *testing.T, db *gorm.DB, companyID uint) {
	t.Helper()
	require.NoError(t, db.Model(&models.Company{}).Where("id = ?", companyID).Update("is_active", false).Error)
}

func CreateJob(t *testing.T, db *gorm.DB, companyID uint, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:   companyID,
		Title:       title,
		Description: "General work including heavy lifting and site preparation.",
		Location:    "Dubai, UAE",
		Salary:      "$800-1200/month",
		IsActive:    true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// CreateReview вставляет отзыв напрямую, минуя пересчет рейтингов
func CreateReview(t *testing.T, db *gorm.DB, review *models.Review) *models.Review {
	t.Helper()
	if review.Comment == "" {
		review.Comment = "Reasonable employer, paid on time most months."
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
