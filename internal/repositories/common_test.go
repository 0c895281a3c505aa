package repositories

import (
	"fmt"
	"testing"

	"korus_backend/database"
	"korus_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repositories_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := database.Open(database.Options{Driver: database.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createRepoCompany(t *testing.T, db *gorm.DB) *models.Company {
	t.Helper()
	company := &models.Company{
		Email:        "repo@test.com",
		PasswordHash: "hash",
		CompanyName:  "Repo Test",
		Industry:     "Logistics",
		Location:     "Seoul",
		Country:      "South Korea",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

// Ноль измененных строк при существующей записи (поведение MySQL) - не ошибка
func TestUpdatedOrMissing(t *testing.T) {
	db := openRepoTestDB(t)
	company := createRepoCompany(t, db)

	assert.NoError(t, updatedOrMissing(db, &models.Company{}, company.ID, 1, ErrCompanyNotFound))
	assert.NoError(t, updatedOrMissing(db, &models.Company{}, company.ID, 0, ErrCompanyNotFound))
	assert.ErrorIs(t, updatedOrMissing(db, &models.Company{}, company.ID+100, 0, ErrCompanyNotFound), ErrCompanyNotFound)
	assert.ErrorIs(t, updatedOrMissing(db, &models.Job{}, 42, 0, ErrJobNotFound), ErrJobNotFound)
}

func TestCompanyRepository_UpdatesWithSameValues(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewCompanyRepository()
	company := createRepoCompany(t, db)

	fields := map[string]interface{}{"company_name": company.CompanyName}
	require.NoError(t, repo.UpdateCompanyFields(db, company.ID, fields))
	require.NoError(t, repo.UpdateCompanyFields(db, company.ID, fields))
	assert.ErrorIs(t, repo.UpdateCompanyFields(db, company.ID+100, fields), ErrCompanyNotFound)

	ratings := CompanyRatings{RatingPay: 4, OverallRating: 4, TrustScore: 40, TotalReviews: 1}
	require.NoError(t, repo.UpdateRatings(db, company.ID, ratings))
	require.NoError(t, repo.UpdateRatings(db, company.ID, ratings))
	assert.ErrorIs(t, repo.UpdateRatings(db, company.ID+100, ratings), ErrCompanyNotFound)

	var stored models.Company
	require.NoError(t, db.First(&stored, company.ID).Error)
	assert.Equal(t, 4.0, stored.RatingPay)
	assert.Equal(t, 1, stored.TotalReviews)
}

func TestJobRepository_UpdateJobFields(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewJobRepository()
	company := createRepoCompany(t, db)

	job := &models.Job{CompanyID: company.ID, Title: "Picker", Description: "Warehouse", Location: "Busan", Salary: "3000"}
	require.NoError(t, repo.CreateJob(db, job))

	require.NoError(t, repo.UpdateJobFields(db, job.ID, map[string]interface{}{"title": "Packer"}))
	assert.ErrorIs(t, repo.UpdateJobFields(db, job.ID+100, map[string]interface{}{"title": "Packer"}), ErrJobNotFound)

	var stored models.Job
	require.NoError(t, db.First(&stored, job.ID).Error)
	assert.Equal(t, "Packer", stored.Title)
}
