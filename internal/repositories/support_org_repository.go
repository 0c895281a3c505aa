package repositories

import (
	"errors"

	"korus_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSupportOrgNotFound = errors.New("support organization not found")

type SupportOrgRepository interface {
	CreateSupportOrg(db *gorm.DB, org *models.SupportOrganization) error
	FindSupportOrgByID(db *gorm.DB, id uint) (*models.SupportOrganization, error)
	FindActiveSupportOrgs(db *gorm.DB, skip, limit int) ([]models.SupportOrganization, error)
}

type SupportOrgRepositoryImpl struct{}

func NewSupportOrgRepository() SupportOrgRepository {
	return &SupportOrgRepositoryImpl{}
}

func (r *SupportOrgRepositoryImpl) CreateSupportOrg(db *gorm.DB, org *models.SupportOrganization) error {
	return db.Create(org).Error
}

func (r *SupportOrgRepositoryImpl) FindSupportOrgByID(db *gorm.DB, id uint) (*models.SupportOrganization, error) {
	var org models.SupportOrganization
	if err := db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupportOrgNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *SupportOrgRepositoryImpl) FindActiveSupportOrgs(db *gorm.DB, skip, limit int) ([]models.SupportOrganization, error) {
	var orgs []models.SupportOrganization
	err := db.Where("is_active = ?", true).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&orgs).Error
	return orgs, err
}
