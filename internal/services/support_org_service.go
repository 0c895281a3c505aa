package services

import (
	"errors"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SupportOrgService interface {
	ListSupportOrgs(db *gorm.DB, skip, limit int) ([]models.SupportOrganization, error)
	GetSupportOrg(db *gorm.DB, id uint) (*models.SupportOrganization, error)
	// CreateSupportOrg используется при наполнении справочника (cmd/seed)
	CreateSupportOrg(db *gorm.DB, org *models.SupportOrganization) error
}

type supportOrgService struct {
	supportOrgRepo repositories.SupportOrgRepository
}

func NewSupportOrgService(supportOrgRepo repositories.SupportOrgRepository) SupportOrgService {
	return &supportOrgService{supportOrgRepo: supportOrgRepo}
}

func (s *supportOrgService) ListSupportOrgs(db *gorm.DB, skip, limit int) ([]models.SupportOrganization, error) {
	orgs, err := s.supportOrgRepo.FindActiveSupportOrgs(db, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orgs, nil
}

func (s *supportOrgService) GetSupportOrg(db *gorm.DB, id uint) (*models.SupportOrganization, error) {
	org, err := s.supportOrgRepo.FindSupportOrgByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSupportOrgNotFound) {
			return nil, apperrors.ErrSupportOrgNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return org, nil
}

func (s *supportOrgService) CreateSupportOrg(db *gorm.DB, org *models.SupportOrganization) error {
	if err := s.supportOrgRepo.CreateSupportOrg(db, org); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
