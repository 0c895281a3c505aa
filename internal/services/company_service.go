package services

import (
	"errors"

	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	ListCompanies(db *gorm.DB, skip, limit int) ([]*dto.CompanyPublic, error)
	GetCompany(db *gorm.DB, id uint) (*dto.CompanyPublic, error)
	GetProfile(db *gorm.DB, companyID uint) (*dto.CompanyResponse, error)
	UpdateProfile(db *gorm.DB, companyID uint, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	// DeleteAccount удаляет компанию вместе с вакансиями, отзывами и токенами сотрудников
	DeleteAccount(db *gorm.DB, companyID uint) error
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) ListCompanies(db *gorm.DB, skip, limit int) ([]*dto.CompanyPublic, error) {
	companies, err := s.companyRepo.ListCompanies(db, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCompanyPublicList(companies), nil
}

func (s *companyService) GetCompany(db *gorm.DB, id uint) (*dto.CompanyPublic, error) {
	company, err := s.companyRepo.FindCompanyByID(db, id)
	if err != nil {
		return nil, handleCompanyError(err)
	}
	return dto.NewCompanyPublic(company), nil
}

func (s *companyService) GetProfile(db *gorm.DB, companyID uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(db, companyID)
	if err != nil {
		return nil, handleCompanyError(err)
	}
	return dto.NewCompanyResponse(company), nil
}

func (s *companyService) UpdateProfile(db *gorm.DB, companyID uint, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := s.companyRepo.UpdateCompanyFields(db, companyID, req.Fields()); err != nil {
		return nil, handleCompanyError(err)
	}
	return s.GetProfile(db, companyID)
}

func (s *companyService) DeleteAccount(db *gorm.DB, companyID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.companyRepo.DeleteCompany(tx, companyID); err != nil {
		return handleCompanyError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func handleCompanyError(err error) error {
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return apperrors.ErrCompanyNotFound
	}
	return apperrors.InternalError(err)
}
