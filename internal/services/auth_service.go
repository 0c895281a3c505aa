package services

import (
	"errors"

	"korus_backend/internal/auth"
	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.CompanyResponse, error)
	// Authenticate не различает причины отказа: неизвестный email,
	// неверный пароль и неактивный аккаунт дают ErrInvalidCredentials
	Authenticate(db *gorm.DB, email, password string) (*models.Company, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// CurrentCompany разрешает bearer токен в живую активную компанию
	CurrentCompany(db *gorm.DB, token string) (*models.Company, error)
}

type AuthServiceImpl struct {
	companyRepo repositories.CompanyRepository
	tokens      *auth.TokenService
}

func NewAuthService(companyRepo repositories.CompanyRepository, tokens *auth.TokenService) AuthService {
	return &AuthServiceImpl{
		companyRepo: companyRepo,
		tokens:      tokens,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.CompanyResponse, error) {
	if _, err := s.companyRepo.FindCompanyByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		Email:        req.Email,
		PasswordHash: hash,
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
		Location:     req.Location,
		Country:      req.Country,
		Description:  req.Description,
		Website:      req.Website,
		Phone:        req.Phone,
		IsActive:     true,
	}

	if err := s.companyRepo.CreateCompany(db, company); err != nil {
		if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewCompanyResponse(company), nil
}

func (s *AuthServiceImpl) Authenticate(db *gorm.DB, email, password string) (*models.Company, error) {
	company, err := s.companyRepo.FindCompanyByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, company.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !company.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	return company, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	company, err := s.Authenticate(db, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(company.Email, company.ID, s.tokens.AccessTTL())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   dto.TokenTypeBearer,
		CompanyID:   company.ID,
		CompanyName: company.CompanyName,
	}, nil
}

func (s *AuthServiceImpl) CurrentCompany(db *gorm.DB, token string) (*models.Company, error) {
	data, ok := s.tokens.ValidateToken(token)
	if !ok {
		return nil, apperrors.ErrCouldNotValidateCredentials
	}

	company, err := s.companyRepo.FindCompanyByID(db, data.CompanyID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCouldNotValidateCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	// Токен выпущен для другого email (адрес сменился) - не доверяем
	if company.Email != data.Email {
		return nil, apperrors.ErrCouldNotValidateCredentials
	}
	if !company.IsActive {
		return nil, apperrors.ErrInactiveAccount
	}
	return company, nil
}
