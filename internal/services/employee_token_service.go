package services

import (
	"errors"
	"strings"
	"time"

	"korus_backend/internal/models"
	"korus_backend/internal/repositories"
	"korus_backend/internal/services/dto"
	"korus_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const visibleTokenSuffix = 4

type EmployeeTokenService interface {
	// Verify - токен существует, активен, не использован и не просрочен
	Verify(db *gorm.DB, token string) (*models.EmployeeToken, bool, error)
	// Consume гасит токен; true, если погасил именно этот вызов. Несуществующий id - no-op.
	Consume(db *gorm.DB, tokenID uint) (bool, error)
	// Issue выпускает новый токен для компании (служебная операция)
	Issue(db *gorm.DB, req *dto.IssueEmployeeTokenRequest) (*dto.IssuedEmployeeToken, error)
}

type employeeTokenService struct {
	tokenRepo   repositories.EmployeeTokenRepository
	companyRepo repositories.CompanyRepository
	now         func() time.Time
}

func NewEmployeeTokenService(
	tokenRepo repositories.EmployeeTokenRepository,
	companyRepo repositories.CompanyRepository,
	now func() time.Time,
) EmployeeTokenService {
	if now == nil {
		now = time.Now
	}
	return &employeeTokenService{
		tokenRepo:   tokenRepo,
		companyRepo: companyRepo,
		now:         now,
	}
}

func (s *employeeTokenService) Verify(db *gorm.DB, token string) (*models.EmployeeToken, bool, error) {
	if token == "" {
		return nil, false, nil
	}

	et, err := s.tokenRepo.FindTokenByValue(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeTokenNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.InternalError(err)
	}

	if !et.IsRedeemable(s.now().UTC()) {
		return nil, false, nil
	}
	return et, true, nil
}

func (s *employeeTokenService) Consume(db *gorm.DB, tokenID uint) (bool, error) {
	consumed, err := s.tokenRepo.MarkUsed(db, tokenID, s.now().UTC())
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return consumed, nil
}

func (s *employeeTokenService) Issue(db *gorm.DB, req *dto.IssueEmployeeTokenRequest) (*dto.IssuedEmployeeToken, error) {
	if _, err := s.companyRepo.FindCompanyByID(db, req.CompanyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	et := &models.EmployeeToken{
		Token:         uuid.NewString(),
		CompanyID:     req.CompanyID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		JobTitle:      req.JobTitle,
		IsActive:      true,
	}
	if req.TTL > 0 {
		expires := s.now().UTC().Add(req.TTL)
		et.ExpiresAt = &expires
	}

	if err := s.tokenRepo.CreateToken(db, et); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.IssuedEmployeeToken{
		ID:        et.ID,
		Token:     et.Token,
		CompanyID: et.CompanyID,
		ExpiresAt: et.ExpiresAt,
	}, nil
}

// RedactToken маскирует все символы, кроме последних четырех
func RedactToken(token string) string {
	runes := []rune(token)
	if len(runes) <= visibleTokenSuffix {
		return strings.Repeat("*", len(runes))
	}
	hidden := len(runes) - visibleTokenSuffix
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}
