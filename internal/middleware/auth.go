package middleware

import (
	"strings"

	"korus_backend/internal/logger"
	"korus_backend/internal/models"
	"korus_backend/internal/services"
	"korus_backend/pkg/apperrors"
	"korus_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - проверка bearer токена. 401 при отсутствии или невалидном
// токене, 403 для неактивной компании. Компания кладется в контекст.
// Требует DBMiddleware выше по цепочке.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			apperrors.HandleError(c, apperrors.ErrCouldNotValidateCredentials)
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		company, err := authService.CurrentCompany(db, strings.TrimSpace(token))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		ctx := logger.WithCompanyID(c.Request.Context(), company.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.CompanyContextKey), company)
		c.Set(string(contextkeys.CompanyIDContextKey), company.ID)
		c.Next()
	}
}

// GetCompany извлекает аутентифицированную компанию из контекста
func GetCompany(c *gin.Context) (*models.Company, bool) {
	val, exists := c.Get(string(contextkeys.CompanyContextKey))
	if !exists {
		return nil, false
	}
	company, ok := val.(*models.Company)
	return company, ok && company != nil
}
