package handlers

import (
	"fmt"
	"strconv"

	"korus_backend/internal/logger"
	"korus_backend/internal/middleware"
	"korus_backend/internal/models"
	"korus_backend/internal/validator"
	"korus_backend/pkg/apperrors"
	"korus_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator   *validator.Validator
	requireAuth gin.HandlerFunc
}

// NewBaseHandler: requireAuth - middleware аутентификации компании (middleware.AuthMiddleware)
func NewBaseHandler(v *validator.Validator, requireAuth gin.HandlerFunc) *BaseHandler {
	return &BaseHandler{
		validator:   v,
		requireAuth: requireAuth,
	}
}

// RequireAuth возвращает middleware для защищенных маршрутов
func (h *BaseHandler) RequireAuth() gin.HandlerFunc {
	return h.requireAuth
}

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context.
// Должен вызываться в каждом хендлере, который обращается к сервисам.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 2. Привязка и валидация
// ============================================================================

// BindAndValidate_JSON привязывает тело по Content-Type (JSON или форма) и валидирует
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 3. Обработка ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 4. Аутентифицированная компания
// ============================================================================

func (h *BaseHandler) GetAndAuthorizeCompany(c *gin.Context) (*models.Company, bool) {
	company, ok := middleware.GetCompany(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: company not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrCouldNotValidateCredentials)
		return nil, false
	}
	return company, true
}

// ============================================================================
// 5. Парсинг параметров
// ============================================================================

const (
	defaultLimit = 100
	maxLimit     = 500
)

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseParamID читает положительный целочисленный id из пути
func ParseParamID(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " is not a positive integer")
	}
	return uint(value), nil
}

// ParseOptionalQueryID возвращает nil, если параметр не передан
func ParseOptionalQueryID(c *gin.Context, key string) (*uint, error) {
	valueStr := c.Query(key)
	if valueStr == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return nil, apperrors.NewBadRequestError("Invalid query parameter: " + key + " is not a positive integer")
	}
	id := uint(value)
	return &id, nil
}

// ParsePagination: skip >= 0, limit в (0, maxLimit]
func ParsePagination(c *gin.Context) (skip int, limit int) {
	skip = ParseQueryInt(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}

	limit = ParseQueryInt(c, "limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit
}
