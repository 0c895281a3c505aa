package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке. Detail дублирует Message
// для клиентов, которые читают плоское поле.
type ErrorResponse struct {
	Error  *AppError `json:"error"`
	Detail string    `json:"detail"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.Error("server error", "error", err)
		if !h.Debug {
			appErr = appErr.WithDetails(nil)
		}
	}

	if appErr.HTTPCode == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr, Detail: appErr.Message})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug включает подробные детали 5xx ошибок (development)
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
