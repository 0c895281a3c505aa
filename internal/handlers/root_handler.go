package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	apiName    = "Korus API"
	apiVersion = "1.0.0"
)

type RootHandler struct {
	*BaseHandler
}

func NewRootHandler(base *BaseHandler) *RootHandler {
	return &RootHandler{BaseHandler: base}
}

// RegisterRoutes регистрирует служебные маршруты в корне (вне /api)
func (h *RootHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Welcome)
	r.GET("/health", h.Health)
}

func (h *RootHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + apiName,
		"version": apiVersion,
	})
}

// Health проверяет доступность базы данных
func (h *RootHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
