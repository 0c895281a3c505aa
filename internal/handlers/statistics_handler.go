package handlers

import (
	"net/http"
	"time"

	"korus_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	*BaseHandler
	statisticsService services.StatisticsService
}

func NewStatisticsHandler(base *BaseHandler, statisticsService services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		BaseHandler:       base,
		statisticsService: statisticsService,
	}
}

func (h *StatisticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)

	stats := rg.Group("/statistics")
	{
		stats.GET("/platform", h.PlatformStatistics)
		stats.GET("/company/:id", h.CompanyStatistics)
	}
}

func (h *StatisticsHandler) PlatformStatistics(c *gin.Context) {
	stats, err := h.statisticsService.PlatformStatistics(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatisticsHandler) CompanyStatistics(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	stats, err := h.statisticsService.CompanyStatistics(h.GetDB(c), id, time.Now().UTC())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Dashboard - компании, вакансии, отзывы, организации и статистика одним ответом
func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.statisticsService.Dashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
