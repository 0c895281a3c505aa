package routes

import (
	"korus_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует служебные маршруты и HTTP API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.RootHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.SupportOrgHandler.RegisterRoutes(api)
		appHandlers.StatisticsHandler.RegisterRoutes(api)
	}
}
