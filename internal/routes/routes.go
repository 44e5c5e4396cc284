package routes

import (
	"lawhub_backend/internal/handlers"
	"lawhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API and the gated browser pages.
func RegisterRoutes(
	r *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sc *services.ServiceContainer,
) {
	api := r.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, sc.UserService)
		appHandlers.ReviewHandler.RegisterRoutes(api, sc.UserService)
		appHandlers.AdminHandler.RegisterRoutes(api, sc.UserService)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api, sc.UserService)
	}

	RegisterPageRoutes(r, appHandlers.PageHandler, sc)
}
