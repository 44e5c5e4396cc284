package routes

import (
	"lawhub_backend/internal/handlers"
	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes mounts the browser routes with their access gates.
// Rule order: admin pages redirect anonymous visitors to /login and
// non-admins home; member pages redirect anonymous visitors to
// /login?next=<route>; the interview form additionally requires an approved
// lawyer profile and denies with a 403 body; everything else is open.
func RegisterPageRoutes(r *gin.Engine, h *handlers.PageHandler, sc *services.ServiceContainer) {
	// Open pages.
	r.GET("/", h.Home)
	r.GET("/login", h.Login)

	// Member pages.
	member := r.Group("/")
	member.Use(middleware.PageAuthGate())
	{
		member.GET("/reviews", h.Reviews)
		member.GET("/reviews/new", h.NewReview)
	}

	// Interview form: session plus approved profile.
	interview := r.Group("/")
	interview.Use(
		middleware.PageAuthGate(),
		middleware.ApprovedProfileGate(sc.UserService, sc.LawyerService),
	)
	{
		interview.GET("/interview-reviews/new", h.NewInterviewReview)
	}

	// Admin pages.
	admin := r.Group("/admin")
	admin.Use(middleware.AdminPageGate(sc.UserService))
	{
		admin.GET("", h.AdminDashboard)
	}
}
