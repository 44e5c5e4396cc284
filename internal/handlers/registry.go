package handlers

import (
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/storage"
	"lawhub_backend/internal/validator"
)

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ReviewHandler  *ReviewHandler
	AdminHandler   *AdminHandler
	CompanyHandler *CompanyHandler
	FileHandler    *FileHandler
	PageHandler    *PageHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator, store storage.Storage) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService, sc.UserService),
		ReviewHandler:  NewReviewHandler(base, sc.ReviewService),
		AdminHandler:   NewAdminHandler(base, sc.LawyerService, sc.ReviewService),
		CompanyHandler: NewCompanyHandler(base, sc.CompanySearchService),
		FileHandler:    NewFileHandler(base, store),
		PageHandler:    NewPageHandler(base, sc.ReviewService, sc.LawyerService),
	}
}
