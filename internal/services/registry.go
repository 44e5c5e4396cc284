package services

import (
	"lawhub_backend/internal/config"
	"lawhub_backend/internal/email"
	"lawhub_backend/internal/repositories"
	"lawhub_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	UserService          UserService
	AuthService          AuthService
	LawyerService        LawyerService
	ReviewService        ReviewService
	CompanySearchService CompanySearchService
}

// NewServiceContainer wires repositories, storage and mail into services.
func NewServiceContainer(cfg *config.Config, store storage.Storage, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewLawyerProfileRepository()
	reviewRepo := repositories.NewReviewRepository()
	tokenRepo := repositories.NewRefreshTokenRepository()

	return &ServiceContainer{
		UserService:          NewUserService(userRepo),
		AuthService:          NewAuthService(userRepo, profileRepo, tokenRepo, store, mailer),
		LawyerService:        NewLawyerService(profileRepo, store),
		ReviewService:        NewReviewService(reviewRepo, profileRepo, cfg.Gate),
		CompanySearchService: NewCompanySearchService(cfg.Kakao),
	}
}
