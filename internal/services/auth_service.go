package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"lawhub_backend/internal/auth"
	"lawhub_backend/internal/email"
	"lawhub_backend/internal/logger"
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/repositories"
	"lawhub_backend/internal/services/dto"
	"lawhub_backend/internal/storage"
	"lawhub_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	licenseBucketPrefix = "lawyer-licenses"
	refreshTokenTTL     = 30 * 24 * time.Hour
)

type AuthService interface {
	// Signup runs the full registration: user row, license upload, lawyer
	// profile. Later-step failures roll the earlier steps back so no
	// half-registered account is left behind.
	Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, license io.Reader, filename, contentType string) (*dto.UserResponse, error)

	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)

	RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)

	Logout(db *gorm.DB, refreshToken string) error

	// LogoutAll revokes every refresh token issued to the user.
	LogoutAll(db *gorm.DB, userID string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.LawyerProfileRepository
	tokenRepo   repositories.RefreshTokenRepository
	store       storage.Storage
	mailer      email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.LawyerProfileRepository,
	tokenRepo repositories.RefreshTokenRepository,
	store storage.Storage,
	mailer email.Provider,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		store:       store,
		mailer:      mailer,
	}
}

func (s *authService) Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, license io.Reader, filename, contentType string) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if license == nil {
		return nil, apperrors.NewBadRequestError("License file is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Step 1: user row.
	user := &models.User{
		AuthID:       uuid.NewString(),
		Email:        req.Email,
		Nickname:     req.Nickname,
		PasswordHash: hash,
		ConfirmToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Step 2: license upload. Roll back the user row on failure.
	licensePath := fmt.Sprintf("%s/%s/%s%s", licenseBucketPrefix, user.ID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, licensePath, license, contentType); err != nil {
		s.compensate(ctx, db, user.ID, "")
		return nil, apperrors.UpstreamError(err, "storage")
	}

	// Step 3: lawyer profile, pending until an admin decides.
	profile := &models.LawyerProfile{
		UserID:      user.ID,
		Nickname:    req.Nickname,
		LicenseFile: licensePath,
		Status:      models.StatusPending,
	}
	if err := s.profileRepo.Create(db, profile); err != nil {
		s.compensate(ctx, db, user.ID, licensePath)
		return nil, apperrors.InternalError(err)
	}

	// Confirmation mail is best effort; the account exists either way.
	go func(to, token string) {
		if err := s.mailer.SendConfirmation(context.Background(), to, token); err != nil {
			logger.WithError(err).Warn("failed to send confirmation email", "email", to)
		}
	}(user.Email, user.ConfirmToken)

	return dto.NewUserResponse(user, profile), nil
}

// compensate undoes completed signup steps. Cleanup failures are logged,
// not returned: the caller already has the original error.
func (s *authService) compensate(ctx context.Context, db *gorm.DB, userID, licensePath string) {
	if licensePath != "" {
		if err := s.store.Delete(ctx, licensePath); err != nil {
			logger.WithError(err).Error("signup rollback: failed to delete license file", "path", licensePath)
		}
	}
	if err := s.userRepo.Delete(db, userID); err != nil {
		logger.WithError(err).Error("signup rollback: failed to delete user", "user_id", userID)
	}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	return s.buildAuthResponse(db, user)
}

func (s *authService) RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.tokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		// Sweep every expired token, the presented one included.
		if err := s.tokenRepo.DeleteExpired(db); err != nil {
			logger.WithError(err).Warn("failed to purge expired refresh tokens")
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented token is spent.
	if err := s.tokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(db, user)
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	return s.tokenRepo.DeleteByToken(db, refreshToken)
}

func (s *authService) LogoutAll(db *gorm.DB, userID string) error {
	if err := s.tokenRepo.DeleteByUserID(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) buildAuthResponse(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.AuthID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(db, user.ID)
	if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.NewUserResponse(user, profile),
	}, nil
}
