package services

import (
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/repositories"
	"lawhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService resolves session identities to internal user rows.
type UserService interface {
	// ResolveUser maps the auth id carried by a session token to the
	// internal user. A valid token with no matching row means signup
	// stopped halfway; callers get ErrUserNotFound, not Unauthorized.
	ResolveUser(db *gorm.DB, authID string) (*models.User, error)

	// ConfirmEmail flips the confirmation flag for the token's owner.
	ConfirmEmail(db *gorm.DB, token string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ResolveUser(db *gorm.DB, authID string) (*models.User, error) {
	user, err := s.userRepo.FindByAuthID(db, authID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *userService) ConfirmEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByConfirmToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	user.IsConfirmed = true
	user.ConfirmToken = ""
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
