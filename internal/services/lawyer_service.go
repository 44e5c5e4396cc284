package services

import (
	"context"
	"time"

	"lawhub_backend/internal/models"
	"lawhub_backend/internal/repositories"
	"lawhub_backend/internal/services/dto"
	"lawhub_backend/internal/storage"
	"lawhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Signed license URLs only need to outlive one moderation session.
const licenseURLExpiry = 15 * time.Minute

// LawyerService handles license verification moderation.
type LawyerService interface {
	// ListPending returns the moderation queue with owner emails and
	// signed license URLs.
	ListPending(ctx context.Context, db *gorm.DB) ([]*dto.PendingProfileResponse, error)

	// Moderate records the admin decision. Profiles move out of pending
	// exactly once; approved and rejected are terminal.
	Moderate(db *gorm.DB, profileID string, status models.ApprovalStatus) error

	// GetByUserID returns the caller's own profile.
	GetByUserID(db *gorm.DB, userID string) (*models.LawyerProfile, error)
}

type lawyerService struct {
	profileRepo repositories.LawyerProfileRepository
	store       storage.Storage
}

func NewLawyerService(profileRepo repositories.LawyerProfileRepository, store storage.Storage) LawyerService {
	return &lawyerService{
		profileRepo: profileRepo,
		store:       store,
	}
}

func (s *lawyerService) ListPending(ctx context.Context, db *gorm.DB) ([]*dto.PendingProfileResponse, error) {
	profiles, err := s.profileRepo.ListByStatus(db, models.StatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]*dto.PendingProfileResponse, 0, len(profiles))
	for i := range profiles {
		url, err := s.store.GetSignedURL(ctx, profiles[i].LicenseFile, licenseURLExpiry)
		if err != nil {
			return nil, apperrors.UpstreamError(err, "storage")
		}
		resp = append(resp, dto.NewPendingProfileResponse(&profiles[i], url))
	}

	return resp, nil
}

func (s *lawyerService) Moderate(db *gorm.DB, profileID string, status models.ApprovalStatus) error {
	if !status.IsDecision() {
		return apperrors.ErrInvalidStatus("profile", "Status must be 'approved' or 'rejected'")
	}

	profile, err := s.profileRepo.FindByID(db, profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if profile.Status != models.StatusPending {
		return apperrors.ErrInvalidStatus("profile", "Profile has already been moderated")
	}

	if err := s.profileRepo.UpdateStatus(db, profileID, status); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *lawyerService) GetByUserID(db *gorm.DB, userID string) (*models.LawyerProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}
