package repositories

import (
	"errors"

	"lawhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("lawyer profile not found")
	ErrProfileAlreadyExists = errors.New("lawyer profile already exists for this user")
)

type LawyerProfileRepository interface {
	Create(db *gorm.DB, profile *models.LawyerProfile) error

	FindByID(db *gorm.DB, id string) (*models.LawyerProfile, error)

	FindByUserID(db *gorm.DB, userID string) (*models.LawyerProfile, error)

	// ListByStatus returns profiles in the given status with the owning
	// user preloaded, oldest first (moderation queue order).
	ListByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.LawyerProfile, error)

	UpdateStatus(db *gorm.DB, id string, status models.ApprovalStatus) error
}

type lawyerProfileRepository struct{}

func NewLawyerProfileRepository() LawyerProfileRepository {
	return &lawyerProfileRepository{}
}

func (r *lawyerProfileRepository) Create(db *gorm.DB, profile *models.LawyerProfile) error {
	var existing models.LawyerProfile
	err := db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		return ErrProfileAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(profile).Error
}

func (r *lawyerProfileRepository) FindByID(db *gorm.DB, id string) (*models.LawyerProfile, error) {
	var profile models.LawyerProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (r *lawyerProfileRepository) FindByUserID(db *gorm.DB, userID string) (*models.LawyerProfile, error) {
	var profile models.LawyerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (r *lawyerProfileRepository) ListByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.LawyerProfile, error) {
	var profiles []models.LawyerProfile
	err := db.Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *lawyerProfileRepository) UpdateStatus(db *gorm.DB, id string, status models.ApprovalStatus) error {
	result := db.Model(&models.LawyerProfile{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
