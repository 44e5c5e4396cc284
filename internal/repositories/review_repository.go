package repositories

import (
	"errors"

	"lawhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository covers both review tables. The two types share the same
// moderation lifecycle but have distinct payloads, so the methods are
// duplicated per type rather than forced through a common interface.
type ReviewRepository interface {
	// Company reviews
	CreateCompany(db *gorm.DB, review *models.CompanyReview) error
	FindCompanyByID(db *gorm.DB, id string) (*models.CompanyReview, error)
	UpdateCompany(db *gorm.DB, review *models.CompanyReview) error
	UpdateCompanyStatus(db *gorm.DB, id string, status models.ApprovalStatus) error
	ListCompanyByUser(db *gorm.DB, userID string) ([]models.CompanyReview, error)
	ListCompanyByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.CompanyReview, error)
	ListAllCompany(db *gorm.DB) ([]models.CompanyReview, error)

	// Interview reviews
	CreateInterview(db *gorm.DB, review *models.InterviewReview) error
	FindInterviewByID(db *gorm.DB, id string) (*models.InterviewReview, error)
	UpdateInterview(db *gorm.DB, review *models.InterviewReview) error
	UpdateInterviewStatus(db *gorm.DB, id string, status models.ApprovalStatus) error
	ListInterviewByUser(db *gorm.DB, userID string) ([]models.InterviewReview, error)
	ListInterviewByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.InterviewReview, error)
	ListAllInterview(db *gorm.DB) ([]models.InterviewReview, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

// Company reviews

func (r *reviewRepository) CreateCompany(db *gorm.DB, review *models.CompanyReview) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindCompanyByID(db *gorm.DB, id string) (*models.CompanyReview, error) {
	var review models.CompanyReview
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) UpdateCompany(db *gorm.DB, review *models.CompanyReview) error {
	return db.Save(review).Error
}

func (r *reviewRepository) UpdateCompanyStatus(db *gorm.DB, id string, status models.ApprovalStatus) error {
	result := db.Model(&models.CompanyReview{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) ListCompanyByUser(db *gorm.DB, userID string) ([]models.CompanyReview, error) {
	var reviews []models.CompanyReview
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListCompanyByStatus orders ascending by creation time so the public feed
// is stable across requests.
func (r *reviewRepository) ListCompanyByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.CompanyReview, error) {
	var reviews []models.CompanyReview
	err := db.Where("status = ?", status).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListAllCompany returns every review newest first with the author
// preloaded, for the moderation board.
func (r *reviewRepository) ListAllCompany(db *gorm.DB) ([]models.CompanyReview, error) {
	var reviews []models.CompanyReview
	err := db.Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// Interview reviews

func (r *reviewRepository) CreateInterview(db *gorm.DB, review *models.InterviewReview) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindInterviewByID(db *gorm.DB, id string) (*models.InterviewReview, error) {
	var review models.InterviewReview
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) UpdateInterview(db *gorm.DB, review *models.InterviewReview) error {
	return db.Save(review).Error
}

func (r *reviewRepository) UpdateInterviewStatus(db *gorm.DB, id string, status models.ApprovalStatus) error {
	result := db.Model(&models.InterviewReview{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) ListInterviewByUser(db *gorm.DB, userID string) ([]models.InterviewReview, error) {
	var reviews []models.InterviewReview
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) ListInterviewByStatus(db *gorm.DB, status models.ApprovalStatus) ([]models.InterviewReview, error) {
	var reviews []models.InterviewReview
	err := db.Where("status = ?", status).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) ListAllInterview(db *gorm.DB) ([]models.InterviewReview, error) {
	var reviews []models.InterviewReview
	err := db.Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
