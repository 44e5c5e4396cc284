package services

import (
	"sort"
	"time"

	"lawhub_backend/internal/config"
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/repositories"
	"lawhub_backend/internal/services/dto"
	"lawhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ReviewService owns the review lifecycle for both review types:
// submit (pending) -> moderate (approved|rejected) -> revise (back to
// pending, rejected reviews only).
type ReviewService interface {
	SubmitCompany(db *gorm.DB, userID string, req *dto.CompanyReviewRequest) (*models.CompanyReview, error)
	SubmitInterview(db *gorm.DB, userID string, req *dto.InterviewReviewRequest) (*models.InterviewReview, error)

	ReviseCompany(db *gorm.DB, userID, reviewID string, req *dto.CompanyReviewRequest) (*models.CompanyReview, error)
	ReviseInterview(db *gorm.DB, userID, reviewID string, req *dto.InterviewReviewRequest) (*models.InterviewReview, error)

	// Moderate is idempotent: setting a review to its current status
	// succeeds without touching the row.
	Moderate(db *gorm.DB, reviewType models.ReviewType, reviewID string, status models.ApprovalStatus) error

	ListMy(db *gorm.DB, userID string) (*dto.MyReviewsResponse, error)
	ListPublicCompany(db *gorm.DB) ([]models.CompanyReview, error)
	ListPublicInterview(db *gorm.DB) ([]models.InterviewReview, error)
	ListAllForModeration(db *gorm.DB) ([]*dto.ModerationReviewResponse, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.LawyerProfileRepository
	gate        config.GateConfig
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.LawyerProfileRepository,
	gate config.GateConfig,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		gate:        gate,
	}
}

// requireApprovedProfile enforces the license gate for a review type.
func (s *reviewService) requireApprovedProfile(db *gorm.DB, userID string, reviewType models.ReviewType) error {
	required := s.gate.CompanyRequiresApproval
	if reviewType == models.ReviewTypeInterview {
		required = s.gate.InterviewRequiresApproval
	}
	if !required {
		return nil
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotApproved
		}
		return apperrors.InternalError(err)
	}

	if profile.Status != models.StatusApproved {
		return apperrors.ErrProfileNotApproved
	}

	return nil
}

func (s *reviewService) SubmitCompany(db *gorm.DB, userID string, req *dto.CompanyReviewRequest) (*models.CompanyReview, error) {
	if err := s.requireApprovedProfile(db, userID, models.ReviewTypeCompany); err != nil {
		return nil, err
	}

	review := &models.CompanyReview{
		UserID: userID,
		Status: models.StatusPending,
	}
	req.Apply(review)

	if err := s.reviewRepo.CreateCompany(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *reviewService) SubmitInterview(db *gorm.DB, userID string, req *dto.InterviewReviewRequest) (*models.InterviewReview, error) {
	if err := s.requireApprovedProfile(db, userID, models.ReviewTypeInterview); err != nil {
		return nil, err
	}

	review := &models.InterviewReview{
		UserID: userID,
		Status: models.StatusPending,
	}
	req.Apply(review)

	if err := s.reviewRepo.CreateInterview(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *reviewService) ReviseCompany(db *gorm.DB, userID, reviewID string, req *dto.CompanyReviewRequest) (*models.CompanyReview, error) {
	review, err := s.reviewRepo.FindCompanyByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if review.UserID != userID {
		return nil, apperrors.ErrNotReviewOwner
	}
	if review.Status != models.StatusRejected {
		return nil, apperrors.ErrReviewNotRevisable
	}

	// A revised review re-enters moderation from the top.
	req.Apply(review)
	review.Status = models.StatusPending

	if err := s.reviewRepo.UpdateCompany(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *reviewService) ReviseInterview(db *gorm.DB, userID, reviewID string, req *dto.InterviewReviewRequest) (*models.InterviewReview, error) {
	review, err := s.reviewRepo.FindInterviewByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if review.UserID != userID {
		return nil, apperrors.ErrNotReviewOwner
	}
	if review.Status != models.StatusRejected {
		return nil, apperrors.ErrReviewNotRevisable
	}

	req.Apply(review)
	review.Status = models.StatusPending

	if err := s.reviewRepo.UpdateInterview(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *reviewService) Moderate(db *gorm.DB, reviewType models.ReviewType, reviewID string, status models.ApprovalStatus) error {
	if !status.IsDecision() {
		return apperrors.ErrInvalidStatus("review", "Status must be 'approved' or 'rejected'")
	}

	switch reviewType {
	case models.ReviewTypeCompany:
		review, err := s.reviewRepo.FindCompanyByID(db, reviewID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		if review.Status == status {
			return nil
		}
		if err := s.reviewRepo.UpdateCompanyStatus(db, reviewID, status); err != nil {
			return apperrors.InternalError(err)
		}
	case models.ReviewTypeInterview:
		review, err := s.reviewRepo.FindInterviewByID(db, reviewID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		if review.Status == status {
			return nil
		}
		if err := s.reviewRepo.UpdateInterviewStatus(db, reviewID, status); err != nil {
			return apperrors.InternalError(err)
		}
	default:
		return apperrors.ErrInvalidOperation("review", "Unknown review type")
	}

	return nil
}

func (s *reviewService) ListMy(db *gorm.DB, userID string) (*dto.MyReviewsResponse, error) {
	company, err := s.reviewRepo.ListCompanyByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	interview, err := s.reviewRepo.ListInterviewByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MyReviewsResponse{
		CompanyReviews:   company,
		InterviewReviews: interview,
	}, nil
}

func (s *reviewService) ListPublicCompany(db *gorm.DB) ([]models.CompanyReview, error) {
	reviews, err := s.reviewRepo.ListCompanyByStatus(db, models.StatusApproved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return reviews, nil
}

func (s *reviewService) ListPublicInterview(db *gorm.DB) ([]models.InterviewReview, error) {
	reviews, err := s.reviewRepo.ListInterviewByStatus(db, models.StatusApproved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return reviews, nil
}

// ListAllForModeration merges both review tables newest first for the admin
// board.
func (s *reviewService) ListAllForModeration(db *gorm.DB) ([]*dto.ModerationReviewResponse, error) {
	company, err := s.reviewRepo.ListAllCompany(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	interview, err := s.reviewRepo.ListAllInterview(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]*dto.ModerationReviewResponse, 0, len(company)+len(interview))
	for i := range company {
		entries = append(entries, &dto.ModerationReviewResponse{
			Type:        models.ReviewTypeCompany,
			AuthorEmail: company[i].User.Email,
			Company:     &company[i],
		})
	}
	for i := range interview {
		entries = append(entries, &dto.ModerationReviewResponse{
			Type:        models.ReviewTypeInterview,
			AuthorEmail: interview[i].User.Email,
			Interview:   &interview[i],
		})
	}

	createdAt := func(e *dto.ModerationReviewResponse) time.Time {
		if e.Company != nil {
			return e.Company.CreatedAt
		}
		return e.Interview.CreatedAt
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return createdAt(entries[i]).After(createdAt(entries[j]))
	})

	return entries, nil
}
