package dto

import (
	"time"

	"lawhub_backend/internal/models"
)

// PendingProfileResponse is a moderation queue entry: the profile plus the
// owner's email and a signed URL for the license file.
type PendingProfileResponse struct {
	ID         string    `json:"id"`
	Nickname   string    `json:"nickname"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	LicenseURL string    `json:"license_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewPendingProfileResponse(p *models.LawyerProfile, licenseURL string) *PendingProfileResponse {
	return &PendingProfileResponse{
		ID:         p.ID,
		Nickname:   p.Nickname,
		Email:      p.User.Email,
		Status:     string(p.Status),
		LicenseURL: licenseURL,
		CreatedAt:  p.CreatedAt,
	}
}

// ModerateRequest is the admin decision payload shared by profile and
// review moderation.
type ModerateRequest struct {
	Status string `json:"status" validate:"required,decision"`
}
