package dto

import "lawhub_backend/internal/models"

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	IsAdmin       bool   `json:"is_admin"`
	ProfileStatus string `json:"profile_status,omitempty"`
}

func NewUserResponse(user *models.User, profile *models.LawyerProfile) *UserResponse {
	resp := &UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		IsAdmin:  user.IsAdmin,
	}
	if profile != nil {
		resp.ProfileStatus = string(profile.Status)
	}
	return resp
}
