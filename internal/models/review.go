package models

import (
	"gorm.io/datatypes"
)

// CompanyReview is a workplace review submitted by a community member.
// Status starts at pending and is moved by admin moderation; a rejected
// review may be revised by its owner, which returns it to pending.
type CompanyReview struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`

	CompanyName     string                      `gorm:"not null" json:"company_name"`
	LawyerType      string                      `gorm:"not null" json:"lawyer_type"`
	EmploymentTerms string                      `gorm:"not null" json:"employment_terms"`
	GoodThings      datatypes.JSONSlice[string] `json:"good_things"`

	OverallRating   int `gorm:"not null;check:overall_rating >= 1 AND overall_rating <= 5" json:"overall_rating"`
	WorkLifeBalance int `gorm:"not null" json:"work_life_balance"`
	SalaryBenefits  int `gorm:"not null" json:"salary_benefits"`
	CareerGrowth    int `gorm:"not null" json:"career_growth"`
	CultureFit      int `gorm:"not null" json:"culture_fit"`
	Management      int `gorm:"not null" json:"management"`

	Pros               string `json:"pros"`
	Cons               string `json:"cons"`
	AdditionalComments string `json:"additional_comments"`
	OvertimeFrequency  string `gorm:"not null" json:"overtime_frequency"`
	OvertimeComments   string `json:"overtime_comments"`
	YearsOfExperience  *int   `json:"years_of_experience"`
	Salary             *int   `json:"salary"`
	SalaryType         string `json:"salary_type"`
	FreeOpinion        string `json:"free_opinion"`
	HowFound           string `gorm:"not null" json:"how_found"`
	OtherHowFound      string `json:"other_how_found"`

	Status ApprovalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// InterviewReview shares the CompanyReview lifecycle with its own payload.
type InterviewReview struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`

	CompanyName         string `gorm:"not null" json:"company_name"`
	Position            string `gorm:"not null" json:"position"`
	InterviewDate       string `json:"interview_date"`
	InterviewDifficulty int    `gorm:"not null" json:"interview_difficulty"`
	InterviewExperience int    `gorm:"not null" json:"interview_experience"`
	InterviewOutcome    string `gorm:"not null" json:"interview_outcome"`
	InterviewProcess    string `json:"interview_process"`
	InterviewQuestions  string `json:"interview_questions"`
	Advice              string `json:"advice"`
	LawyerType          string `gorm:"not null" json:"lawyer_type"`
	EmploymentTerms     string `gorm:"not null" json:"employment_terms"`

	Status ApprovalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ReviewType distinguishes the two review tables behind a shared lifecycle.
type ReviewType string

const (
	ReviewTypeCompany   ReviewType = "company"
	ReviewTypeInterview ReviewType = "interview"
)
