package dto

import (
	"lawhub_backend/internal/models"

	"gorm.io/datatypes"
)

// CompanyReviewRequest mirrors the review form. Status is intentionally
// absent: the lifecycle is owned by the server.
type CompanyReviewRequest struct {
	CompanyName     string   `json:"company_name" validate:"required"`
	LawyerType      string   `json:"lawyer_type" validate:"required"`
	EmploymentTerms string   `json:"employment_terms" validate:"required"`
	GoodThings      []string `json:"good_things"`

	OverallRating   int `json:"overall_rating" validate:"rating"`
	WorkLifeBalance int `json:"work_life_balance" validate:"rating"`
	SalaryBenefits  int `json:"salary_benefits" validate:"rating"`
	CareerGrowth    int `json:"career_growth" validate:"rating"`
	CultureFit      int `json:"culture_fit" validate:"rating"`
	Management      int `json:"management" validate:"rating"`

	Pros               string `json:"pros"`
	Cons               string `json:"cons"`
	AdditionalComments string `json:"additional_comments"`
	OvertimeFrequency  string `json:"overtime_frequency" validate:"required"`
	OvertimeComments   string `json:"overtime_comments"`
	YearsOfExperience  *int   `json:"years_of_experience"`
	Salary             *int   `json:"salary"`
	SalaryType         string `json:"salary_type" validate:"omitempty,oneof=연봉 월급"`
	FreeOpinion        string `json:"free_opinion"`
	HowFound           string `json:"how_found" validate:"required"`
	OtherHowFound      string `json:"other_how_found"`
}

// Apply copies the payload onto a model. Owner and status are never touched
// here; the service sets them.
func (r *CompanyReviewRequest) Apply(m *models.CompanyReview) {
	m.CompanyName = r.CompanyName
	m.LawyerType = r.LawyerType
	m.EmploymentTerms = r.EmploymentTerms
	m.GoodThings = datatypes.NewJSONSlice(r.GoodThings)
	m.OverallRating = r.OverallRating
	m.WorkLifeBalance = r.WorkLifeBalance
	m.SalaryBenefits = r.SalaryBenefits
	m.CareerGrowth = r.CareerGrowth
	m.CultureFit = r.CultureFit
	m.Management = r.Management
	m.Pros = r.Pros
	m.Cons = r.Cons
	m.AdditionalComments = r.AdditionalComments
	m.OvertimeFrequency = r.OvertimeFrequency
	m.OvertimeComments = r.OvertimeComments
	m.YearsOfExperience = r.YearsOfExperience
	m.Salary = r.Salary
	m.SalaryType = r.SalaryType
	m.FreeOpinion = r.FreeOpinion
	m.HowFound = r.HowFound
	m.OtherHowFound = r.OtherHowFound
}

type InterviewReviewRequest struct {
	CompanyName         string `json:"company_name" validate:"required"`
	Position            string `json:"position" validate:"required"`
	InterviewDate       string `json:"interview_date"`
	InterviewDifficulty int    `json:"interview_difficulty" validate:"rating"`
	InterviewExperience int    `json:"interview_experience" validate:"rating"`
	InterviewOutcome    string `json:"interview_outcome" validate:"required"`
	InterviewProcess    string `json:"interview_process"`
	InterviewQuestions  string `json:"interview_questions"`
	Advice              string `json:"advice"`
	LawyerType          string `json:"lawyer_type" validate:"required"`
	EmploymentTerms     string `json:"employment_terms" validate:"required"`
}

func (r *InterviewReviewRequest) Apply(m *models.InterviewReview) {
	m.CompanyName = r.CompanyName
	m.Position = r.Position
	m.InterviewDate = r.InterviewDate
	m.InterviewDifficulty = r.InterviewDifficulty
	m.InterviewExperience = r.InterviewExperience
	m.InterviewOutcome = r.InterviewOutcome
	m.InterviewProcess = r.InterviewProcess
	m.InterviewQuestions = r.InterviewQuestions
	m.Advice = r.Advice
	m.LawyerType = r.LawyerType
	m.EmploymentTerms = r.EmploymentTerms
}

// MyReviewsResponse groups the caller's reviews for the dashboard. Rejected
// entries are the revise candidates.
type MyReviewsResponse struct {
	CompanyReviews   []models.CompanyReview   `json:"company_reviews"`
	InterviewReviews []models.InterviewReview `json:"interview_reviews"`
}

// ModerationReviewResponse is a moderation board entry with the author email.
type ModerationReviewResponse struct {
	Type        models.ReviewType       `json:"type"`
	AuthorEmail string                  `json:"author_email"`
	Company     *models.CompanyReview   `json:"company,omitempty"`
	Interview   *models.InterviewReview `json:"interview,omitempty"`
}

// CompanySearchResult is one hit from the company name lookup.
type CompanySearchResult struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
}
