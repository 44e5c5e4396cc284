package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingPayload struct {
	CompanyName   string `json:"company_name" validate:"required"`
	OverallRating int    `json:"overall_rating" validate:"rating"`
	SalaryType    string `json:"salary_type" validate:"omitempty,oneof=연봉 월급"`
}

type decisionPayload struct {
	Status string `json:"status" validate:"required,decision"`
}

func TestRatingOutOfRange(t *testing.T) {
	v := New()

	err := v.Validate(&ratingPayload{CompanyName: "Kim & Partners", OverallRating: 6})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Errors are keyed by json tag names.
	assert.Contains(t, vErr.Errors, "overall_rating")
	assert.Equal(t, "Rating must be between 1 and 5", vErr.Errors["overall_rating"])
}

func TestRatingBounds(t *testing.T) {
	v := New()

	for _, rating := range []int{1, 3, 5} {
		assert.NoError(t, v.Validate(&ratingPayload{CompanyName: "x", OverallRating: rating}))
	}
	for _, rating := range []int{0, -1, 6} {
		assert.Error(t, v.Validate(&ratingPayload{CompanyName: "x", OverallRating: rating}))
	}
}

func TestRequiredUsesJSONFieldName(t *testing.T) {
	v := New()

	err := v.Validate(&ratingPayload{OverallRating: 3})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "company_name")
}

func TestSalaryTypeEnum(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&ratingPayload{CompanyName: "x", OverallRating: 3, SalaryType: "연봉"}))
	assert.NoError(t, v.Validate(&ratingPayload{CompanyName: "x", OverallRating: 3, SalaryType: "월급"}))
	assert.Error(t, v.Validate(&ratingPayload{CompanyName: "x", OverallRating: 3, SalaryType: "시급"}))
}

func TestDecisionRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&decisionPayload{Status: "approved"}))
	assert.NoError(t, v.Validate(&decisionPayload{Status: "rejected"}))

	err := v.Validate(&decisionPayload{Status: "pending"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be 'approved' or 'rejected'", vErr.Errors["status"])
}
