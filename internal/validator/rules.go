package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain rules shared by the review and
// moderation DTOs.
func registerCustomRules(v *validator.Validate) error {
	// rating: 1-5 inclusive. Used instead of min/max pairs so the error
	// message reads as one rule.
	if err := v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 1 && n <= 5
	}); err != nil {
		return err
	}

	// decision: the only statuses an admin may set.
	if err := v.RegisterValidation("decision", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "approved" || s == "rejected"
	}); err != nil {
		return err
	}

	return nil
}
