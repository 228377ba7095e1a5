// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"nestegg/internal/models"
)

// emailRegex matches the basic local@domain.tld shape.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Register installs the custom validators on Gin's binding engine.
// Call once at startup (and in handler test init).
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("investment_kind", validateInvestmentKind)
	_ = v.RegisterValidation("compounding_policy", validateCompoundingPolicy)
}

// validateInvestmentKind accepts the literal kind strings.
func validateInvestmentKind(fl validator.FieldLevel) bool {
	return models.InvestmentKind(fl.Field().String()).Valid()
}

// validateCompoundingPolicy accepts the numeric periods-per-year values.
func validateCompoundingPolicy(fl validator.FieldLevel) bool {
	return models.CompoundingPolicy(fl.Field().Int()).Valid()
}

// IsValidEmail reports whether the email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}
