package utils

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate = validator.New()

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// ValidateStruct checks a request struct against its validate tags and
// returns the violations as a flat message list.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid request"}
	}

	var violations []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			violations = append(violations, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "email":
			violations = append(violations, fmt.Sprintf("%s must be a valid email address", fieldErr.Field()))
		default:
			violations = append(violations, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return violations
}

// ValidatePassword checks the password policy and returns every rule the
// candidate breaks: minimum length, at least one upper-case letter, one
// lower-case letter, and one digit.
func ValidatePassword(password string) []string {
	var violations []string

	if len(password) < minPasswordLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		violations = append(violations, "password must contain at least one upper-case letter")
	}
	if !hasLower {
		violations = append(violations, "password must contain at least one lower-case letter")
	}
	if !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}

	return violations
}
