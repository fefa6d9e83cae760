// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	analyticsDomain "github.com/allisson/journalite/internal/analytics/domain"
	apperrors "github.com/allisson/journalite/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// KnownMood validates that a mood name appears in the polarity lexicon.
// The empty string is accepted so entries without a mood pass through.
var KnownMood = validation.NewStringRuleWithError(
	func(s string) bool {
		if s == "" {
			return true
		}
		_, ok := analyticsDomain.MoodPolarity[s]
		return ok
	},
	validation.NewError("validation_known_mood", "must be a recognized mood"),
)
