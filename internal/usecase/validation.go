package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.ResumeS3Path) == "" {
		errors = append(errors, ValidationError{"resume_s3_path", "is required"})
	}

	return errors
}

// ValidateUpdateLeadInput checks only the fields present in the patch.
// Omitted fields are untouched by the update and need no validation.
func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Email != nil && !isValidEmail(*input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.State != nil {
		if _, err := entity.ParseLeadState(*input.State); err != nil {
			errors = append(errors, ValidationError{"state", "must be PENDING or REACHED_OUT"})
		}
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validationFailed(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: strings.TrimSuffix(msg, ", "),
	}
}
