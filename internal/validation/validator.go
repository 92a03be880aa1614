package validation

import (
	"regexp"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/generator"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates the local registration request
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < 8 || len(req.Password) > 72 {
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), 8, 72))
	}

	return errors
}

// ValidateLoginRequest validates the local login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateSubmitInterviewRequest validates the interview submission request
func (v *Validator) ValidateSubmitInterviewRequest(req *dto.SubmitInterviewRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.InterviewID) == "" {
		errors = append(errors, domain.NewMissingFieldError("interviewId"))
	} else if !isValidULID(req.InterviewID) {
		errors = append(errors, domain.NewInvalidFormatError("interviewId", req.InterviewID))
	}

	if len(req.Answers) > generator.QuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(req.Answers), 0, generator.QuestionCount))
	}
	for _, answer := range req.Answers {
		if answer < 0 || answer > 3 {
			errors = append(errors, domain.NewOutOfRangeError("answers", answer, 0, 3))
			break
		}
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidEmail checks the address shape without resolving the domain
func isValidEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	validEmail := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return validEmail.MatchString(s)
}
