package types

import (
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
)

// ErrInvalidRequest is wrapped by every boundary validation failure.
var ErrInvalidRequest = errors.New("invalid request")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// ValidateIDPresent ensures a path identifier is non-empty.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return invalid("%s is required", field)
	}
	return nil
}

// ValidateEmail checks the address is present and well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email is required")
	}
	if !strfmt.IsEmail(email) {
		return invalid("email %q is not a valid address", email)
	}
	return nil
}

func validateNonEmpty(field, v string) error {
	if v == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func (r RegisterRequest) Validate() error {
	if err := validateNonEmpty("name", r.Name); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := validateNonEmpty("password", r.Password); err != nil {
		return err
	}
	return validateNonEmpty("role", r.Role)
}

func (r VerifyOTPRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return validateNonEmpty("otp", r.OTP)
}

func (r LoginRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return validateNonEmpty("password", r.Password)
}

func (r ResendOTPRequest) Validate() error { return ValidateEmail(r.Email) }

func (r AlumniApprovalRequest) Validate() error {
	if err := validateNonEmpty("name", r.Name); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return validateNonEmpty("placementCellId", r.ProfessorID)
}

func (r CreateAssessmentRequest) Validate() error {
	if err := validateNonEmpty("title", r.Title); err != nil {
		return err
	}
	if len(r.Questions) == 0 {
		return invalid("at least one question is required")
	}
	for i, q := range r.Questions {
		if q.Question == "" {
			return invalid("question %d has no text", i)
		}
	}
	return nil
}

func (r SubmitAssessmentRequest) Validate() error {
	if r.Answers == nil {
		return invalid("answers are required")
	}
	return nil
}

func (r SendMessageRequest) Validate() error {
	if err := validateNonEmpty("receiverId", r.ReceiverID); err != nil {
		return err
	}
	return validateNonEmpty("message", r.Message)
}

func (r RoadmapRequest) Validate() error { return validateNonEmpty("domain", r.Domain) }

func (r GenerateAssessmentRequest) Validate() error {
	if err := validateNonEmpty("domain", r.Domain); err != nil {
		return err
	}
	if r.NumQuestions < 0 {
		return invalid("numberOfQuestions must not be negative")
	}
	return nil
}

func (r ExplainRequest) Validate() error {
	if err := validateNonEmpty("question", r.Question); err != nil {
		return err
	}
	return validateNonEmpty("correctAnswer", r.CorrectAnswer)
}

// Validate accepts either a stored assessment (by ID) or inline questions.
func (r EvaluateRequest) Validate() error {
	if r.AssessmentID == "" && len(r.Questions) == 0 {
		return invalid("assessmentId or questions are required")
	}
	return nil
}
