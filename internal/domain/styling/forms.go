package styling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Pre-submit form validation. The backend remains authoritative (422 responses
// are still handled), but obviously malformed input is rejected locally before
// a request is issued.

// LoginForm carries credentials for the login operation.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterForm carries the registration payload. The client-only fields are
// validated only when Role is client.
type RegisterForm struct {
	Name                 string `validate:"required"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,min=8"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
	Role                 Role   `validate:"required,oneof=client stylist admin"`

	// Client-only extended profile.
	Country  string
	City     string
	BodyType string
	Colors   string // comma-separated
}

var validate = validator.New()

// ValidateLogin checks a login form and returns a human-readable error.
func ValidateLogin(f LoginForm) error {
	return humanize(validate.Struct(f))
}

// ValidateRegister checks a registration form and returns a human-readable error.
func ValidateRegister(f RegisterForm) error {
	return humanize(validate.Struct(f))
}

// humanize converts validator errors into a single joined message.
func humanize(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return field + " must match " + strings.ToLower(fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
