package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"lumina/models"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("usertype", validateUserType)
	v.RegisterValidation("modality", validateModality)
	v.RegisterValidation("level", validateLevel)
	v.RegisterValidation("birthdate", validateBirthDate)
	v.RegisterValidation("strongpassword", validateStrongPassword)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "usertype":
		return fmt.Sprintf("%s must be one of: estudiante, tutor, ambos", field)
	case "modality":
		return fmt.Sprintf("%s must be one of: En línea, Presencial", field)
	case "level":
		return fmt.Sprintf("%s must be one of: Básico, Intermedio, Avanzado", field)
	case "birthdate":
		return fmt.Sprintf("%s must be in DD/MM/YYYY format", field)
	case "strongpassword":
		return fmt.Sprintf("%s must be 6+ characters with an uppercase letter and a digit", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

func validateUserType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.UserTypeStudent, models.UserTypeTutor, models.UserTypeBoth:
		return true
	}
	return false
}

func validateModality(fl validator.FieldLevel) bool {
	m := fl.Field().String()
	return m == models.ModalityOnline || m == models.ModalityInPerson
}

func validateLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Básico", "Intermedio", "Avanzado":
		return true
	}
	return false
}

// validateBirthDate checks DD/MM/YYYY, the format the registration form
// produces. It does not check calendar validity.
func validateBirthDate(fl validator.FieldLevel) bool {
	datePattern := regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	return datePattern.MatchString(fl.Field().String())
}

// validateStrongPassword requires 6+ characters, at least one uppercase
// letter and at least one digit.
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 6 {
		return false
	}
	hasUpper := strings.IndexFunc(password, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
	hasDigit := strings.IndexFunc(password, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) >= 0
	return hasUpper && hasDigit
}
