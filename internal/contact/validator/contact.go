package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cemdon/pkg/logger"
	"cemdon/pkg/model"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type ContactValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewContactValidator(log *logger.Logger) *ContactValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("contact_phone", validateContactPhone); err != nil {
		log.Fatal("Failed to register 'contact_phone' validator",
			"error", err,
		)
	}

	log.Info("Contact validator initialized successfully")

	return &ContactValidator{
		validate: v,
		logger:   log,
	}
}

// validateContactPhone accepts anything that parses as a phone number,
// local Argentine numbers included.
func validateContactPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}
	num, err := phonenumbers.Parse(phone, "AR")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}

// Validate expects a sanitized message.
func (v *ContactValidator) Validate(msg *model.ContactMessage) error {
	if err := v.validate.Struct(msg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if err := v.validate.Var(msg.Phone, "contact_phone"); err != nil {
		return ValidationErrors{
			ValidationError{
				Field:   "phone",
				Message: "phone must be a valid phone number",
			},
		}
	}

	return nil
}

func (v *ContactValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
