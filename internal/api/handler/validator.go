package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the full, ordered list of field violations so the
// transport layer can render them all at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

var (
	reBrandModel  = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	reLowerHyphen = regexp.MustCompile(`^[a-z-]+$`)
	reEmailChars  = regexp.MustCompile(`^[a-z0-9-@._]+$`)
	reImagePath   = regexp.MustCompile(`^[a-z0-9-/.:]+$`)
	reColorFilter = regexp.MustCompile(`^[a-z&,]+$`)
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the catalog's custom format
// rules registered, ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	patterns := map[string]*regexp.Regexp{
		"brandmodel":  reBrandModel,
		"lowerhyphen": reLowerHyphen,
		"emailchars":  reEmailChars,
		"imagepath":   reImagePath,
		"colorfilter": reColorFilter,
	}
	for tag, re := range patterns {
		re := re
		// the registration func never errors for simple pattern checks
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Validation is exhaustive:
// every violated constraint contributes one message.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &ValidationError{Messages: msgs}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "emailchars":
		return field + " may only contain lowercase letters, digits, and -@._"
	case "brandmodel":
		return field + " may only contain letters, digits, and spaces"
	case "lowerhyphen":
		return field + " may only contain lowercase letters and hyphens"
	case "imagepath":
		return field + " must be a valid image path"
	case "colorfilter":
		return field + " may only contain lowercase letters, commas, and ampersands"
	case "alphanum":
		return field + " may only contain letters and digits"
	case "alpha":
		return field + " may only contain letters"
	case "lowercase":
		return field + " must be lowercase"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
