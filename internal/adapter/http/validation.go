package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var rePublicID = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

// NewValidator registers the hex32 rule used for public application and
// document ids.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return rePublicID.MatchString(fl.Field().String())
	})
	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// messageFor turns a validator tag into a human-readable message.
func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "hex32":
		return "must be 32-char lowercase hex"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return e.Tag() + " validation failed"
	}
}

func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Message: messageFor(e)})
	}
	return out
}
