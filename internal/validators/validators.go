package validators

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var hhmm = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// FieldError is a malformed-input error tied to one request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func IsHHMM(s string) bool {
	return hhmm.MatchString(s)
}

// IsDate accepts only zero-padded YYYY-MM-DD calendar dates.
func IsDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsEmail(s string) bool {
	return engine().Var(s, "required,email,max=255") == nil
}

// Check validates a single value against validator tags, e.g. "required,max=100".
func Check(value any, tags string) bool {
	return engine().Var(value, tags) == nil
}
