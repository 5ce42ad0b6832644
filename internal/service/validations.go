package service

import (
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
)

// Package for validation helpers shared by the services
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

// validateStruct runs the tag rules of req and converts the first failing
// field into a user-facing validation error. Messages are keyed by
// "Field.tag" with a plain "Field" fallback.
func validateStruct(req any, messages map[string]string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return errors.New("validation unexpected error: " + err.Error())
	}
	first := vErrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return errorvalues.Validation(msg)
	}
	if msg, ok := messages[first.Field()]; ok {
		return errorvalues.Validation(msg)
	}
	return errorvalues.Validation(first.Field() + " is invalid")
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unparseable date: " + value)
}

// startOfDay normalizes a timestamp to midnight, keeping its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
