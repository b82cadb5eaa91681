package config

import (
	"github.com/maksimkurb/quick-nav/src/internal/validation"
)

var validate = validation.New("toml")

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors validation.ValidationErrors

	sections := []struct {
		name  string
		value interface{}
		isNil bool
	}{
		{"server", c.Server, c.Server == nil},
		{"reorder", c.Reorder, c.Reorder == nil},
		{"dashboard", c.Dashboard, c.Dashboard == nil},
		{"check", c.Check, c.Check == nil},
	}

	for _, s := range sections {
		if s.isNil {
			validationErrors = append(validationErrors, validation.ValidationError{
				FieldPath: s.name,
				Message:   "configuration must contain '" + s.name + "' section",
			})
			continue
		}
		if err := validate.Struct(s.value); err != nil {
			validationErrors = append(validationErrors, validation.Convert(err, s.name, "")...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}
