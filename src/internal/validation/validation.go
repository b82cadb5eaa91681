// Package validation wraps go-playground/validator with the custom tags and
// human-readable messages shared by API payloads and the configuration file.
package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // Name of the offending item, e.g. a category name
	FieldPath string // Dot-notation field path, e.g. "server.base_url" or "category_id"
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

// New returns a validator that reports field names from the given struct tag
// ("json" for payloads, "toml" for the config file) and knows the custom tags
// site_url, hostport_or_empty and duration.
func New(tagName string) *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("site_url", validateSiteURL); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("duration", validateDuration); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Convert turns validator errors into ValidationErrors, prefixing field paths
// with fieldPrefix. Errors of any other type produce an empty result.
func Convert(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message(e),
			})
		}
	}

	return validationErrors
}

// message returns a human-readable message for a validation error
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be > %s", e.Param())
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url", "http_url":
		return "must be a valid URL"
	case "site_url":
		return "must be an absolute http(s) URL"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	case "duration":
		return "must be a valid duration (e.g. 10s, 1m)"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Custom validator: absolute URL with http or https scheme and a host
func validateSiteURL(fl validator.FieldLevel) bool {
	return IsSiteURL(fl.Field().String())
}

// IsSiteURL reports whether raw is an absolute http(s) URL with a host.
func IsSiteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := net.SplitHostPort(value)
	return err == nil
}

// Custom validator: Go duration string such as "10s"
func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d >= 0
}
