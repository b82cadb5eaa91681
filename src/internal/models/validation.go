package models

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/quick-nav/src/internal/validation"
)

var validate = validation.New("json")

// Validate checks a request or response value against its validate tags.
// It returns validation.ValidationErrors on failure.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		if errs := validation.Convert(err, "", ""); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// ValidateCategories checks every category of a sequence, e.g. a bulk order update.
func ValidateCategories(categories []Category) error {
	var errs validation.ValidationErrors
	for i, c := range categories {
		if err := validate.Struct(c); err != nil {
			errs = append(errs, validation.Convert(err, fmt.Sprintf("%d", i), c.Name)...)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FilterValidSites splits sites into the ones passing validation and the
// validation errors of the rest. Field paths are prefixed with the index in
// the input slice.
func FilterValidSites(sites []Site) ([]Site, validation.ValidationErrors) {
	var errs validation.ValidationErrors
	valid := make([]Site, 0, len(sites))
	for i, s := range sites {
		if err := validate.Struct(s); err != nil {
			errs = append(errs, validation.Convert(err, fmt.Sprintf("%d", i), s.Name)...)
			continue
		}
		valid = append(valid, s)
	}
	return valid, errs
}

// Normalize trims surrounding whitespace from the request's text fields.
func (r *CreateSiteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.URL = strings.TrimSpace(r.URL)
}

// Normalize trims surrounding whitespace from the request's text fields.
func (r *UpdateSiteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.URL = strings.TrimSpace(r.URL)
}
