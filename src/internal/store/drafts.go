package store

import (
	"strings"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/validation"
)

// CategoryDraft is the edit buffer of a category form.
type CategoryDraft struct {
	Name string
}

// Validate reports a validation error when the name is blank.
func (d *CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("category draft is incomplete", validation.ValidationErrors{
			{FieldPath: "name", Message: "is required"},
		})
	}
	return nil
}

// Reset clears the buffer.
func (d *CategoryDraft) Reset() {
	*d = CategoryDraft{}
}

// SiteDraft is the edit buffer of a site form.
type SiteDraft struct {
	Name       string
	URL        string
	CategoryID int
}

// Validate reports a validation error listing every blank field.
func (d *SiteDraft) Validate() error {
	var errs validation.ValidationErrors
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, validation.ValidationError{ItemName: d.URL, FieldPath: "name", Message: "is required"})
	}
	if strings.TrimSpace(d.URL) == "" {
		errs = append(errs, validation.ValidationError{ItemName: d.Name, FieldPath: "url", Message: "is required"})
	}
	if d.CategoryID <= 0 {
		errs = append(errs, validation.ValidationError{ItemName: d.Name, FieldPath: "category_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errors.NewValidationError("site draft is incomplete", errs)
	}
	return nil
}

// Reset clears the buffer.
func (d *SiteDraft) Reset() {
	*d = SiteDraft{}
}
