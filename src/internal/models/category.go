package models

import "sort"

// Category is a named, orderable grouping of site links.
type Category struct {
	ID    int    `json:"id" validate:"gt=0"`
	Name  string `json:"name" validate:"required"`
	Order int    `json:"order"`
}

// SortCategories stable-sorts categories by Order in place.
// Ties keep the sequence in which the server returned them.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
}

// CategoryIndex returns the position of the category with the given id, or -1.
func CategoryIndex(categories []Category, id int) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// CategoryByID returns the category with the given id.
func CategoryByID(categories []Category, id int) (Category, bool) {
	if i := CategoryIndex(categories, id); i >= 0 {
		return categories[i], true
	}
	return Category{}, false
}

// CloneCategories returns a copy of the slice. A nil input yields an empty slice.
func CloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
