package models

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameCategoryRequest is the body of PUT /api/categories when renaming.
type RenameCategoryRequest struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
}

// ReorderCategoryRequest is the body of PUT /api/categories when changing a
// single category's order.
//
// Deprecated: the server may not renormalize sibling orders. Send the whole
// sequence to PUT /api/categories/order instead.
type ReorderCategoryRequest struct {
	ID    int `json:"id" validate:"gt=0"`
	Order int `json:"order" validate:"min=1"`
}

// CategoryUpdate is the union of the partial PUT /api/categories bodies.
// Field presence selects which attribute is updated.
type CategoryUpdate struct {
	ID    int     `json:"id"`
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// CreateSiteRequest is the body of POST /api/sites.
type CreateSiteRequest struct {
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url" validate:"required,site_url"`
	CategoryID int    `json:"category_id" validate:"gt=0"`
}

// UpdateSiteRequest is the body of PUT /api/sites.
type UpdateSiteRequest struct {
	ID         int    `json:"id" validate:"gt=0"`
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url" validate:"required,site_url"`
	CategoryID int    `json:"category_id" validate:"gt=0"`
}

// SiteTitleResponse is the body returned by GET /api/sites/title.
type SiteTitleResponse struct {
	Title string `json:"title"`
}

// ErrorResponse is the error envelope written by the server on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
