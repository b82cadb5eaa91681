package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// ListCategories returns all categories sorted by their order.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := fetchAndDeserialize[[]models.Category](ctx, c, categoriesEndpoint, nil)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateCategories(categories); err != nil {
		return nil, errors.NewDecodeError("GET "+categoriesEndpoint, err)
	}

	// The server sends null instead of [] when there are no categories.
	if categories == nil {
		categories = []models.Category{}
	}
	models.SortCategories(categories)

	return categories, nil
}

// CreateCategory creates a category and returns it as echoed by the server.
//
// The server assigns the id and appends the category at the end of the order.
// If the 2xx response carries no usable body, a category with only Name set
// is returned.
func (c *Client) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	req := models.CreateCategoryRequest{Name: name}
	if err := models.Validate(req); err != nil {
		return models.Category{}, errors.NewValidationError("invalid category", err)
	}

	resp, err := c.do(ctx, http.MethodPost, categoriesEndpoint, nil, req)
	if err != nil {
		return models.Category{}, err
	}

	created := models.Category{Name: name}
	decodeOptional(resp, "POST "+categoriesEndpoint, &created)
	return created, nil
}

// RenameCategory changes a category's name. Its order is left untouched.
func (c *Client) RenameCategory(ctx context.Context, id int, name string) error {
	req := models.RenameCategoryRequest{ID: id, Name: name}
	if err := models.Validate(req); err != nil {
		return errors.NewValidationError("invalid category", err)
	}

	_, err := c.do(ctx, http.MethodPut, categoriesEndpoint, nil, req)
	return err
}

// UpdateCategoryOrder sets the order of a single category.
//
// Deprecated: sibling orders are only kept consistent if the server shifts
// them itself. Use UpdateCategoriesOrder.
func (c *Client) UpdateCategoryOrder(ctx context.Context, id int, order int) error {
	req := models.ReorderCategoryRequest{ID: id, Order: order}
	if err := models.Validate(req); err != nil {
		return errors.NewValidationError("invalid category order", err)
	}

	_, err := c.do(ctx, http.MethodPut, categoriesEndpoint, nil, req)
	return err
}

// UpdateCategoriesOrder persists the full ordered sequence in one request.
// The server stores the given order values verbatim. From the client's point
// of view the update is all-or-nothing.
func (c *Client) UpdateCategoriesOrder(ctx context.Context, categories []models.Category) error {
	if err := models.ValidateCategories(categories); err != nil {
		return errors.NewValidationError("invalid category sequence", err)
	}

	payload := categories
	if payload == nil {
		payload = []models.Category{}
	}

	_, err := c.do(ctx, http.MethodPut, categoriesOrderEndpoint, nil, payload)
	return err
}

// DeleteCategory deletes a category by id. The server cascades or orphans
// its sites; callers must refresh sites to reflect that.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.NewValidationError("invalid category id", nil)
	}

	_, err := c.do(ctx, http.MethodDelete, categoriesEndpoint, idQuery(id), nil)
	return err
}

// decodeOptional decodes a 2xx body into out when there is one. A malformed
// body does not turn a successful write into a failure.
func decodeOptional(resp *response, op string, out interface{}) {
	if len(resp.body) == 0 {
		return
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		log.Warnf("%s succeeded with an unreadable body: %v", op, err)
	}
}
