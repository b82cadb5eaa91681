package client

import (
	"context"
	"net/http"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// ListSites returns all sites in server order.
// Records failing validation, e.g. a site stored without a name, are logged
// and left out so one bad record does not hide the rest.
func (c *Client) ListSites(ctx context.Context) ([]models.Site, error) {
	sites, err := fetchAndDeserialize[[]models.Site](ctx, c, sitesEndpoint, nil)
	if err != nil {
		return nil, err
	}

	valid, invalid := models.FilterValidSites(sites)
	for _, e := range invalid {
		log.Warnf("Skipping invalid site record %s: %s", e.FieldPath, e.Message)
	}
	return valid, nil
}

// CreateSite creates a site. The returned site carries the server-assigned
// id when the server echoes the created entity.
func (c *Client) CreateSite(ctx context.Context, req models.CreateSiteRequest) (models.Site, error) {
	req.Normalize()
	if err := models.Validate(req); err != nil {
		return models.Site{}, errors.NewValidationError("invalid site", err)
	}

	resp, err := c.do(ctx, http.MethodPost, sitesEndpoint, nil, req)
	if err != nil {
		return models.Site{}, err
	}

	created := models.Site{Name: req.Name, URL: req.URL, CategoryID: req.CategoryID}
	decodeOptional(resp, "POST "+sitesEndpoint, &created)
	return created, nil
}

// UpdateSite replaces every field of a site.
func (c *Client) UpdateSite(ctx context.Context, req models.UpdateSiteRequest) error {
	req.Normalize()
	if err := models.Validate(req); err != nil {
		return errors.NewValidationError("invalid site", err)
	}

	_, err := c.do(ctx, http.MethodPut, sitesEndpoint, nil, req)
	return err
}

// DeleteSite deletes a site by id.
func (c *Client) DeleteSite(ctx context.Context, id int) error {
	if id <= 0 {
		return errors.NewValidationError("invalid site id", nil)
	}

	_, err := c.do(ctx, http.MethodDelete, sitesEndpoint, idQuery(id), nil)
	return err
}

// GetSiteTitle asks the server for the page title of a site.
func (c *Client) GetSiteTitle(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", errors.NewValidationError("invalid site id", nil)
	}

	resp, err := fetchAndDeserialize[models.SiteTitleResponse](ctx, c, siteTitleEndpoint, idQuery(id))
	if err != nil {
		return "", err
	}
	return resp.Title, nil
}
