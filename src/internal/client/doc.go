// Package client provides a client for the quick-nav REST API.
//
// Every method maps one CRUD intent to exactly one HTTP request against a
// fixed set of endpoints under /api. A request succeeds when the response
// status is 2xx. The client never retries.
//
// # Endpoints
//
//	GET    /api/categories          list categories (ordered)
//	POST   /api/categories          create category {name}
//	PUT    /api/categories          rename {id,name} or reorder one {id,order}
//	PUT    /api/categories/order    persist the whole ordered sequence
//	DELETE /api/categories?id=N     delete category (server cascades its sites)
//	GET    /api/sites               list sites
//	POST   /api/sites               create site {name,url,category_id}
//	PUT    /api/sites               update site {id,name,url,category_id}
//	DELETE /api/sites?id=N          delete site
//	GET    /api/sites/title?id=N    page title of a site
//
// # Errors
//
// Failures are returned as *errors.Error values with one of three codes:
// TRANSPORT_ERROR (request did not complete), STATUS_ERROR (non-2xx, the
// status is available through errors.StatusCode) and DECODE_ERROR (malformed
// JSON). Request bodies that fail schema validation are rejected with
// VALIDATION_ERROR before anything is sent.
//
// # Example Usage
//
//	c := client.New("http://localhost:8080", nil)
//	categories, err := c.ListCategories(ctx)
//	if err != nil {
//	    log.Errorf("Failed to load categories: %v", err)
//	}
package client
