package mocks

import (
	"context"
	"sync"

	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// MockNavClient is a mock implementation of the navigation API client.
//
// Each method calls the matching function field when it is set. Otherwise a
// default is used: list methods return empty slices and writes succeed.
// Every call is counted by method name.
//
// Example usage:
//
//	mock := &MockNavClient{
//	    UpdateCategoriesOrderFunc: func(ctx context.Context, c []models.Category) error {
//	        return errors.New("boom")
//	    },
//	}
type MockNavClient struct {
	ListCategoriesFunc        func(ctx context.Context) ([]models.Category, error)
	ListSitesFunc             func(ctx context.Context) ([]models.Site, error)
	CreateCategoryFunc        func(ctx context.Context, name string) (models.Category, error)
	RenameCategoryFunc        func(ctx context.Context, id int, name string) error
	UpdateCategoryOrderFunc   func(ctx context.Context, id int, order int) error
	UpdateCategoriesOrderFunc func(ctx context.Context, categories []models.Category) error
	DeleteCategoryFunc        func(ctx context.Context, id int) error
	CreateSiteFunc            func(ctx context.Context, req models.CreateSiteRequest) (models.Site, error)
	UpdateSiteFunc            func(ctx context.Context, req models.UpdateSiteRequest) error
	DeleteSiteFunc            func(ctx context.Context, id int) error
	GetSiteTitleFunc          func(ctx context.Context, id int) (string, error)

	mu    sync.Mutex
	calls map[string]int
}

// Calls returns how many times the named method was called.
func (m *MockNavClient) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockNavClient) track(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// ListCategories returns categories from ListCategoriesFunc or an empty slice.
func (m *MockNavClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.track("ListCategories")
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []models.Category{}, nil
}

// ListSites returns sites from ListSitesFunc or an empty slice.
func (m *MockNavClient) ListSites(ctx context.Context) ([]models.Site, error) {
	m.track("ListSites")
	if m.ListSitesFunc != nil {
		return m.ListSitesFunc(ctx)
	}
	return []models.Site{}, nil
}

// CreateCategory calls CreateCategoryFunc or echoes the name.
func (m *MockNavClient) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	m.track("CreateCategory")
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, name)
	}
	return models.Category{Name: name}, nil
}

// RenameCategory calls RenameCategoryFunc or succeeds.
func (m *MockNavClient) RenameCategory(ctx context.Context, id int, name string) error {
	m.track("RenameCategory")
	if m.RenameCategoryFunc != nil {
		return m.RenameCategoryFunc(ctx, id, name)
	}
	return nil
}

// UpdateCategoryOrder calls UpdateCategoryOrderFunc or succeeds.
func (m *MockNavClient) UpdateCategoryOrder(ctx context.Context, id int, order int) error {
	m.track("UpdateCategoryOrder")
	if m.UpdateCategoryOrderFunc != nil {
		return m.UpdateCategoryOrderFunc(ctx, id, order)
	}
	return nil
}

// UpdateCategoriesOrder calls UpdateCategoriesOrderFunc or succeeds.
func (m *MockNavClient) UpdateCategoriesOrder(ctx context.Context, categories []models.Category) error {
	m.track("UpdateCategoriesOrder")
	if m.UpdateCategoriesOrderFunc != nil {
		return m.UpdateCategoriesOrderFunc(ctx, categories)
	}
	return nil
}

// DeleteCategory calls DeleteCategoryFunc or succeeds.
func (m *MockNavClient) DeleteCategory(ctx context.Context, id int) error {
	m.track("DeleteCategory")
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	return nil
}

// CreateSite calls CreateSiteFunc or echoes the request.
func (m *MockNavClient) CreateSite(ctx context.Context, req models.CreateSiteRequest) (models.Site, error) {
	m.track("CreateSite")
	if m.CreateSiteFunc != nil {
		return m.CreateSiteFunc(ctx, req)
	}
	return models.Site{Name: req.Name, URL: req.URL, CategoryID: req.CategoryID}, nil
}

// UpdateSite calls UpdateSiteFunc or succeeds.
func (m *MockNavClient) UpdateSite(ctx context.Context, req models.UpdateSiteRequest) error {
	m.track("UpdateSite")
	if m.UpdateSiteFunc != nil {
		return m.UpdateSiteFunc(ctx, req)
	}
	return nil
}

// DeleteSite calls DeleteSiteFunc or succeeds.
func (m *MockNavClient) DeleteSite(ctx context.Context, id int) error {
	m.track("DeleteSite")
	if m.DeleteSiteFunc != nil {
		return m.DeleteSiteFunc(ctx, id)
	}
	return nil
}

// GetSiteTitle calls GetSiteTitleFunc or returns an empty title.
func (m *MockNavClient) GetSiteTitle(ctx context.Context, id int) (string, error) {
	m.track("GetSiteTitle")
	if m.GetSiteTitleFunc != nil {
		return m.GetSiteTitleFunc(ctx, id)
	}
	return "", nil
}
