package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	naverrors "github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/mocks"
	"github.com/maksimkurb/quick-nav/src/internal/models"
)

func newTestClient(t *testing.T) (*Client, *mocks.NavServer) {
	t.Helper()

	srv := mocks.NewNavServer()
	ts := srv.Start()
	t.Cleanup(ts.Close)

	return New(ts.URL+"/", nil), srv
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8080/", nil)
	if c.BaseURL() != "http://localhost:8080" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}

func TestListCategories_SortedByOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/categories" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[{"id":2,"name":"News","order":2},{"id":1,"name":"Dev","order":1}]`))
	}))
	defer ts.Close()

	got, err := New(ts.URL, nil).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}

	want := []models.Category{{ID: 1, Name: "Dev", Order: 1}, {ID: 2, Name: "News", Order: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListCategories() mismatch (-want +got):\n%s", diff)
	}
}

func TestListCategories_NullBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer ts.Close()

	got, err := New(ts.URL, nil).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode naverrors.ErrorCode
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"database is locked"}`))
			},
			wantCode: naverrors.ErrCodeStatus,
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"id":1,`))
			},
			wantCode: naverrors.ErrCodeDecode,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantCode: naverrors.ErrCodeDecode,
		},
		{
			name: "schema violation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"id":0,"name":"","order":1}]`))
			},
			wantCode: naverrors.ErrCodeDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := New(ts.URL, nil).ListCategories(context.Background())
			if !naverrors.HasCode(err, tt.wantCode) {
				t.Errorf("Expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url, nil).ListSites(context.Background())
	if !naverrors.HasCode(err, naverrors.ErrCodeTransport) {
		t.Errorf("Expected transport error, got %v", err)
	}
}

func TestListSites_SkipsInvalidRecords(t *testing.T) {
	c, srv := newTestClient(t)
	srv.SeedSite("Go", "https://go.dev", 1)
	srv.SeedSite("", "https://unnamed.test", 1)
	srv.SeedSite("HN", "https://news.ycombinator.com", 2)

	sites, err := c.ListSites(context.Background())
	if err != nil {
		t.Fatalf("ListSites() error = %v", err)
	}

	var names []string
	for _, s := range sites {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"Go", "HN"}, names); diff != "" {
		t.Errorf("ListSites() mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusError_CarriesServerMessage(t *testing.T) {
	c, srv := newTestClient(t)
	srv.FailNext(http.MethodDelete, "/api/categories", http.StatusConflict)

	err := c.DeleteCategory(context.Background(), 1)
	if naverrors.StatusCode(err) != http.StatusConflict {
		t.Fatalf("Expected status 409, got %v", err)
	}

	var se *naverrors.StatusError
	if !errors.As(err, &se) || se.Body != "injected failure for DELETE /api/categories" {
		t.Errorf("Expected server message in status error, got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"error":"plain"}`, "plain"},
		{`{"error":{"code":"not_found","message":"structured"}}`, "structured"},
		{`not json`, "not json"},
		{``, ""},
	}

	for _, tt := range tests {
		if got := errorMessage([]byte(tt.body)); got != tt.want {
			t.Errorf("errorMessage(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestCategoryWrites(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	dev, err := c.CreateCategory(ctx, "Dev")
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	news, err := c.CreateCategory(ctx, "News")
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if dev.ID == 0 || dev.Order != 1 || news.Order != 2 {
		t.Errorf("Unexpected created categories: %+v %+v", dev, news)
	}

	if err := c.RenameCategory(ctx, dev.ID, "Tools"); err != nil {
		t.Fatalf("RenameCategory() error = %v", err)
	}

	reordered := []models.Category{
		{ID: news.ID, Name: "News", Order: 1},
		{ID: dev.ID, Name: "Tools", Order: 2},
	}
	if err := c.UpdateCategoriesOrder(ctx, reordered); err != nil {
		t.Fatalf("UpdateCategoriesOrder() error = %v", err)
	}

	got, err := c.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if diff := cmp.Diff(reordered, got); diff != "" {
		t.Errorf("Categories after writes mismatch (-want +got):\n%s", diff)
	}

	if err := c.DeleteCategory(ctx, news.ID); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if len(srv.Categories()) != 1 {
		t.Errorf("Expected one category left, got %+v", srv.Categories())
	}

	reqs := srv.Requests()
	last := reqs[len(reqs)-1]
	if last.Method != http.MethodDelete || last.Query != fmt.Sprintf("id=%d", news.ID) {
		t.Errorf("Unexpected delete request: %+v", last)
	}
}

func TestRenameCategory_SendsIDAndNameOnly(t *testing.T) {
	c, srv := newTestClient(t)
	cat := srv.SeedCategory("Dev")

	if err := c.RenameCategory(context.Background(), cat.ID, "Tools"); err != nil {
		t.Fatalf("RenameCategory() error = %v", err)
	}

	reqs := srv.Requests()
	var body map[string]interface{}
	if err := json.Unmarshal(reqs[0].Body, &body); err != nil {
		t.Fatalf("Invalid request body: %v", err)
	}
	if _, ok := body["order"]; ok {
		t.Errorf("Rename must not send an order field: %s", reqs[0].Body)
	}
	if body["name"] != "Tools" {
		t.Errorf("Unexpected body: %s", reqs[0].Body)
	}
}

func TestUpdateCategoryOrder_SingleFieldEndpoint(t *testing.T) {
	c, srv := newTestClient(t)
	srv.SeedCategory("A")
	srv.SeedCategory("B")
	third := srv.SeedCategory("C")

	if err := c.UpdateCategoryOrder(context.Background(), third.ID, 1); err != nil {
		t.Fatalf("UpdateCategoryOrder() error = %v", err)
	}

	got := srv.Categories()
	if got[0].ID != third.ID || got[0].Order != 1 {
		t.Errorf("Expected C first, got %+v", got)
	}
	if got[2].Order != 3 {
		t.Errorf("Expected siblings shifted, got %+v", got)
	}
}

func TestValidation_NoRequestSent(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"empty category name", func() error { _, err := c.CreateCategory(ctx, ""); return err }},
		{"rename to empty", func() error { return c.RenameCategory(ctx, 1, "") }},
		{"order below one", func() error { return c.UpdateCategoryOrder(ctx, 1, 0) }},
		{"bulk with bad id", func() error {
			return c.UpdateCategoriesOrder(ctx, []models.Category{{ID: 0, Name: "X", Order: 1}})
		}},
		{"site with relative url", func() error {
			_, err := c.CreateSite(ctx, models.CreateSiteRequest{Name: "X", URL: "x.test", CategoryID: 1})
			return err
		}},
		{"update site without category", func() error {
			return c.UpdateSite(ctx, models.UpdateSiteRequest{ID: 1, Name: "X", URL: "https://x.test"})
		}},
		{"delete category zero", func() error { return c.DeleteCategory(ctx, 0) }},
		{"delete site zero", func() error { return c.DeleteSite(ctx, 0) }},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !naverrors.HasCode(err, naverrors.ErrCodeValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}

	if n := len(srv.Requests()); n != 0 {
		t.Errorf("Expected no requests to be sent, got %d", n)
	}
}

func TestSiteWrites(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()
	dev := srv.SeedCategory("Dev")

	created, err := c.CreateSite(ctx, models.CreateSiteRequest{Name: " X ", URL: "https://x.test", CategoryID: dev.ID})
	if err != nil {
		t.Fatalf("CreateSite() error = %v", err)
	}
	if created.ID == 0 || created.Name != "X" {
		t.Errorf("Unexpected created site: %+v", created)
	}

	sites, err := c.ListSites(ctx)
	if err != nil {
		t.Fatalf("ListSites() error = %v", err)
	}
	want := []models.Site{{ID: created.ID, Name: "X", URL: "https://x.test", CategoryID: dev.ID}}
	if diff := cmp.Diff(want, sites); diff != "" {
		t.Errorf("ListSites() mismatch (-want +got):\n%s", diff)
	}

	err = c.UpdateSite(ctx, models.UpdateSiteRequest{ID: created.ID, Name: "Y", URL: "https://y.test", CategoryID: dev.ID})
	if err != nil {
		t.Fatalf("UpdateSite() error = %v", err)
	}
	if got := srv.Sites()[0]; got.Name != "Y" || got.URL != "https://y.test" {
		t.Errorf("Site not updated: %+v", got)
	}

	if err := c.DeleteSite(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSite() error = %v", err)
	}
	if len(srv.Sites()) != 0 {
		t.Errorf("Expected no sites left, got %+v", srv.Sites())
	}
}

func TestCreateSite_EmptySuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	site, err := New(ts.URL, nil).CreateSite(context.Background(), models.CreateSiteRequest{
		Name: "X", URL: "https://x.test", CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Expected success on 201 without body, got %v", err)
	}
	if site.ID != 0 || site.Name != "X" {
		t.Errorf("Unexpected site: %+v", site)
	}
}

func TestGetSiteTitle(t *testing.T) {
	c, srv := newTestClient(t)
	site := srv.SeedSite("Go", "https://go.dev", 1)
	srv.SetTitle(site.ID, "The Go Programming Language")

	title, err := c.GetSiteTitle(context.Background(), site.ID)
	if err != nil {
		t.Fatalf("GetSiteTitle() error = %v", err)
	}
	if title != "The Go Programming Language" {
		t.Errorf("GetSiteTitle() = %q", title)
	}

	if _, err := c.GetSiteTitle(context.Background(), 999); naverrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown site, got %v", err)
	}
}
