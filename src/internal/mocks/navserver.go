package mocks

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// RecordedRequest is a request received by NavServer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// NavServer is an in-memory quick-nav API server.
//
// It follows the behavior of the production server: a new category is
// appended with order MAX+1, deleting a category also deletes its sites and
// closes the gap in the order, the bulk order endpoint stores orders
// verbatim, and a single-category order update shifts every category at or
// after the new position by one.
//
// Failures can be injected per endpoint with FailNext and RespondRawNext.
type NavServer struct {
	mu sync.Mutex

	categories     []models.Category
	sites          []models.Site
	titles         map[int]string
	nextCategoryID int
	nextSiteID     int

	overrides map[string][]override
	requests  []RecordedRequest

	router chi.Router
}

type override struct {
	status int
	body   string
}

// NewNavServer creates an empty server.
func NewNavServer() *NavServer {
	s := &NavServer{
		titles:         make(map[int]string),
		nextCategoryID: 1,
		nextSiteID:     1,
		overrides:      make(map[string][]override),
	}

	r := chi.NewRouter()
	r.Use(Recovery)
	r.Use(s.record)
	r.Use(s.injectFailures)
	r.Use(JSONContentType)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.listCategories)
		r.Post("/categories", s.createCategory)
		r.Put("/categories", s.updateCategory)
		r.Put("/categories/order", s.updateCategoriesOrder)
		r.Delete("/categories", s.deleteCategory)

		r.Get("/sites", s.listSites)
		r.Post("/sites", s.createSite)
		r.Put("/sites", s.updateSite)
		r.Delete("/sites", s.deleteSite)
		r.Get("/sites/title", s.siteTitle)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *NavServer) Handler() http.Handler {
	return s.router
}

// Start serves the API on a local httptest server. The caller must Close it.
func (s *NavServer) Start() *httptest.Server {
	return httptest.NewServer(s.router)
}

// SeedCategory adds a category directly, bypassing HTTP.
func (s *NavServer) SeedCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCategoryLocked(name)
}

// SeedSite adds a site directly, bypassing HTTP. The category is not checked.
func (s *NavServer) SeedSite(name, url string, categoryID int) models.Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addSiteLocked(name, url, categoryID)
}

// SetTitle sets the page title reported for a site.
func (s *NavServer) SetTitle(siteID int, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[siteID] = title
}

// FailNext makes the next request to method+path answer with status and a
// JSON error envelope instead of reaching the handler.
func (s *NavServer) FailNext(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.overrides[key] = append(s.overrides[key], override{
		status: status,
		body:   fmt.Sprintf(`{"error":"injected failure for %s"}`, key),
	})
}

// RespondRawNext makes the next request to method+path answer with the given
// status and raw body, e.g. to simulate malformed JSON.
func (s *NavServer) RespondRawNext(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.overrides[key] = append(s.overrides[key], override{status: status, body: body})
}

// Categories returns the stored categories sorted by order.
func (s *NavServer) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedCategoriesLocked()
}

// Sites returns the stored sites.
func (s *NavServer) Sites() []models.Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneSites(s.sites)
}

// Requests returns every request received so far.
func (s *NavServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// CountRequests returns how many requests matched method and path.
func (s *NavServer) CountRequests(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// ResetRequests forgets recorded requests.
func (s *NavServer) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *NavServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytesReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *NavServer) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		queue := s.overrides[key]
		var o *override
		if len(queue) > 0 {
			o = &queue[0]
			s.overrides[key] = queue[1:]
		}
		s.mu.Unlock()

		if o != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(o.status)
			_, _ = io.WriteString(w, o.body)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *NavServer) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	categories := s.sortedCategoriesLocked()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, categories)
}

func (s *NavServer) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	created := s.addCategoryLocked(req.Name)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, created)
}

func (s *NavServer) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := models.CategoryIndex(s.categories, req.ID)
	if i < 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("category %d not found", req.ID))
		return
	}

	if req.Name != nil {
		s.categories[i].Name = *req.Name
	}
	if req.Order != nil {
		newOrder := *req.Order
		if newOrder < 1 {
			newOrder = 1
		}
		for j := range s.categories {
			if j != i && s.categories[j].Order >= newOrder {
				s.categories[j].Order++
			}
		}
		s.categories[i].Order = newOrder
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

func (s *NavServer) updateCategoriesOrder(w http.ResponseWriter, r *http.Request) {
	var req []models.Category
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range req {
		if i := models.CategoryIndex(s.categories, c.ID); i >= 0 {
			s.categories[i].Order = c.Order
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Categories order updated successfully"})
}

func (s *NavServer) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := models.CategoryIndex(s.categories, id)
	if i < 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("category %d not found", id))
		return
	}

	removedOrder := s.categories[i].Order
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	for j := range s.categories {
		if s.categories[j].Order > removedOrder {
			s.categories[j].Order--
		}
	}

	kept := s.sites[:0]
	for _, site := range s.sites {
		if site.CategoryID != id {
			kept = append(kept, site)
		}
	}
	s.sites = kept

	w.WriteHeader(http.StatusNoContent)
}

func (s *NavServer) listSites(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sites := models.CloneSites(s.sites)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, sites)
}

func (s *NavServer) createSite(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "name and url are required")
		return
	}

	s.mu.Lock()
	created := s.addSiteLocked(req.Name, req.URL, req.CategoryID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, created)
}

func (s *NavServer) updateSite(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sites {
		if s.sites[i].ID == req.ID {
			s.sites[i] = models.Site{ID: req.ID, Name: req.Name, URL: req.URL, CategoryID: req.CategoryID}
			writeJSON(w, http.StatusOK, s.sites[i])
			return
		}
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("site %d not found", req.ID))
}

func (s *NavServer) deleteSite(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sites {
		if s.sites[i].ID == id {
			s.sites = append(s.sites[:i], s.sites[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("site %d not found", id))
}

func (s *NavServer) siteTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	title, found := s.titles[id]
	s.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "title not found")
		return
	}
	writeJSON(w, http.StatusOK, models.SiteTitleResponse{Title: title})
}

func (s *NavServer) addCategoryLocked(name string) models.Category {
	maxOrder := 0
	for _, c := range s.categories {
		if c.Order > maxOrder {
			maxOrder = c.Order
		}
	}

	c := models.Category{ID: s.nextCategoryID, Name: name, Order: maxOrder + 1}
	s.nextCategoryID++
	s.categories = append(s.categories, c)
	return c
}

func (s *NavServer) addSiteLocked(name, url string, categoryID int) models.Site {
	site := models.Site{ID: s.nextSiteID, Name: name, URL: url, CategoryID: categoryID}
	s.nextSiteID++
	s.sites = append(s.sites, site)
	return site
}

func (s *NavServer) sortedCategoriesLocked() []models.Category {
	out := models.CloneCategories(s.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func queryID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
