package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
	"github.com/maksimkurb/quick-nav/src/internal/ordering"
)

// API is the subset of the navigation API client used by the store.
type API interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSites(ctx context.Context) ([]models.Site, error)

	CreateCategory(ctx context.Context, name string) (models.Category, error)
	RenameCategory(ctx context.Context, id int, name string) error
	UpdateCategoryOrder(ctx context.Context, id int, order int) error
	UpdateCategoriesOrder(ctx context.Context, categories []models.Category) error
	DeleteCategory(ctx context.Context, id int) error

	CreateSite(ctx context.Context, req models.CreateSiteRequest) (models.Site, error)
	UpdateSite(ctx context.Context, req models.UpdateSiteRequest) error
	DeleteSite(ctx context.Context, id int) error
}

// Store is the owned state container of a session.
type Store struct {
	api  API
	opts Options

	// ops serializes intents; mu guards the fields below.
	ops sync.Mutex
	mu  sync.RWMutex

	categories []models.Category
	sites      []models.Site
	lastTx     *Transaction
}

// New creates an empty store. Call Refresh to load state from the server.
func New(api API, opts Options) *Store {
	return &Store{
		api:        api,
		opts:       opts.withDefaults(),
		categories: []models.Category{},
		sites:      []models.Site{},
	}
}

// Options returns the effective options.
func (s *Store) Options() Options {
	return s.opts
}

// Categories returns the categories sorted by order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneCategories(s.categories)
}

// Sites returns every fetched site, orphans included.
func (s *Store) Sites() []models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneSites(s.sites)
}

// SitesInCategory returns the sites displayed under the category.
func (s *Store) SitesInCategory(categoryID int) []models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SitesInCategory(s.sites, categoryID)
}

// Sections returns the categories in display order with their sites.
func (s *Store) Sections() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.BuildSections(models.CloneCategories(s.categories), s.sites)
}

// Orphans returns the sites whose category is unknown. They are never part of Sections.
func (s *Store) Orphans() []models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.OrphanSites(s.categories, s.sites)
}

// LastTransaction returns a copy of the most recent reorder transaction.
func (s *Store) LastTransaction() (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastTx == nil {
		return Transaction{}, false
	}
	return s.lastTx.clone(), true
}

// Transitions returns the states the most recent reorder passed through.
func (s *Store) Transitions() []TxState {
	tx, ok := s.LastTransaction()
	if !ok {
		return nil
	}
	return tx.History
}

// Refresh fetches categories and sites concurrently. State is replaced only
// when both requests succeed.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		categories []models.Category
		sites      []models.Site
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.api.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sites, err = s.api.ListSites(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Failed to refresh: %v", err)
		return err
	}

	s.mu.Lock()
	s.setCategoriesLocked(categories)
	s.sites = models.CloneSites(sites)
	s.mu.Unlock()

	log.Debugf("Refreshed %d categories and %d sites", len(categories), len(sites))
	return nil
}

// RefreshCategories re-fetches the category list only.
func (s *Store) RefreshCategories(ctx context.Context) error {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		log.Errorf("Failed to refresh categories: %v", err)
		return err
	}

	s.mu.Lock()
	s.setCategoriesLocked(categories)
	s.mu.Unlock()
	return nil
}

// RefreshSites re-fetches the site list only.
func (s *Store) RefreshSites(ctx context.Context) error {
	sites, err := s.api.ListSites(ctx)
	if err != nil {
		log.Errorf("Failed to refresh sites: %v", err)
		return err
	}

	s.mu.Lock()
	s.sites = models.CloneSites(sites)
	s.mu.Unlock()
	return nil
}

func (s *Store) setCategoriesLocked(categories []models.Category) {
	out := models.CloneCategories(categories)
	models.SortCategories(out)
	s.categories = out
}

// AddCategory creates a category from the draft and refreshes categories.
// The draft is cleared only when the category was created.
func (s *Store) AddCategory(ctx context.Context, draft *CategoryDraft) (models.Category, error) {
	if err := draft.Validate(); err != nil {
		return models.Category{}, err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	created, err := s.api.CreateCategory(ctx, strings.TrimSpace(draft.Name))
	if err != nil {
		log.Errorf("Failed to add category %q: %v", draft.Name, err)
		return models.Category{}, err
	}
	draft.Reset()

	return created, s.RefreshCategories(ctx)
}

// RenameCategory renames a category and refreshes categories. The order is untouched.
func (s *Store) RenameCategory(ctx context.Context, id int, draft *CategoryDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	if err := s.api.RenameCategory(ctx, id, strings.TrimSpace(draft.Name)); err != nil {
		log.Errorf("Failed to rename category %d: %v", id, err)
		return err
	}
	draft.Reset()

	return s.RefreshCategories(ctx)
}

// DeleteCategory deletes a category and refreshes both collections so sites
// of the deleted category disappear from view.
func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if err := s.api.DeleteCategory(ctx, id); err != nil {
		log.Errorf("Failed to delete category %d: %v", id, err)
		return err
	}

	return s.Refresh(ctx)
}

// AddSite creates a site from the draft and refreshes sites.
func (s *Store) AddSite(ctx context.Context, draft *SiteDraft) (models.Site, error) {
	if err := draft.Validate(); err != nil {
		return models.Site{}, err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	req := models.CreateSiteRequest{Name: draft.Name, URL: draft.URL, CategoryID: draft.CategoryID}
	req.Normalize()

	created, err := s.api.CreateSite(ctx, req)
	if err != nil {
		log.Errorf("Failed to add site %q: %v", draft.Name, err)
		return models.Site{}, err
	}
	draft.Reset()

	if _, ok := s.category(req.CategoryID); !ok {
		log.Warnf("Site %q references unknown category %d and will not be displayed", req.Name, req.CategoryID)
	}

	return created, s.RefreshSites(ctx)
}

// UpdateSite replaces a site's fields with the draft and refreshes sites.
func (s *Store) UpdateSite(ctx context.Context, id int, draft *SiteDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	req := models.UpdateSiteRequest{ID: id, Name: draft.Name, URL: draft.URL, CategoryID: draft.CategoryID}
	req.Normalize()

	if err := s.api.UpdateSite(ctx, req); err != nil {
		log.Errorf("Failed to update site %d: %v", id, err)
		return err
	}
	draft.Reset()

	return s.RefreshSites(ctx)
}

// DeleteSite deletes a site and refreshes sites.
func (s *Store) DeleteSite(ctx context.Context, id int) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if err := s.api.DeleteSite(ctx, id); err != nil {
		log.Errorf("Failed to delete site %d: %v", id, err)
		return err
	}

	return s.RefreshSites(ctx)
}

// MoveCategory moves a category one position up or down.
// It returns false without sending a request when the move is a no-op.
func (s *Store) MoveCategory(ctx context.Context, id int, dir ordering.Direction) (bool, error) {
	return s.reorder(ctx, id, func(categories []models.Category) ([]models.Category, bool) {
		return ordering.Move(categories, id, dir)
	})
}

// MoveCategoryTo moves a category to an absolute 0-based index, clamped to bounds.
func (s *Store) MoveCategoryTo(ctx context.Context, id int, index int) (bool, error) {
	return s.reorder(ctx, id, func(categories []models.Category) ([]models.Category, bool) {
		return ordering.MoveTo(categories, id, index)
	})
}

func (s *Store) reorder(ctx context.Context, id int, move func([]models.Category) ([]models.Category, bool)) (bool, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.mu.Lock()
	before := models.CloneCategories(s.categories)
	if models.CategoryIndex(before, id) < 0 {
		s.mu.Unlock()
		return false, errors.NewNotFoundError(fmt.Sprintf("category %d is not loaded", id))
	}

	proposed, moved := move(before)
	if !moved {
		s.mu.Unlock()
		log.Debugf("Moving category %d is a no-op", id)
		return false, nil
	}

	order := 0
	if s.opts.Strategy == StrategySingle {
		order = singleOrder(before, proposed, id)
		proposed = applyShift(before, id, order)
	}

	tx := newTransaction(id, before, proposed)
	s.lastTx = tx
	if err := tx.transition(TxPending); err != nil {
		s.mu.Unlock()
		return false, errors.NewInternalError("failed to start reorder", err)
	}
	s.categories = models.CloneCategories(proposed)
	s.mu.Unlock()

	if err := s.persistOrder(ctx, id, order, proposed); err != nil {
		log.Errorf("Failed to reorder category %d: %v", id, err)
		s.revert(ctx, tx, err)
		return false, err
	}

	s.commit(ctx, tx)
	return true, nil
}

func (s *Store) persistOrder(ctx context.Context, id int, order int, proposed []models.Category) error {
	if s.opts.Strategy == StrategySingle {
		return s.api.UpdateCategoryOrder(ctx, id, order)
	}
	return s.api.UpdateCategoriesOrder(ctx, proposed)
}

// singleOrder returns the order value to send on the single-field path.
//
// The server sets the moved category to the value and increments every other
// category whose order is >= the value. Placing the category right after its
// new predecessor therefore takes the predecessor's current order + 1, and
// placing it first takes the current order of its new successor.
func singleOrder(before, proposed []models.Category, id int) int {
	i := models.CategoryIndex(proposed, id)
	if i > 0 {
		prev, _ := models.CategoryByID(before, proposed[i-1].ID)
		return prev.Order + 1
	}

	next, _ := models.CategoryByID(before, proposed[1].ID)
	if next.Order < 1 {
		return 1
	}
	return next.Order
}

// applyShift returns before as the server stores it after a single-field
// update of id to order. The result is sorted but not renumbered.
func applyShift(before []models.Category, id int, order int) []models.Category {
	out := models.CloneCategories(before)
	for i := range out {
		switch {
		case out[i].ID == id:
			out[i].Order = order
		case out[i].Order >= order:
			out[i].Order++
		}
	}
	models.SortCategories(out)
	return out
}

func (s *Store) commit(ctx context.Context, tx *Transaction) {
	s.mu.Lock()
	_ = tx.transition(TxCommitted)
	s.mu.Unlock()

	if s.opts.Confirm == ConfirmRefetch {
		if err := s.RefreshCategories(ctx); err != nil {
			log.Warnf("Reorder of category %d was saved but the list could not be re-fetched", tx.CategoryID)
		}
	}
	log.Debugf("Reorder of category %d committed", tx.CategoryID)
}

// revert discards the tentative sequence by re-fetching. If the re-fetch
// fails too, the sequence from before the move is restored.
func (s *Store) revert(ctx context.Context, tx *Transaction, cause error) {
	categories, err := s.api.ListCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx.Err = cause
	_ = tx.transition(TxReverted)

	if err != nil {
		log.Warnf("Failed to re-fetch categories after failed reorder, restoring previous order: %v", err)
		s.categories = models.CloneCategories(tx.Before)
		return
	}
	s.setCategoriesLocked(categories)
}

func (s *Store) category(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CategoryByID(s.categories, id)
}
