package commands

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/maksimkurb/quick-nav/src/internal/domain"
	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
	"github.com/maksimkurb/quick-nav/src/internal/store"
)

func CreateAddSiteCommand() *AddSiteCommand {
	gc := &AddSiteCommand{
		fs: flag.NewFlagSet("add-site", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.draft.Name, "name", "", "Site name (default: the page title)")
	gc.fs.StringVar(&gc.draft.URL, "url", "", "Site URL")
	gc.fs.IntVar(&gc.draft.CategoryID, "category", 0, "Category id")
	return gc
}

type AddSiteCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	deps  *domain.AppDependencies
	draft store.SiteDraft
}

func (g *AddSiteCommand) Name() string {
	return g.fs.Name()
}

func (g *AddSiteCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.draft.URL == "" {
		return fmt.Errorf("-url is required")
	}
	if err := requirePositive("category", g.draft.CategoryID); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *AddSiteCommand) Run() error {
	ctx := g.ctx.requestContext()

	if g.draft.Name == "" {
		fetcher := g.deps.TitleFetcher()
		if fetcher == nil {
			return fmt.Errorf("-name is required")
		}
		title, err := fetcher.Fetch(ctx, g.draft.URL)
		if err != nil {
			return fmt.Errorf("-name is not set and the page title could not be fetched: %v", err)
		}
		log.Infof("Using page title %q as the site name", title)
		g.draft.Name = title
	}

	st := g.deps.Store()
	if err := st.RefreshCategories(ctx); err != nil {
		log.Warnf("Could not verify category #%d exists", g.draft.CategoryID)
	}

	created, err := st.AddSite(ctx, &g.draft)
	if err != nil {
		return err
	}

	if created.ID > 0 {
		fmt.Fprintf(g.ctx.out(), "Added site #%d %q\n", created.ID, created.Name)
	} else {
		fmt.Fprintln(g.ctx.out(), "Added site")
	}
	return nil
}

func CreateUpdateSiteCommand() *UpdateSiteCommand {
	gc := &UpdateSiteCommand{
		fs: flag.NewFlagSet("update-site", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Site id")
	gc.fs.StringVar(&gc.name, "name", "", "New site name (default: unchanged)")
	gc.fs.StringVar(&gc.url, "url", "", "New site URL (default: unchanged)")
	gc.fs.IntVar(&gc.categoryID, "category", 0, "New category id (default: unchanged)")
	return gc
}

type UpdateSiteCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	id         int
	name       string
	url        string
	categoryID int
}

func (g *UpdateSiteCommand) Name() string {
	return g.fs.Name()
}

func (g *UpdateSiteCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive("id", g.id); err != nil {
		return err
	}
	if g.name == "" && g.url == "" && g.categoryID == 0 {
		return fmt.Errorf("nothing to update: set -name, -url or -category")
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *UpdateSiteCommand) Run() error {
	ctx := g.ctx.requestContext()
	st := g.deps.Store()

	site, err := loadSite(g.ctx, st, g.id)
	if err != nil {
		return err
	}

	draft := store.SiteDraft{Name: site.Name, URL: site.URL, CategoryID: site.CategoryID}
	if g.name != "" {
		draft.Name = g.name
	}
	if g.url != "" {
		draft.URL = g.url
	}
	if g.categoryID != 0 {
		draft.CategoryID = g.categoryID
	}

	if err := st.UpdateSite(ctx, g.id, &draft); err != nil {
		return err
	}

	fmt.Fprintf(g.ctx.out(), "Updated site #%d\n", g.id)
	return nil
}

func CreateDeleteSiteCommand() *DeleteSiteCommand {
	gc := &DeleteSiteCommand{
		fs: flag.NewFlagSet("delete-site", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Site id")
	return gc
}

type DeleteSiteCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies
	id   int
}

func (g *DeleteSiteCommand) Name() string {
	return g.fs.Name()
}

func (g *DeleteSiteCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive("id", g.id); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *DeleteSiteCommand) Run() error {
	if err := g.deps.Store().DeleteSite(g.ctx.requestContext(), g.id); err != nil {
		return err
	}

	fmt.Fprintf(g.ctx.out(), "Deleted site #%d\n", g.id)
	return nil
}

func CreateSiteTitleCommand() *SiteTitleCommand {
	gc := &SiteTitleCommand{
		fs: flag.NewFlagSet("site-title", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Site id")
	gc.fs.BoolVar(&gc.fetch, "fetch", false, "Fetch the page directly instead of asking the server")
	return gc
}

type SiteTitleCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	deps  *domain.AppDependencies
	id    int
	fetch bool
}

func (g *SiteTitleCommand) Name() string {
	return g.fs.Name()
}

func (g *SiteTitleCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive("id", g.id); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

// Run asks the server for the title and falls back to fetching the page
// when the server does not know it.
func (g *SiteTitleCommand) Run() error {
	ctx := g.ctx.requestContext()

	if !g.fetch {
		title, err := g.deps.NavClient().GetSiteTitle(ctx, g.id)
		if err == nil {
			fmt.Fprintln(g.ctx.out(), title)
			return nil
		}
		if errors.StatusCode(err) != http.StatusNotFound {
			return err
		}
		log.Debugf("Server has no title for site #%d, fetching the page", g.id)
	}

	fetcher := g.deps.TitleFetcher()
	if fetcher == nil {
		return fmt.Errorf("page title fetching is not available")
	}

	site, err := loadSite(g.ctx, g.deps.Store(), g.id)
	if err != nil {
		return err
	}

	title, err := fetcher.Fetch(ctx, site.URL)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.ctx.out(), title)
	return nil
}

func loadSite(ctx *AppContext, st *store.Store, id int) (models.Site, error) {
	if err := st.RefreshSites(ctx.requestContext()); err != nil {
		return models.Site{}, fmt.Errorf("failed to load sites: %v", err)
	}
	site, ok := models.SiteByID(st.Sites(), id)
	if !ok {
		return models.Site{}, errors.NewNotFoundError(fmt.Sprintf("site #%d not found", id))
	}
	return site, nil
}
