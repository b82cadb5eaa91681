package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/quick-nav/src/internal/dashboard"
	"github.com/maksimkurb/quick-nav/src/internal/domain"
)

func CreateListCommand() *ListCommand {
	gc := &ListCommand{
		fs: flag.NewFlagSet("list", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.domain, "domain", "", "Only show sites on this domain or its subdomains")
	gc.fs.BoolVar(&gc.orphans, "orphans", false, "Also list sites whose category no longer exists")
	return gc
}

type ListCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	domain  string
	orphans bool
}

func (g *ListCommand) Name() string {
	return g.fs.Name()
}

func (g *ListCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *ListCommand) Run() error {
	st := g.deps.Store()
	if err := st.Refresh(g.ctx.requestContext()); err != nil {
		return fmt.Errorf("failed to load categories and sites: %v", err)
	}

	sections := st.Sections()
	if g.domain != "" {
		sections = dashboard.FilterByDomain(sections, g.domain)
	}

	out := g.ctx.out()
	if len(sections) == 0 {
		fmt.Fprintln(out, "No categories.")
	} else if err := g.deps.Renderer().Render(out, sections); err != nil {
		return err
	}

	if g.orphans {
		orphans := st.Orphans()
		if len(orphans) > 0 {
			fmt.Fprintf(out, "\nSites without a category (%d):\n", len(orphans))
			for _, site := range orphans {
				fmt.Fprintf(out, "%s (category #%d)\n", g.deps.Renderer().Site(site), site.CategoryID)
			}
		}
	}

	return nil
}
