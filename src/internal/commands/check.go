package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/quick-nav/src/internal/domain"
	"github.com/maksimkurb/quick-nav/src/internal/linkcheck"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.categoryID, "category", 0, "Only check sites of this category")
	gc.fs.BoolVar(&gc.all, "all", false, "Also print sites that resolved")
	return gc
}

type CheckCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	categoryID int
	all        bool
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
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

func (g *CheckCommand) Run() error {
	ctx := g.ctx.requestContext()
	st := g.deps.Store()

	checker, err := g.deps.Checker()
	if err != nil {
		return fmt.Errorf("failed to initialize link checker: %v", err)
	}

	if err := st.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load categories and sites: %v", err)
	}

	sections := st.Sections()
	if g.categoryID != 0 {
		sections = filterSections(sections, g.categoryID)
		if len(sections) == 0 {
			return fmt.Errorf("category #%d not found", g.categoryID)
		}
	}

	var sites []models.Site
	for _, section := range sections {
		sites = append(sites, section.Sites...)
	}

	log.Infof("Checking %d site(s)...", len(sites))
	results, err := checker.Check(ctx, sites)
	if err != nil {
		return err
	}

	byCategory := make(map[int][]linkcheck.Result)
	for _, r := range results {
		byCategory[r.Site.CategoryID] = append(byCategory[r.Site.CategoryID], r)
	}

	out := g.ctx.out()
	for _, section := range sections {
		var lines []string
		for _, r := range byCategory[section.Category.ID] {
			switch {
			case !r.OK():
				lines = append(lines, fmt.Sprintf("  [FAIL] #%d %s (%s): %v", r.Site.ID, r.Site.Name, r.Site.URL, r.Err))
			case g.all:
				lines = append(lines, fmt.Sprintf("  [ OK ] #%d %s -> %s", r.Site.ID, r.Site.Name, strings.Join(r.Addresses, ", ")))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n%s\n", section.Category.Name, strings.Join(lines, "\n"))
	}

	failed := linkcheck.Failed(results)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d site(s) failed to resolve", len(failed), len(results))
	}

	log.Infof("All %d site(s) resolved", len(results))
	return nil
}

func filterSections(sections []models.Section, categoryID int) []models.Section {
	for _, section := range sections {
		if section.Category.ID == categoryID {
			return []models.Section{section}
		}
	}
	return nil
}
