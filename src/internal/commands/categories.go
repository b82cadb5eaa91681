package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/quick-nav/src/internal/domain"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/models"
	"github.com/maksimkurb/quick-nav/src/internal/ordering"
	"github.com/maksimkurb/quick-nav/src/internal/store"
)

func CreateAddCategoryCommand() *AddCategoryCommand {
	gc := &AddCategoryCommand{
		fs: flag.NewFlagSet("add-category", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.draft.Name, "name", "", "Category name")
	return gc
}

type AddCategoryCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	deps  *domain.AppDependencies
	draft store.CategoryDraft
}

func (g *AddCategoryCommand) Name() string {
	return g.fs.Name()
}

func (g *AddCategoryCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := g.draft.Validate(); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *AddCategoryCommand) Run() error {
	created, err := g.deps.Store().AddCategory(g.ctx.requestContext(), &g.draft)
	if err != nil {
		return err
	}

	if created.ID > 0 {
		fmt.Fprintf(g.ctx.out(), "Added category #%d %q\n", created.ID, created.Name)
	} else {
		fmt.Fprintln(g.ctx.out(), "Added category")
	}
	return nil
}

func CreateRenameCategoryCommand() *RenameCategoryCommand {
	gc := &RenameCategoryCommand{
		fs: flag.NewFlagSet("rename-category", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Category id")
	gc.fs.StringVar(&gc.draft.Name, "name", "", "New category name")
	return gc
}

type RenameCategoryCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	deps  *domain.AppDependencies
	id    int
	draft store.CategoryDraft
}

func (g *RenameCategoryCommand) Name() string {
	return g.fs.Name()
}

func (g *RenameCategoryCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive("id", g.id); err != nil {
		return err
	}
	if err := g.draft.Validate(); err != nil {
		return err
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *RenameCategoryCommand) Run() error {
	name := g.draft.Name
	if err := g.deps.Store().RenameCategory(g.ctx.requestContext(), g.id, &g.draft); err != nil {
		return err
	}

	fmt.Fprintf(g.ctx.out(), "Renamed category #%d to %q\n", g.id, name)
	return nil
}

func CreateDeleteCategoryCommand() *DeleteCategoryCommand {
	gc := &DeleteCategoryCommand{
		fs: flag.NewFlagSet("delete-category", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Category id")
	return gc
}

type DeleteCategoryCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies
	id   int
}

func (g *DeleteCategoryCommand) Name() string {
	return g.fs.Name()
}

func (g *DeleteCategoryCommand) Init(args []string, ctx *AppContext) error {
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

func (g *DeleteCategoryCommand) Run() error {
	if err := g.deps.Store().DeleteCategory(g.ctx.requestContext(), g.id); err != nil {
		return err
	}

	fmt.Fprintf(g.ctx.out(), "Deleted category #%d\n", g.id)
	return nil
}

func CreateMoveCategoryCommand() *MoveCategoryCommand {
	gc := &MoveCategoryCommand{
		fs: flag.NewFlagSet("move-category", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.id, "id", 0, "Category id")
	gc.fs.StringVar(&gc.dir, "dir", "", "Move one position: up or down")
	gc.fs.IntVar(&gc.to, "to", 0, "Move to this 1-based position")
	return gc
}

type MoveCategoryCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *domain.AppDependencies

	id        int
	dir       string
	to        int
	direction ordering.Direction
}

func (g *MoveCategoryCommand) Name() string {
	return g.fs.Name()
}

func (g *MoveCategoryCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive("id", g.id); err != nil {
		return err
	}

	switch {
	case g.dir != "" && g.to != 0:
		return fmt.Errorf("-dir and -to are mutually exclusive")
	case g.dir != "":
		d, err := ordering.ParseDirection(g.dir)
		if err != nil {
			return err
		}
		g.direction = d
	case g.to < 0:
		return fmt.Errorf("-to must be >= 1")
	case g.to == 0:
		return fmt.Errorf("either -dir or -to is required")
	}

	deps, err := initDependencies(ctx)
	if err != nil {
		return err
	}
	g.deps = deps

	return nil
}

func (g *MoveCategoryCommand) Run() error {
	st := g.deps.Store()
	ctx := g.ctx.requestContext()

	if err := st.RefreshCategories(ctx); err != nil {
		return fmt.Errorf("failed to load categories: %v", err)
	}

	var (
		moved bool
		err   error
	)
	if g.dir != "" {
		moved, err = st.MoveCategory(ctx, g.id, g.direction)
	} else {
		moved, err = st.MoveCategoryTo(ctx, g.id, g.to-1)
	}
	if err != nil {
		return err
	}

	if !moved {
		log.Infof("Category #%d is already in place, nothing to do", g.id)
		return nil
	}

	printOrder(g.ctx, st.Categories())
	return nil
}

func printOrder(ctx *AppContext, categories []models.Category) {
	for _, c := range categories {
		fmt.Fprintf(ctx.out(), "%d. %s (#%d)\n", c.Order, c.Name, c.ID)
	}
}
