package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/quick-nav/src/internal/config"
	"github.com/maksimkurb/quick-nav/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	gc := &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.force, "force", false, "Overwrite an existing configuration file")
	return gc
}

type InitConfigCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	cfg   *config.Config
	force bool
}

func (g *InitConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(ctx.ConfigPath); err == nil && !g.force {
		return fmt.Errorf("configuration file %s already exists, use -force to overwrite", ctx.ConfigPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	g.cfg = config.DefaultConfig()
	if ctx.ServerURL != "" {
		g.cfg.Server.BaseURL = ctx.ServerURL
	}
	if err := g.cfg.SetConfigPath(ctx.ConfigPath); err != nil {
		return err
	}

	return g.cfg.ValidateConfig()
}

func (g *InitConfigCommand) Run() error {
	if err := g.cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}

	log.Infof("Configuration written to %s", g.cfg.GetConfigPath())
	return nil
}
