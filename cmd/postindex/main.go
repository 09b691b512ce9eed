package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/pfassina/postindex/internal/app"
	"github.com/pfassina/postindex/internal/config"
	"github.com/pfassina/postindex/internal/ui"
)

var cli struct {
	Root    string `short:"r" help:"Site root directory." default:"." type:"path"`
	Config  string `short:"c" help:"Config file (default: <root>/postindex.toml)." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Build struct {
		NoTagPages bool `help:"Do not generate per-tag pages."`
	} `cmd:"" default:"1" help:"Generate the post index, the tag index and the tag pages."`

	Search struct {
		Query string `arg:"" help:"Full-text query (SQLite FTS5 syntax)."`
		Limit int    `short:"n" default:"20" help:"Maximum number of results."`
	} `cmd:"" help:"Search the post catalog written by build."`

	Init struct{} `cmd:"" help:"Write a postindex.toml with the default settings."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("postindex"),
		kong.Description("Generate index pages for a folder of dated blog posts."),
		kong.UsageOnError(),
	)

	logger := ui.NewLogger(os.Stderr, log.InfoLevel)

	cfg := config.Default()
	cfg.Root = cli.Root
	cfgPath := cli.Config
	if cfgPath == "" {
		cfgPath = config.ConfigPath(cli.Root)
	}

	if ctx.Command() == "init" {
		if err := config.SaveFile(cfgPath, cfg); err != nil {
			logger.Fatal("init failed", "err", err)
		}
		logger.Info("wrote config", "path", cfgPath)
		return
	}

	if _, err := config.LoadFile(cfgPath, &cfg); err != nil {
		logger.Fatal("error loading config", "path", cfgPath, "err", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("invalid log_level", "value", cfg.LogLevel, "err", err)
	}
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	switch ctx.Command() {
	case "build":
		if cli.Build.NoTagPages {
			cfg.TagPages = false
		}
		if _, err := app.Run(cfg, logger); err != nil {
			logger.Fatal("build failed", "err", err)
		}

	case "search <query>":
		results, err := app.Search(cfg, cli.Search.Query, cli.Search.Limit)
		if err != nil {
			logger.Fatal("search failed", "err", err)
		}
		for _, r := range results {
			title := r.Title
			if title == "" {
				title = r.Name
			}
			fmt.Fprintf(os.Stdout, "%s  %-40s  %s\n", r.Date, title, r.Name)
		}
	}
}
