package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/tbragis/refmark/internal/config"
	"github.com/tbragis/refmark/internal/naming"
	"github.com/tbragis/refmark/internal/vault"
)

var cli struct {
	Vault    string `help:"Vault directory (overrides config)"`
	Strategy string `help:"Naming strategy: passthrough, kebab-case or snake_case (overrides config)"`
	Verbose  bool   `short:"v" help:"Enable verbose logging"`

	Parse struct {
		Text string `arg:"" help:"Link interior text, e.g. 'Page#Heading|Alias'"`
	} `cmd:"" help:"Parse link text into page name, heading and alias"`

	Name struct {
		Page     string `arg:"" help:"Page name"`
		Sanitize bool   `help:"Apply the filesystem sanitize pass as well"`
	} `cmd:"" help:"Print the file name for a page under the active strategy"`

	Resolve struct {
		Text string `arg:"" help:"Link interior text"`
	} `cmd:"" help:"Parse link text and print its target path"`

	Scan struct {
		Path string `arg:"" optional:"" help:"File or directory to scan (default: vault)"`
	} `cmd:"" help:"List all wiki links in a file or directory tree"`

	Index struct{} `cmd:"" help:"Build or refresh the vault link index"`

	Backlinks struct {
		Page string `arg:"" help:"Page name"`
	} `cmd:"" help:"List indexed links that target a page"`

	Search struct {
		Query string `arg:"" help:"Full-text query"`
		Limit int    `default:"20" help:"Maximum number of results"`
	} `cmd:"" help:"Search indexed notes"`

	Watch struct{} `cmd:"" help:"Watch the vault and keep the index current"`

	Rename struct {
		Old string `arg:"" help:"Current page name"`
		New string `arg:"" help:"New page name"`
	} `cmd:"" help:"Rewrite links across the vault and rename the page file"`

	Config struct {
		Save bool `help:"Write the active vault path and strategy to the config file"`
	} `cmd:"" help:"Show the active configuration"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("refmark"),
		kong.Description("Wiki cross-reference links for plain markdown vaults."))

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if _, err := config.LoadFile(&cfg); err != nil {
		logger.Fatal("load config", "error", err)
	}
	if cli.Vault != "" {
		cfg.VaultPath = config.ExpandHome(cli.Vault)
	}
	if cli.Strategy != "" {
		strategy, err := naming.ParseStrategy(cli.Strategy)
		if err != nil {
			logger.Fatal("bad --strategy", "error", err)
		}
		cfg.Strategy = strategy
	}

	// A relative configured root is anchored at the working directory.
	if !naming.IsAbsolutePath(cfg.VaultPath) {
		if abs, err := filepath.Abs(cfg.VaultPath); err == nil {
			cfg.VaultPath = abs
		}
	}
	logger.Debug("configuration",
		"vault", cfg.VaultPath, "strategy", cfg.Strategy, "extension", cfg.Extension)

	a := &app{
		cfg:        cfg,
		logger:     logger,
		normalizer: naming.NewNormalizer(cfg.Strategy),
	}
	a.resolver = vault.NewResolver(cfg.VaultPath, cfg.Extension, a.normalizer)

	var err error
	switch ctx.Command() {
	case "parse <text>":
		err = a.runParse(cli.Parse.Text)
	case "name <page>":
		err = a.runName(cli.Name.Page, cli.Name.Sanitize)
	case "resolve <text>":
		err = a.runResolve(cli.Resolve.Text)
	case "scan", "scan <path>":
		path := cli.Scan.Path
		if path == "" {
			path = cfg.VaultPath
		}
		err = a.runScan(path)
	case "index":
		err = a.runIndex()
	case "backlinks <page>":
		err = a.runBacklinks(cli.Backlinks.Page)
	case "search <query>":
		err = a.runSearch(cli.Search.Query, cli.Search.Limit)
	case "watch":
		err = a.runWatch()
	case "rename <old> <new>":
		err = a.runRename(cli.Rename.Old, cli.Rename.New)
	case "config":
		err = a.runConfig(cli.Config.Save)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		logger.Fatal(err)
	}
}
