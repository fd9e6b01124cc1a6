package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/tbragis/refmark/internal/config"
	"github.com/tbragis/refmark/internal/index"
	"github.com/tbragis/refmark/internal/naming"
	"github.com/tbragis/refmark/internal/ui"
	"github.com/tbragis/refmark/internal/vault"
	"github.com/tbragis/refmark/internal/wikilink"
)

type app struct {
	cfg        config.Config
	logger     *log.Logger
	normalizer *naming.Normalizer
	resolver   *vault.Resolver
}

func (a *app) runParse(text string) error {
	link, err := wikilink.Parse(text)
	if err != nil {
		return err
	}

	fmt.Println(ui.Field.Render("page:   ") + link.PageName)
	if link.Heading != "" {
		fmt.Println(ui.Field.Render("heading:") + " " + link.Heading)
	}
	if link.IsAlias {
		fmt.Println(ui.Field.Render("alias:  ") + link.DisplayName)
	}
	return nil
}

func (a *app) runName(page string, sanitize bool) error {
	name := a.normalizer.FileName(page)
	if sanitize {
		name = naming.SanitizeFileName(name)
	}
	fmt.Println(name)
	return nil
}

func (a *app) runResolve(text string) error {
	link, err := wikilink.Parse(text)
	if err != nil {
		return err
	}
	fmt.Println(a.resolver.Resolve(link))
	return nil
}

func (a *app) runScan(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var files []string
	if info.IsDir() {
		notes, err := vault.New(path).Notes()
		if err != nil {
			return err
		}
		for _, rel := range notes {
			files = append(files, filepath.Join(path, rel))
		}
	} else {
		files = []string{path}
	}

	total := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			a.logger.Warn("read file", "path", file, "error", err)
			continue
		}
		for _, occ := range wikilink.Extract(content) {
			total++
			loc := fmt.Sprintf("%s:%d:%d", file, occ.Line, occ.Col)
			line := ui.Location.Render(loc) + " " + ui.Title.Render(occ.PageName)
			if occ.Heading != "" {
				line += ui.Dim.Render("#" + occ.Heading)
			}
			if occ.IsAlias {
				line += ui.Dim.Render(" (as " + occ.DisplayName + ")")
			}
			fmt.Println(line)
		}
	}
	a.logger.Debug("scan finished", "files", len(files), "links", total)
	return nil
}

func (a *app) openIndex() (*index.DB, error) {
	path := a.cfg.ResolvedIndexPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}
	return index.Open(path)
}

func (a *app) runIndex() error {
	db, err := a.openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	idx := index.NewIndexer(db, a.cfg.VaultPath, a.normalizer)
	if err := idx.IndexAll(); err != nil {
		return err
	}
	a.logger.Info("index updated", "path", a.cfg.ResolvedIndexPath())
	return nil
}

func (a *app) runBacklinks(page string) error {
	db, err := a.openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	fileName := naming.SanitizeFileName(a.normalizer.FileName(page))
	links, err := db.Backlinks(page, fileName)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Println(ui.Dim.Render("no backlinks for " + page))
		return nil
	}

	for _, l := range links {
		loc := fmt.Sprintf("%s:%d:%d", l.SourcePath, l.Line, l.Col)
		fmt.Println(ui.Location.Render(loc) + " " + ui.Path.Render(l.SourceTitle) +
			ui.Dim.Render(" -> "+l.TargetPage))
	}
	return nil
}

func (a *app) runSearch(query string, limit int) error {
	db, err := a.openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.Search(query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println(ui.Dim.Render("no results"))
		return nil
	}

	for _, r := range results {
		fmt.Println(ui.Title.Render(r.Title) + " " + ui.Location.Render(r.Path))
	}
	return nil
}

func (a *app) runWatch() error {
	db, err := a.openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	idx := index.NewIndexer(db, a.cfg.VaultPath, a.normalizer)
	if err := idx.IndexAll(); err != nil {
		return err
	}
	a.logger.Info("initial index complete", "vault", a.cfg.VaultPath)

	w, err := index.NewWatcher(idx, a.cfg.VaultPath, a.logger, func(path string) {
		a.logger.Info("re-indexed", "path", path)
	})
	if err != nil {
		return err
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		if err := w.Stop(); err != nil {
			a.logger.Error("stop watcher", "error", err)
		}
	}()

	w.Start()
	return nil
}

func (a *app) runConfig(save bool) error {
	fmt.Println(ui.Field.Render("vault:    ") + a.cfg.VaultPath)
	fmt.Println(ui.Field.Render("strategy: ") + a.cfg.Strategy.String())
	fmt.Println(ui.Field.Render("extension:") + " " + a.cfg.Extension)
	fmt.Println(ui.Field.Render("index:    ") + a.cfg.ResolvedIndexPath())

	if save {
		if err := config.SaveFile(a.cfg.VaultPath, a.cfg.Strategy); err != nil {
			return err
		}
		a.logger.Info("configuration saved", "path", config.ConfigPath())
	}
	return nil
}

func (a *app) runRename(oldName, newName string) error {
	if strings.TrimSpace(oldName) == "" || strings.TrimSpace(newName) == "" {
		return fmt.Errorf("rename needs non-empty page names")
	}

	v := vault.New(a.cfg.VaultPath)
	changed, err := v.RenamePage(oldName, newName, a.normalizer)
	if err != nil {
		return err
	}

	for _, rel := range changed {
		fmt.Println(ui.Path.Render(rel))
	}
	a.logger.Info("rename complete", "old", oldName, "new", newName, "notes_updated", len(changed))
	return nil
}
