package index

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbragis/refmark/internal/markdown"
	"github.com/tbragis/refmark/internal/naming"
	"github.com/tbragis/refmark/internal/vault"
)

// Indexer manages the note indexing pipeline.
type Indexer struct {
	db        *DB
	parser    *markdown.Parser
	namer     vault.Namer
	vaultRoot string
}

func NewIndexer(db *DB, vaultRoot string, namer vault.Namer) *Indexer {
	return &Indexer{
		db:        db,
		parser:    markdown.NewParser(),
		namer:     namer,
		vaultRoot: vaultRoot,
	}
}

// IndexAll performs a full index of all markdown files in the vault.
func (idx *Indexer) IndexAll() error {
	// Clear links and hashes so all files get fully re-indexed.
	// Links are derived data rebuilt from source on each IndexFile call.
	if _, err := idx.db.Conn().Exec("DELETE FROM links"); err != nil {
		return fmt.Errorf("clear links: %w", err)
	}
	if _, err := idx.db.Conn().Exec("UPDATE notes SET hash = ''"); err != nil {
		return fmt.Errorf("clear hashes: %w", err)
	}

	notes, err := vault.New(idx.vaultRoot).Notes()
	if err != nil {
		return err
	}
	for _, rel := range notes {
		if err := idx.IndexFile(filepath.Join(idx.vaultRoot, rel)); err != nil {
			return err
		}
	}
	return nil
}

// IndexFile indexes a single markdown file.
func (idx *Indexer) IndexFile(absPath string) error {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", absPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", absPath, err)
	}

	relPath, err := filepath.Rel(idx.vaultRoot, absPath)
	if err != nil {
		relPath = absPath
	}

	// Skip unchanged files
	hash := fmt.Sprintf("%x", sha256.Sum256(content))
	existingHash, _ := idx.db.GetNoteHash(relPath)
	if hash == existingHash {
		return nil
	}

	doc := idx.parser.Parse(content)

	title := titleFromPath(relPath)
	status := ""
	var tags []string
	if doc.Frontmatter != nil {
		if doc.Frontmatter.Title != "" {
			title = doc.Frontmatter.Title
		}
		status = doc.Frontmatter.Status
		tags = doc.Frontmatter.Tags
	}

	fileName := naming.SanitizeFileName(idx.namer.FileName(title))

	noteID, err := idx.db.UpsertNote(relPath, title, fileName, status, hash, info.ModTime().Unix(), info.Size())
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}

	headingTexts := make([]string, len(doc.Headings))
	for i, h := range doc.Headings {
		headingTexts[i] = h.Text
	}
	if err := idx.db.UpdateFTS(noteID, title, doc.PlainContent(),
		strings.Join(tags, " "), strings.Join(headingTexts, " ")); err != nil {
		return fmt.Errorf("update FTS: %w", err)
	}

	if err := idx.db.ClearNoteTags(noteID); err != nil {
		return fmt.Errorf("clear note tags: %w", err)
	}
	for _, tag := range tags {
		tagID, err := idx.db.UpsertTag(tag)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", tag, err)
		}
		if err := idx.db.LinkNoteTag(noteID, tagID); err != nil {
			return fmt.Errorf("link note tag %q: %w", tag, err)
		}
	}

	if err := idx.db.ClearNoteHeadings(noteID); err != nil {
		return fmt.Errorf("clear note headings: %w", err)
	}
	for _, h := range doc.Headings {
		if err := idx.db.InsertHeading(noteID, h.Level, h.Text, h.Line); err != nil {
			return fmt.Errorf("insert heading %q: %w", h.Text, err)
		}
	}

	// Store links with both the page name as written and its normalized
	// file name, so backlinks can be queried by either.
	if err := idx.db.ClearNoteLinks(noteID); err != nil {
		return fmt.Errorf("clear note links: %w", err)
	}
	for _, occ := range doc.Links {
		targetFile := naming.SanitizeFileName(idx.namer.FileName(occ.PageName))
		if err := idx.db.InsertLink(noteID, occ.PageName, targetFile, occ.Heading, occ.DisplayName, occ.Line, occ.Col); err != nil {
			return fmt.Errorf("insert link to %q: %w", occ.PageName, err)
		}
	}

	return nil
}

// RemoveFile removes a file from the index.
func (idx *Indexer) RemoveFile(absPath string) error {
	relPath, err := filepath.Rel(idx.vaultRoot, absPath)
	if err != nil {
		relPath = absPath
	}
	return idx.db.DeleteNote(relPath)
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return name
}
