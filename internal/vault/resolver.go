package vault

import (
	"path/filepath"
	"strings"

	"github.com/tbragis/refmark/internal/naming"
	"github.com/tbragis/refmark/internal/wikilink"
)

// Namer converts a page name to a file name. Satisfied by
// *naming.Normalizer; injected so hosts can swap the transform.
type Namer interface {
	FileName(pageName string) string
}

// Target is the resolved location of a wiki link.
type Target struct {
	Path     string // note file path
	Fragment string // heading fragment, "" if none
}

func (t Target) String() string {
	if t.Fragment == "" {
		return t.Path
	}
	return t.Path + "#" + t.Fragment
}

// Resolver combines parsed links with the configured root and extension
// into navigable targets.
type Resolver struct {
	root  string
	ext   string
	namer Namer
}

// NewResolver returns a resolver rooted at root. ext is the note file
// extension including the dot; empty means ".md".
func NewResolver(root, ext string, namer Namer) *Resolver {
	if ext == "" {
		ext = ".md"
	}
	return &Resolver{root: root, ext: ext, namer: namer}
}

// Resolve maps a parsed link to its target. The normalized name gets a
// final sanitize pass so no strategy output can escape the filesystem
// rules. Absolute page names are used as-is instead of joined under
// the root.
func (r *Resolver) Resolve(link wikilink.Link) Target {
	if naming.IsAbsolutePath(link.PageName) {
		return Target{Path: withExt(link.PageName, r.ext), Fragment: link.Heading}
	}

	name := naming.SanitizeFileName(r.namer.FileName(link.PageName))
	return Target{
		Path:     filepath.Join(r.root, withExt(name, r.ext)),
		Fragment: link.Heading,
	}
}

// FileName returns the normalized, sanitized file name for a page,
// without root or extension.
func (r *Resolver) FileName(pageName string) string {
	return naming.SanitizeFileName(r.namer.FileName(pageName))
}

func withExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
