package vault

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Vault is a directory tree of markdown pages.
type Vault struct {
	Root string
}

func New(root string) *Vault {
	return &Vault{Root: root}
}

// Notes returns the relative paths of all markdown files in the vault,
// sorted, skipping hidden files and directories.
func (v *Vault) Notes() ([]string, error) {
	var notes []string

	err := filepath.WalkDir(v.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != v.Root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, ".md") {
			return nil
		}

		rel, err := filepath.Rel(v.Root, path)
		if err != nil {
			rel = path
		}
		notes = append(notes, rel)
		return nil
	})

	sort.Strings(notes)
	return notes, err
}

// Abs returns the absolute path of a note given its vault-relative path.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.Root, rel)
}
