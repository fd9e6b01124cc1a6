package vault

import (
	"fmt"
	"os"
	"regexp"
)

// RewriteLinks replaces wiki link targets matching oldName with newName,
// preserving any .md suffix, #heading, or |alias after the target.
// Handles [[old]], [[old.md]], [[old#h]], [[old|a]], [[old#h|a]].
func RewriteLinks(content, oldName, newName string) string {
	pattern := `\[\[` + regexp.QuoteMeta(oldName) + `(\.md)?([#|][^\]]*)?\]\]`
	re := regexp.MustCompile(pattern)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		// interior minus the target: ".md", "#h", "|a" in any valid combination
		rest := match[2+len(oldName) : len(match)-2]
		return "[[" + newName + rest + "]]"
	})
}

// RewriteNote rewrites link targets in one note file, writing it back
// only when something changed. Reports whether the file was modified.
func RewriteNote(absPath, oldName, newName string) (bool, error) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		return false, err
	}

	updated := RewriteLinks(string(data), oldName, newName)
	if updated == string(data) {
		return false, nil
	}

	if err := os.WriteFile(absPath, []byte(updated), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// RenamePage rewrites [[oldName]] links across the whole vault and, if
// the note file named for oldName exists, renames it to newName's file.
// Returns the vault-relative paths of the notes that were modified.
func (v *Vault) RenamePage(oldName, newName string, namer Namer) ([]string, error) {
	notes, err := v.Notes()
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, rel := range notes {
		modified, err := RewriteNote(v.Abs(rel), oldName, newName)
		if err != nil {
			return changed, fmt.Errorf("rewrite %s: %w", rel, err)
		}
		if modified {
			changed = append(changed, rel)
		}
	}

	oldFile := namer.FileName(oldName) + ".md"
	newFile := namer.FileName(newName) + ".md"
	oldAbs := v.Abs(oldFile)
	if _, err := os.Stat(oldAbs); err == nil {
		newAbs := v.Abs(newFile)
		if _, err := os.Stat(newAbs); err == nil {
			return changed, fmt.Errorf("%s already exists", newFile)
		}
		if err := os.Rename(oldAbs, newAbs); err != nil {
			return changed, fmt.Errorf("rename note file: %w", err)
		}
	}

	return changed, nil
}
