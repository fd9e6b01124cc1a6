package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tbragis/refmark/internal/naming"
)

func TestRewriteLinks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare link",
			content: "See [[old note]]",
			want:    "See [[new note]]",
		},
		{
			name:    "with extension",
			content: "See [[old note.md]]",
			want:    "See [[new note.md]]",
		},
		{
			name:    "with heading",
			content: "See [[old note#section]]",
			want:    "See [[new note#section]]",
		},
		{
			name:    "with alias",
			content: "See [[old note|Old]]",
			want:    "See [[new note|Old]]",
		},
		{
			name:    "with heading and alias",
			content: "See [[old note#sec|Old]]",
			want:    "See [[new note#sec|Old]]",
		},
		{
			name:    "extension heading alias",
			content: "See [[old note.md#sec|Old]]",
			want:    "See [[new note.md#sec|Old]]",
		},
		{
			name:    "other links untouched",
			content: "[[old note]] and [[other note]]",
			want:    "[[new note]] and [[other note]]",
		},
		{
			name:    "prefix of longer name untouched",
			content: "[[old note taking]]",
			want:    "[[old note taking]]",
		},
		{
			name:    "multiple occurrences",
			content: "[[old note]] twice [[old note#a]]",
			want:    "[[new note]] twice [[new note#a]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteLinks(tt.content, "old note", "new note")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteNote(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	if err := os.WriteFile(path, []byte("link to [[Old Page]]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	modified, err := RewriteNote(path, "Old Page", "New Page")
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("expected modification")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "link to [[New Page]]\n" {
		t.Errorf("content = %q", data)
	}

	// Second pass changes nothing.
	modified, err = RewriteNote(path, "Old Page", "New Page")
	if err != nil {
		t.Fatal(err)
	}
	if modified {
		t.Error("expected no modification on second pass")
	}
}

func TestRenamePage(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("old-page.md", "# Old Page\n")
	write("other.md", "see [[Old Page]]\n")
	write("unrelated.md", "nothing here\n")

	v := New(dir)
	namer := naming.NewNormalizer(naming.StrategyKebab)

	changed, err := v.RenamePage("Old Page", "New Page", namer)
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 1 || changed[0] != "other.md" {
		t.Errorf("changed = %v", changed)
	}

	if _, err := os.Stat(filepath.Join(dir, "new-page.md")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "old-page.md")); !os.IsNotExist(err) {
		t.Errorf("old file still present")
	}

	data, _ := os.ReadFile(filepath.Join(dir, "other.md"))
	if string(data) != "see [[New Page]]\n" {
		t.Errorf("other.md = %q", data)
	}
}
