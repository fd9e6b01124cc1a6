package markdown

import "testing"

func TestHeadings(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  []Heading
	}{
		{
			name:  "atx levels",
			input: "# Title\n\ntext\n\n## Section\n\n### Deep\n",
			want: []Heading{
				{Level: 1, Text: "Title", Line: 1},
				{Level: 2, Text: "Section", Line: 5},
				{Level: 3, Text: "Deep", Line: 7},
			},
		},
		{
			name:  "setext heading",
			input: "Title\n=====\n\nbody\n",
			want: []Heading{
				{Level: 1, Text: "Title", Line: 1},
			},
		},
		{
			name:  "heading after frontmatter",
			input: "---\ntitle: t\n---\n# First\n",
			want: []Heading{
				{Level: 1, Text: "First", Line: 4},
			},
		},
		{
			name:  "code fence ignored",
			input: "```\n# not a heading\n```\n# Real\n",
			want: []Heading{
				{Level: 1, Text: "Real", Line: 4},
			},
		},
		{
			name:  "no headings",
			input: "just text\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Headings([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d headings, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	input := "---\ntitle: Planning\ntags: [work]\n---\n# Plan\n\nSee [[Roadmap#Q3|the roadmap]].\n"

	doc := NewParser().Parse([]byte(input))

	if doc.Frontmatter == nil || doc.Frontmatter.Title != "Planning" {
		t.Fatalf("frontmatter = %+v", doc.Frontmatter)
	}
	if len(doc.Headings) != 1 || doc.Headings[0].Text != "Plan" || doc.Headings[0].Line != 5 {
		t.Fatalf("headings = %+v", doc.Headings)
	}
	if len(doc.Links) != 1 {
		t.Fatalf("links = %+v", doc.Links)
	}
	link := doc.Links[0]
	if link.PageName != "Roadmap" || link.Heading != "Q3" || link.DisplayName != "the roadmap" || !link.IsAlias {
		t.Errorf("link = %+v", link)
	}
	if link.Line != 7 {
		t.Errorf("link line = %d, want 7", link.Line)
	}

	if got := doc.PlainContent(); got != "# Plan\n\nSee [[Roadmap#Q3|the roadmap]].\n" {
		t.Errorf("PlainContent() = %q", got)
	}
}
