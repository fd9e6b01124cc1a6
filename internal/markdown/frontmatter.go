package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block fenced by --- at the top of a note.
type Frontmatter struct {
	Title  string  `yaml:"title"`
	Status string  `yaml:"status"`
	Tags   TagList `yaml:"tags"`
}

// TagList accepts both a YAML sequence ([a, b]) and a comma-separated
// scalar (a, b), both of which appear in real vaults.
type TagList []string

func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*t = items
		return nil
	case yaml.ScalarNode:
		var tags TagList
		for _, tag := range strings.Split(value.Value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
		return nil
	default:
		return fmt.Errorf("tags: unsupported YAML node kind %v", value.Kind)
	}
}

// ExtractFrontmatter parses the leading --- delimited YAML block.
// Returns nil when there is no block or the fence is unclosed. A block
// with invalid YAML still counts as frontmatter, with empty fields.
func ExtractFrontmatter(content []byte) *Frontmatter {
	raw, ok := frontmatterBlock(content)
	if !ok {
		return nil
	}

	fm := &Frontmatter{}
	if err := yaml.Unmarshal(raw, fm); err != nil {
		return &Frontmatter{}
	}
	return fm
}

// StripFrontmatter returns content without a leading frontmatter block,
// plus the number of lines removed. An unclosed fence is ordinary content.
func StripFrontmatter(content []byte) ([]byte, int) {
	lines := 0
	offset := 0
	first := true

	for offset < len(content) {
		var line []byte
		next := len(content)
		if end := bytes.IndexByte(content[offset:], '\n'); end >= 0 {
			line = content[offset : offset+end]
			next = offset + end + 1
		} else {
			line = content[offset:]
		}

		trimmed := strings.TrimSpace(string(line))
		if first {
			if trimmed != "---" {
				return content, 0
			}
			first = false
		} else if trimmed == "---" {
			return content[next:], lines + 1
		}

		lines++
		offset = next
	}

	return content, 0
}

// frontmatterBlock returns the raw YAML between the fences.
func frontmatterBlock(content []byte) ([]byte, bool) {
	body, skipped := StripFrontmatter(content)
	if skipped == 0 {
		return nil, false
	}

	block := content[:len(content)-len(body)]
	// drop the fence lines
	block = block[bytes.IndexByte(block, '\n')+1:]
	if i := bytes.LastIndex(block, []byte("---")); i >= 0 {
		block = block[:i]
	}
	return block, true
}
