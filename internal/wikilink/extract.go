package wikilink

import (
	"bufio"
	"bytes"
	"strings"
)

// Occurrence locates one [[wiki link]] span in a document.
type Occurrence struct {
	Link
	Raw  string // interior text as written, delimiters stripped
	Line int    // 1-based line number
	Col  int    // 0-based column of the opening [[
}

// Extract finds all [[wiki links]] in markdown content.
// Supports [[page]], [[page#heading]], [[page|alias]], [[page#heading|alias]].
// Interiors that fail to parse are skipped, so one bad link never aborts
// the rest of the document.
func Extract(content []byte) []Occurrence {
	var occs []Occurrence
	scanner := bufio.NewScanner(bytes.NewReader(content))

	inFrontmatter := false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip frontmatter
		if lineNum == 1 && strings.TrimSpace(line) == "---" {
			inFrontmatter = true
			continue
		}
		if inFrontmatter {
			if strings.TrimSpace(line) == "---" {
				inFrontmatter = false
			}
			continue
		}

		// Find all [[ ]] in the line
		col := 0
		for col < len(line)-3 {
			idx := strings.Index(line[col:], "[[")
			if idx == -1 {
				break
			}
			start := col + idx + 2

			end := strings.Index(line[start:], "]]")
			if end == -1 {
				break
			}

			inner := line[start : start+end]
			link, err := Parse(inner)
			if err != nil {
				col = start + end + 2
				continue
			}

			occs = append(occs, Occurrence{
				Link: link,
				Raw:  inner,
				Line: lineNum,
				Col:  col + idx,
			})
			col = start + end + 2
		}
	}

	return occs
}

// At returns the occurrence covering the given position, or nil if the
// position is not inside any link span (delimiters included).
func At(occs []Occurrence, line, col int) *Occurrence {
	for i := range occs {
		o := &occs[i]
		if o.Line != line {
			continue
		}
		end := o.Col + len(o.Raw) + 4 // [[ + interior + ]]
		if col >= o.Col && col < end {
			return o
		}
	}
	return nil
}
