package wikilink

import "fmt"

// ErrorKind discriminates parse failures.
type ErrorKind int

const (
	// KindEmptyLink marks input that is empty or whitespace only.
	KindEmptyLink ErrorKind = iota
	// KindMalformed marks a detected delimiter that then failed to split.
	// Unreachable under the current grammar, but kept as a reportable
	// failure rather than a silent fallback.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyLink:
		return "empty link"
	case KindMalformed:
		return "malformed link"
	default:
		return "unknown"
	}
}

// ParseError reports why link text could not be parsed.
// Text carries the offending input for diagnostics.
type ParseError struct {
	Kind ErrorKind
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}
