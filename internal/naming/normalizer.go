package naming

import (
	"regexp"
	"strings"
)

// Normalizer maps page names to file-system-safe names under a fixed
// strategy. The zero value is a passthrough normalizer.
type Normalizer struct {
	strategy Strategy
}

func NewNormalizer(strategy Strategy) *Normalizer {
	return &Normalizer{strategy: strategy}
}

func (n *Normalizer) Strategy() Strategy {
	return n.strategy
}

var (
	kebabUnsafe = strings.NewReplacer(
		"/", "-", ":", "-", `\`, "-",
		"?", "-", "*", "-", "|", "-",
		`"`, "-", "<", "-", ">", "-",
	)
	snakeUnsafe = strings.NewReplacer(
		"/", "", ":", "", `\`, "",
		"?", "", "*", "", "|", "",
		`"`, "", "<", "", ">", "",
	)

	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	underscoreRun = regexp.MustCompile(`_{2,}`)
)

// FileName converts a page name to a file name (without extension).
// Total for any input, including the empty string.
func (n *Normalizer) FileName(pageName string) string {
	switch n.strategy {
	case StrategyKebab:
		return kebab(pageName)
	case StrategySnake:
		return snake(pageName)
	default:
		return pageName
	}
}

// Unsafe characters are handled before whitespace is collapsed so that
// whitespace next to a dropped character never leaves a stray separator.
func kebab(name string) string {
	s := strings.ToLower(name)
	s = kebabUnsafe.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func snake(name string) string {
	s := strings.ToLower(name)
	s = snakeUnsafe.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
