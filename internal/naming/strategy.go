package naming

import "fmt"

// Strategy selects how page names map to file names.
type Strategy int

const (
	// StrategyPassthrough leaves the page name unchanged.
	StrategyPassthrough Strategy = iota
	// StrategyKebab lowercases and joins words with hyphens.
	StrategyKebab
	// StrategySnake lowercases and joins words with underscores.
	StrategySnake
)

func (s Strategy) String() string {
	switch s {
	case StrategyPassthrough:
		return "passthrough"
	case StrategyKebab:
		return "kebab-case"
	case StrategySnake:
		return "snake_case"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a config string to a Strategy. The empty string
// means the default, passthrough. Anything else unrecognized is an error.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "passthrough":
		return StrategyPassthrough, nil
	case "kebab-case":
		return StrategyKebab, nil
	case "snake_case":
		return StrategySnake, nil
	default:
		return StrategyPassthrough, fmt.Errorf("unknown naming strategy %q", s)
	}
}
