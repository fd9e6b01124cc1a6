package wikilink

import "strings"

// Link is a parsed wiki link interior: the text between [[ and ]].
type Link struct {
	PageName    string // target page name
	Heading     string // heading fragment, "" if absent
	DisplayName string // alias text, "" if absent
	IsAlias     bool   // true when an alias delimiter was present
}

// Parse interprets raw link-interior text.
// Supports page, page#heading, page|alias, page#heading|alias.
// The first | takes priority over the first #, so "a#b|c" is an aliased
// heading link, and any later | or # is kept verbatim in the right-hand
// segment. An empty alias side ("page|") still counts as an alias.
func Parse(linkText string) (Link, error) {
	trimmed := strings.TrimSpace(linkText)
	if trimmed == "" {
		return Link{}, &ParseError{Kind: KindEmptyLink, Text: linkText}
	}

	var link Link

	if strings.Contains(trimmed, "|") {
		target, display, ok := strings.Cut(trimmed, "|")
		if !ok {
			return Link{}, &ParseError{Kind: KindMalformed, Text: linkText}
		}
		link.IsAlias = true
		link.DisplayName = strings.TrimSpace(display)
		target = strings.TrimSpace(target)

		if strings.Contains(target, "#") {
			page, heading, ok := strings.Cut(target, "#")
			if !ok {
				return Link{}, &ParseError{Kind: KindMalformed, Text: linkText}
			}
			link.PageName = strings.TrimSpace(page)
			link.Heading = strings.TrimSpace(heading)
		} else {
			link.PageName = target
		}
		return link, nil
	}

	if strings.Contains(trimmed, "#") {
		page, heading, ok := strings.Cut(trimmed, "#")
		if !ok {
			return Link{}, &ParseError{Kind: KindMalformed, Text: linkText}
		}
		link.PageName = strings.TrimSpace(page)
		link.Heading = strings.TrimSpace(heading)
		return link, nil
	}

	link.PageName = trimmed
	return link, nil
}
