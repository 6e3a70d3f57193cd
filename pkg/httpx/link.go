// Package httpx holds small HTTP client helpers shared across the SDK:
// Link-header pagination metadata parsing and outgoing request throttling.
package httpx

import "strings"

// ParseLink extracts the rel="next" and rel="prev" continuation URLs from an
// RFC 8288 Link header, e.g.
//
//	<https://example.social/api/v1/favourites?max_id=5>; rel="next",
//	<https://example.social/api/v1/favourites?since_id=9>; rel="prev"
//
// URLs are returned verbatim. Entries with other rel values are ignored, as
// is anything malformed; a missing relation comes back as "".
func ParseLink(header string) (next, prev string) {
	for _, entry := range strings.Split(header, ",") {
		parts := strings.Split(entry, ";")
		if len(parts) < 2 {
			continue
		}

		target := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = strings.Trim(target, "<>")

		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)
			rel, ok := strings.CutPrefix(param, "rel=")
			if !ok {
				continue
			}
			switch strings.Trim(rel, `"`) {
			case "next":
				next = target
			case "prev":
				prev = target
			}
		}
	}
	return next, prev
}

// ParseSpaceDelimitedFields splits a space-delimited string into fields.
// This is useful for parsing space-separated lists like OAuth scopes.
// Returns nil if the input string is empty or contains only whitespace.
func ParseSpaceDelimitedFields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
