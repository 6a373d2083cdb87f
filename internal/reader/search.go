package reader

import (
	"fmt"
	"strings"

	"github.com/confspect/confspect/internal/registry"
)

// Search reads a location and returns one "Line N: <trimmed line>" string
// for every line containing term, matched case-insensitively, in line order
// (1-indexed). Any read or parse error yields an empty result; the caller
// cannot tell "no match" from "unreadable" here, which is the accepted
// contract for search.
func Search(loc registry.ConfigLocation, term string) []string {
	cc := Read(loc)
	if cc.Err != "" {
		return nil
	}

	needle := strings.ToLower(term)
	var matches []string
	for i, line := range strings.Split(cc.Content, "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			matches = append(matches, fmt.Sprintf("Line %d: %s", i+1, strings.TrimSpace(line)))
		}
	}
	return matches
}
