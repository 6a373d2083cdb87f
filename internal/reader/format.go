package reader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confspect/confspect/internal/registry"
)

// maxDisplayLines caps how much raw text FormatForDisplay emits before
// truncating with a line-count notice.
const maxDisplayLines = 50

// FormatForDisplay renders a ConfigContent as human-readable text: a one-line
// error message when the read or parse failed, the pre-built listing for
// directories, a pretty-printed structural dump for successfully parsed JSON
// and property-list content, and raw text (truncated to maxDisplayLines)
// otherwise.
func FormatForDisplay(cc ConfigContent) string {
	if cc.Err != "" {
		return fmt.Sprintf("Error reading %s: %s", cc.Path, cc.Err)
	}

	switch cc.Format {
	case registry.FormatDirectory:
		return strings.TrimRight(cc.Content, "\n")
	case registry.FormatJSON, registry.FormatPlist:
		if cc.Parsed != nil {
			if dump, err := json.MarshalIndent(cc.Parsed, "", "  "); err == nil {
				return string(dump)
			}
		}
	}

	return truncateLines(cc.Content, maxDisplayLines)
}

// truncateLines keeps the first max lines and appends a notice with the
// total line count when content is longer.
func truncateLines(content string, max int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) <= max {
		return strings.Join(lines, "\n")
	}
	shown := strings.Join(lines[:max], "\n")
	return fmt.Sprintf("%s\n... (%d more lines, %d total)", shown, len(lines)-max, len(lines))
}
