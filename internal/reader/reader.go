package reader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"howett.net/plist"

	"github.com/confspect/confspect/internal/registry"
)

// ConfigContent is the result of reading one resolved location. It is
// transient: produced per call, never cached. Err is an inline error string
// rather than a Go error so that one failing location never aborts a
// multi-location read. Parsed is discriminated by Format: a JSON-like tree
// for json/plist/yaml/toml, a []string listing for directories, nil for
// plain text or failed parses.
type ConfigContent struct {
	Path    string          `json:"path"`
	Content string          `json:"content"`
	Format  registry.Format `json:"format"`
	Parsed  any             `json:"parsed,omitempty"`
	Err     string          `json:"error,omitempty"`
}

// Read loads a resolved location. It always returns a usable ConfigContent;
// see the package comment for the failure contract.
func Read(loc registry.ConfigLocation) ConfigContent {
	if loc.Type == registry.LocationDirectory {
		return readDirectory(loc)
	}
	return readFile(loc)
}

// readDirectory lists a directory, excluding dotfiles, names sorted.
func readDirectory(loc registry.ConfigLocation) ConfigContent {
	cc := ConfigContent{Path: loc.Path, Format: registry.FormatDirectory}

	entries, err := os.ReadDir(loc.Path)
	if err != nil {
		cc.Err = err.Error()
		return cc
	}

	// os.ReadDir returns entries sorted by name already.
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s (%d entries)\n", loc.Path, len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", name)
	}

	cc.Content = b.String()
	cc.Parsed = names
	return cc
}

// readFile reads the whole file and attempts a format-specific parse. A parse
// failure is recorded in Err while the raw content stays available.
func readFile(loc registry.ConfigLocation) ConfigContent {
	cc := ConfigContent{Path: loc.Path, Format: loc.Format}

	data, err := os.ReadFile(loc.Path)
	if err != nil {
		cc.Err = err.Error()
		return cc
	}
	cc.Content = string(data)

	var parsed any
	switch loc.Format {
	case registry.FormatJSON:
		err = json.Unmarshal(data, &parsed)
	case registry.FormatPlist:
		_, err = plist.Unmarshal(data, &parsed)
	case registry.FormatYAML:
		err = yaml.Unmarshal(data, &parsed)
	case registry.FormatTOML:
		err = toml.Unmarshal(data, &parsed)
	default:
		// text (and a file mislabeled as directory): raw content only.
		return cc
	}

	if err != nil {
		cc.Err = fmt.Sprintf("failed to parse as %s: %v", loc.Format, err)
		return cc
	}
	cc.Parsed = parsed
	return cc
}
