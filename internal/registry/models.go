package registry

import "fmt"

// LocationType is the filesystem kind a candidate location is expected to be.
type LocationType string

const (
	// LocationFile expects a regular file at the resolved path.
	LocationFile LocationType = "file"
	// LocationDirectory expects a directory at the resolved path.
	LocationDirectory LocationType = "directory"
)

// ParseLocationType converts a string into a LocationType.
// Returns an error for anything other than "file" or "directory".
func ParseLocationType(s string) (LocationType, error) {
	switch LocationType(s) {
	case LocationFile, LocationDirectory:
		return LocationType(s), nil
	default:
		return "", fmt.Errorf("invalid location type %q (expected file or directory)", s)
	}
}

// Format identifies how a location's content should be parsed.
type Format string

const (
	FormatJSON      Format = "json"
	FormatPlist     Format = "plist"
	FormatYAML      Format = "yaml"
	FormatTOML      Format = "toml"
	FormatText      Format = "text"
	FormatDirectory Format = "directory"
)

// ParseFormat converts a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatPlist, FormatYAML, FormatTOML, FormatText, FormatDirectory:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format %q (expected json, plist, yaml, toml, text or directory)", s)
	}
}

// ConfigLocation is one candidate configuration path plus the metadata
// describing how to interpret it. Path may start with "~/" until resolution
// rewrites it to an absolute path. Directory locations always carry
// FormatDirectory.
type ConfigLocation struct {
	Path        string       `json:"path" yaml:"path"`
	Type        LocationType `json:"type" yaml:"type"`
	Format      Format       `json:"format" yaml:"format"`
	Description string       `json:"description" yaml:"description"`
}

// NewLocation validates raw strings and builds a ConfigLocation. An empty
// format defaults to directory for directory locations and text for files;
// a directory location with any other format is rejected.
func NewLocation(path, typ, format, description string) (ConfigLocation, error) {
	t, err := ParseLocationType(typ)
	if err != nil {
		return ConfigLocation{}, fmt.Errorf("location %s: %w", path, err)
	}

	if format == "" {
		if t == LocationDirectory {
			format = string(FormatDirectory)
		} else {
			format = string(FormatText)
		}
	}
	f, err := ParseFormat(format)
	if err != nil {
		return ConfigLocation{}, fmt.Errorf("location %s: %w", path, err)
	}

	if t == LocationDirectory && f != FormatDirectory {
		return ConfigLocation{}, fmt.Errorf("location %s: directory locations must use the directory format", path)
	}

	return ConfigLocation{Path: path, Type: t, Format: f, Description: description}, nil
}

// AppConfig describes one supported application: its display name, an
// optional macOS bundle identifier, and the ordered candidate locations.
type AppConfig struct {
	DisplayName string           `json:"display_name"`
	BundleID    string           `json:"bundle_id,omitempty"`
	Configs     []ConfigLocation `json:"configs"`
}
