package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/confspect/confspect/internal/registry"
)

const (
	appName    = "confspect"
	configFile = "config.yaml"
)

// Dir returns the OS-appropriate configuration directory for confspect.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/confspect or $HOME/.config/confspect
//   - macOS: $HOME/.config/confspect (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\confspect
func Dir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	default:
		// macOS, Linux and other Unix-like systems: XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// Path returns the full path to the overlay configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Overlay is the user-defined extension of the built-in application table.
// Applications registers whole new applications; ExtraLocations appends
// candidate locations to applications that already exist (unknown keys are
// silently ignored, matching the registry's additive contract).
type Overlay struct {
	Version        int                    `yaml:"version"`
	Applications   map[string]Application `yaml:"applications,omitempty"`
	ExtraLocations map[string][]Location  `yaml:"extra_locations,omitempty"`
}

// Application defines one user-supplied application entry.
type Application struct {
	DisplayName string     `yaml:"display_name"`
	BundleID    string     `yaml:"bundle_id,omitempty"`
	Configs     []Location `yaml:"configs"`
}

// Location is the on-disk form of a candidate location. Type and Format are
// plain strings here and validated when applied to the registry.
type Location struct {
	Path        string `yaml:"path"`
	Type        string `yaml:"type"`
	Format      string `yaml:"format,omitempty"`
	Description string `yaml:"description"`
}

// Load reads an overlay file. A missing file is not an error and yields an
// empty overlay; a malformed or wrongly-versioned file is a startup error.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overlay{Version: 1}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if overlay.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", overlay.Version)
	}

	return &overlay, nil
}

// LoadDefault loads the overlay from the platform config directory.
func LoadDefault() (*Overlay, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Apply merges the overlay into a registry: new applications are registered
// (built-in keys win and are left untouched), extra locations are appended.
// Invalid type or format strings fail the whole apply.
func (o *Overlay) Apply(reg *registry.Registry) error {
	for key, app := range o.Applications {
		configs := make([]registry.ConfigLocation, 0, len(app.Configs))
		for _, loc := range app.Configs {
			converted, err := loc.convert()
			if err != nil {
				return fmt.Errorf("application %q: %w", key, err)
			}
			configs = append(configs, converted)
		}
		reg.RegisterApp(key, registry.AppConfig{
			DisplayName: app.DisplayName,
			BundleID:    app.BundleID,
			Configs:     configs,
		})
	}

	for key, locs := range o.ExtraLocations {
		for _, loc := range locs {
			converted, err := loc.convert()
			if err != nil {
				return fmt.Errorf("extra location for %q: %w", key, err)
			}
			reg.AppendLocation(key, converted)
		}
	}

	return nil
}

// convert validates a raw location and produces the registry form.
func (l Location) convert() (registry.ConfigLocation, error) {
	return registry.NewLocation(l.Path, l.Type, l.Format, l.Description)
}

// WriteExample writes a commented example overlay to path, creating the
// parent directory if needed. The write is atomic (temp file + rename) so a
// crash never leaves a half-written config behind. Refuses to overwrite an
// existing file.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	example := Overlay{
		Version: 1,
		Applications: map[string]Application{
			"myapp": {
				DisplayName: "My App",
				Configs: []Location{
					{Path: "~/.myapprc", Type: "file", Format: "json", Description: "Main configuration"},
				},
			},
		},
		ExtraLocations: map[string][]Location{
			"vscode": {
				{Path: "~/.vscode-insiders/settings.json", Type: "file", Format: "json", Description: "Insiders settings"},
			},
		},
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# confspect configuration file
#
# "applications" defines new applications to expose; "extra_locations"
# appends candidate paths to applications that already exist (built-in or
# user-defined). Paths may start with ~/ to refer to the home directory.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
