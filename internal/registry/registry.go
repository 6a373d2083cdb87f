package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Registry holds the application table. It is an explicit state object owned
// by whoever constructs it (server instance, CLI command); there is no
// package-level instance. Not safe for concurrent mutation.
type Registry struct {
	home string
	keys []string
	apps map[string]*AppConfig
}

// New creates a registry seeded with the built-in application table, using
// the current user's home directory for path resolution.
func New() (*Registry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return NewWithHome(home), nil
}

// NewWithHome creates a registry seeded with the built-in table, resolving
// "~/" against the given home directory. Tests inject a temp dir here.
func NewWithHome(home string) *Registry {
	r := &Registry{
		home: home,
		apps: make(map[string]*AppConfig),
	}
	for _, e := range builtinApps() {
		app := e.app
		r.register(e.key, &app)
	}
	return r
}

// Home returns the home directory this registry resolves "~/" against.
func (r *Registry) Home() string {
	return r.home
}

// register adds an application under a canonical lowercase key.
func (r *Registry) register(key string, app *AppConfig) {
	canonical := strings.ToLower(key)
	r.keys = append(r.keys, canonical)
	r.apps[canonical] = app
}

// Keys returns the known application keys in table order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get looks up an application by key, case-insensitively.
func (r *Registry) Get(key string) (*AppConfig, bool) {
	app, ok := r.apps[strings.ToLower(key)]
	return app, ok
}

// RegisterApp adds a new application to the table. Used by the user overlay
// file at startup; built-in entries win, so registering an existing key
// returns false and changes nothing.
func (r *Registry) RegisterApp(key string, app AppConfig) bool {
	canonical := strings.ToLower(key)
	if _, exists := r.apps[canonical]; exists {
		return false
	}
	r.register(canonical, &app)
	return true
}

// AppendLocation appends a candidate location to an existing application's
// list. Unknown keys are a silent no-op: runtime additions only ever extend
// applications that are already in the table.
func (r *Registry) AppendLocation(key string, loc ConfigLocation) {
	app, ok := r.apps[strings.ToLower(key)]
	if !ok {
		return
	}
	app.Configs = append(app.Configs, loc)
}

// ResolveApp resolves the candidate locations for an application: the home
// placeholder is expanded, the target is stat'ed, and only candidates that
// exist and match their declared kind are kept, in declaration order. A
// candidate that cannot be stat'ed (missing, permission denied) is dropped
// without failing the rest. Unknown keys resolve to an empty slice.
func (r *Registry) ResolveApp(key string) []ConfigLocation {
	app, ok := r.Get(key)
	if !ok {
		return nil
	}

	var resolved []ConfigLocation
	for _, loc := range app.Configs {
		path := ExpandHome(loc.Path, r.home)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() != (loc.Type == LocationDirectory) {
			continue
		}
		loc.Path = path
		resolved = append(resolved, loc)
	}
	return resolved
}

// ResolveAll resolves every known application. Applications whose candidates
// all fail resolution map to an empty slice.
func (r *Registry) ResolveAll() map[string][]ConfigLocation {
	out := make(map[string][]ConfigLocation, len(r.keys))
	for _, key := range r.keys {
		out[key] = r.ResolveApp(key)
	}
	return out
}

// ExpandHome rewrites a leading "~/" (or a bare "~") to the given home
// directory. It is a pure string transform; the home value is always passed
// explicitly so resolution is testable without touching the environment.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
