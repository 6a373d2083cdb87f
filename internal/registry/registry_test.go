package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinTable(t *testing.T) {
	r := NewWithHome("/home/test")

	keys := r.Keys()
	if len(keys) == 0 {
		t.Fatal("Keys() returned no built-in applications")
	}

	seen := make(map[string]bool)
	for _, key := range keys {
		if seen[key] {
			t.Errorf("duplicate application key %q", key)
		}
		seen[key] = true

		app, ok := r.Get(key)
		if !ok {
			t.Fatalf("Get(%q) not found for key returned by Keys()", key)
		}
		if app.DisplayName == "" {
			t.Errorf("%s: empty display name", key)
		}
		if len(app.Configs) == 0 {
			t.Errorf("%s: no candidate locations", key)
		}
		for _, loc := range app.Configs {
			// Directory locations always carry the directory format.
			if loc.Type == LocationDirectory && loc.Format != FormatDirectory {
				t.Errorf("%s: directory location %s has format %q", key, loc.Path, loc.Format)
			}
			if loc.Type == LocationFile && loc.Format == FormatDirectory {
				t.Errorf("%s: file location %s has directory format", key, loc.Path)
			}
			if loc.Description == "" {
				t.Errorf("%s: location %s has no description", key, loc.Path)
			}
		}
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	r := NewWithHome("/home/test")

	lower, ok := r.Get("vscode")
	if !ok {
		t.Fatal(`Get("vscode") not found`)
	}
	mixed, ok := r.Get("VSCode")
	if !ok {
		t.Fatal(`Get("VSCode") not found`)
	}
	if lower != mixed {
		t.Error("case variants of the same key returned different entries")
	}

	if _, ok := r.Get("no-such-app"); ok {
		t.Error("Get() found an unknown application")
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{"tilde prefix", "~/.gitconfig", "/home/test", "/home/test/.gitconfig"},
		{"nested path", "~/.config/nvim/init.lua", "/home/test", "/home/test/.config/nvim/init.lua"},
		{"bare tilde", "~", "/home/test", "/home/test"},
		{"absolute path untouched", "/etc/hosts", "/home/test", "/etc/hosts"},
		{"mid-path tilde untouched", "/data/~backup", "/home/test", "/data/~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.path, tt.home); got != tt.want {
				t.Errorf("ExpandHome(%q, %q) = %q, want %q", tt.path, tt.home, got, tt.want)
			}
		})
	}
}

func TestResolveApp(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	// Only one of git's two candidates exists.
	gitconfig := filepath.Join(home, ".gitconfig")
	if err := os.WriteFile(gitconfig, []byte("[user]\n\tname = Test\n"), 0600); err != nil {
		t.Fatal(err)
	}

	resolved := r.ResolveApp("git")
	if len(resolved) != 1 {
		t.Fatalf("ResolveApp(git) returned %d locations, want 1", len(resolved))
	}
	if resolved[0].Path != gitconfig {
		t.Errorf("resolved path = %q, want %q", resolved[0].Path, gitconfig)
	}
	if resolved[0].Description != "Global configuration" {
		t.Errorf("resolved description = %q", resolved[0].Description)
	}
}

func TestResolveAppTypeMismatch(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	// A directory where a file is expected must be excluded.
	if err := os.MkdirAll(filepath.Join(home, ".gitconfig"), 0700); err != nil {
		t.Fatal(err)
	}

	if resolved := r.ResolveApp("git"); len(resolved) != 0 {
		t.Errorf("ResolveApp(git) = %v, want empty for type mismatch", resolved)
	}
}

func TestResolveAppDirectoryType(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	sshDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		t.Fatal(err)
	}

	resolved := r.ResolveApp("ssh")
	if len(resolved) != 1 {
		t.Fatalf("ResolveApp(ssh) returned %d locations, want 1", len(resolved))
	}
	if resolved[0].Path != sshDir {
		t.Errorf("resolved path = %q, want %q", resolved[0].Path, sshDir)
	}
	if resolved[0].Type != LocationDirectory {
		t.Errorf("resolved type = %q, want directory", resolved[0].Type)
	}
}

func TestResolveAppUnknownKey(t *testing.T) {
	r := NewWithHome(t.TempDir())
	if resolved := r.ResolveApp("no-such-app"); len(resolved) != 0 {
		t.Errorf("ResolveApp(unknown) = %v, want empty", resolved)
	}
}

func TestResolveAppPreservesDeclarationOrder(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	for _, name := range []string{".zshrc", ".zshenv", ".zprofile"} {
		if err := os.WriteFile(filepath.Join(home, name), []byte("export FOO=1\n"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	resolved := r.ResolveApp("zsh")
	if len(resolved) != 3 {
		t.Fatalf("ResolveApp(zsh) returned %d locations, want 3", len(resolved))
	}
	want := []string{".zshrc", ".zshenv", ".zprofile"}
	for i, loc := range resolved {
		if filepath.Base(loc.Path) != want[i] {
			t.Errorf("resolved[%d] = %s, want %s", i, filepath.Base(loc.Path), want[i])
		}
	}
}

func TestAppendLocation(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	extra := filepath.Join(home, "cursor-rules.json")
	if err := os.WriteFile(extra, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	before := len(mustGet(t, r, "cursor").Configs)
	r.AppendLocation("cursor", ConfigLocation{
		Path:        extra,
		Type:        LocationFile,
		Format:      FormatJSON,
		Description: "Project rules",
	})

	app := mustGet(t, r, "cursor")
	if len(app.Configs) != before+1 {
		t.Fatalf("Configs length = %d, want %d", len(app.Configs), before+1)
	}

	resolved := r.ResolveApp("cursor")
	found := false
	for _, loc := range resolved {
		if loc.Path == extra {
			found = true
		}
	}
	if !found {
		t.Error("appended location missing from resolution")
	}
}

func TestAppendLocationUnknownKey(t *testing.T) {
	r := NewWithHome(t.TempDir())
	keysBefore := len(r.Keys())

	r.AppendLocation("no-such-app", ConfigLocation{
		Path: "~/nothing", Type: LocationFile, Format: FormatText, Description: "x",
	})

	if len(r.Keys()) != keysBefore {
		t.Error("AppendLocation for unknown key changed the table")
	}
	if _, ok := r.Get("no-such-app"); ok {
		t.Error("AppendLocation created a new application entry")
	}
}

func TestRegisterApp(t *testing.T) {
	r := NewWithHome(t.TempDir())

	ok := r.RegisterApp("MyApp", AppConfig{
		DisplayName: "My App",
		Configs: []ConfigLocation{
			{Path: "~/.myapprc", Type: LocationFile, Format: FormatJSON, Description: "Main configuration"},
		},
	})
	if !ok {
		t.Fatal("RegisterApp returned false for a new key")
	}
	if _, found := r.Get("myapp"); !found {
		t.Error("registered app not found under lowercase key")
	}

	keys := r.Keys()
	if keys[len(keys)-1] != "myapp" {
		t.Errorf("new app key should enumerate last, got %q", keys[len(keys)-1])
	}

	// Built-in entries win over overlay re-registration.
	vscode := mustGet(t, r, "vscode")
	if ok := r.RegisterApp("vscode", AppConfig{DisplayName: "Impostor"}); ok {
		t.Error("RegisterApp overwrote an existing key")
	}
	if got := mustGet(t, r, "vscode"); got != vscode || got.DisplayName != "Visual Studio Code" {
		t.Error("existing entry was replaced")
	}
}

func TestResolveAll(t *testing.T) {
	home := t.TempDir()
	r := NewWithHome(home)

	if err := os.WriteFile(filepath.Join(home, ".npmrc"), []byte("registry=https://registry.npmjs.org/\n"), 0600); err != nil {
		t.Fatal(err)
	}

	all := r.ResolveAll()
	if len(all) != len(r.Keys()) {
		t.Fatalf("ResolveAll returned %d entries, want %d", len(all), len(r.Keys()))
	}
	if len(all["npm"]) != 1 {
		t.Errorf("npm resolved %d locations, want 1", len(all["npm"]))
	}
	if len(all["docker"]) != 0 {
		t.Errorf("docker resolved %d locations, want 0", len(all["docker"]))
	}
}

func TestParseLocationType(t *testing.T) {
	if _, err := ParseLocationType("file"); err != nil {
		t.Errorf("ParseLocationType(file) error = %v", err)
	}
	if _, err := ParseLocationType("directory"); err != nil {
		t.Errorf("ParseLocationType(directory) error = %v", err)
	}
	if _, err := ParseLocationType("symlink"); err == nil {
		t.Error("ParseLocationType(symlink) should fail")
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "plist", "yaml", "toml", "text", "directory"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%s) error = %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func mustGet(t *testing.T, r *Registry, key string) *AppConfig {
	t.Helper()
	app, ok := r.Get(key)
	if !ok {
		t.Fatalf("Get(%q) not found", key)
	}
	return app
}
