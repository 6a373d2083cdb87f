package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/confspect/confspect/internal/registry"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	home := t.TempDir()
	return New(registry.NewWithHome(home)), home
}

func seedFile(t *testing.T, home, name, content string) string {
	t.Helper()
	path := filepath.Join(home, name)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestListApps(t *testing.T) {
	s, home := newTestServer(t)
	seedFile(t, home, ".gitconfig", "[user]\n\tname = Test\n")

	res, err := s.handleListApps(context.Background(), callReq("list_apps", nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, "git: Git - 1 config(s) found") {
		t.Errorf("missing resolvable git entry in:\n%s", text)
	}
	if !strings.Contains(text, "docker: Docker - no configs found") {
		t.Errorf("missing unresolvable docker entry in:\n%s", text)
	}
	if !strings.Contains(text, "com.microsoft.VSCode") {
		t.Errorf("bundle id missing in:\n%s", text)
	}
}

func TestFindConfig(t *testing.T) {
	s, home := newTestServer(t)
	gitconfig := seedFile(t, home, ".gitconfig", "[user]\n\tname = Test\n")

	res, err := s.handleFindConfig(context.Background(), callReq("find_config", map[string]any{"app": "GIT"}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, "Git configuration files:") {
		t.Errorf("missing header in:\n%s", text)
	}
	if !strings.Contains(text, gitconfig) {
		t.Errorf("missing resolved path in:\n%s", text)
	}
	if !strings.Contains(text, "file (text)") {
		t.Errorf("missing type/format in:\n%s", text)
	}
}

func TestFindConfigUnknownApp(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleFindConfig(context.Background(), callReq("find_config", map[string]any{"app": "photoshop"}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, `No configuration files found for "photoshop"`) {
		t.Errorf("missing none-found message in:\n%s", text)
	}
	if !strings.Contains(text, "Valid applications:") || !strings.Contains(text, "vscode") {
		t.Errorf("missing valid key list in:\n%s", text)
	}
	if res.IsError {
		t.Error("unknown app must not be a protocol error")
	}
}

func TestFindConfigMissingArgument(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleFindConfig(context.Background(), callReq("find_config", map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("a missing required argument should produce an error result")
	}
}

func TestReadConfig(t *testing.T) {
	s, home := newTestServer(t)
	seedFile(t, home, ".zshrc", "export EDITOR=vim\n")
	seedFile(t, home, ".zshenv", "export LANG=en_US.UTF-8\n")

	res, err := s.handleReadConfig(context.Background(), callReq("read_config", map[string]any{"app": "zsh"}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, "export EDITOR=vim") || !strings.Contains(text, "export LANG=en_US.UTF-8") {
		t.Errorf("missing file contents in:\n%s", text)
	}
	if !strings.Contains(text, readSeparator) {
		t.Errorf("missing separator between configs in:\n%s", text)
	}
	// Declaration order survives the concurrent read.
	if strings.Index(text, ".zshrc") > strings.Index(text, ".zshenv") {
		t.Errorf("sections out of declaration order in:\n%s", text)
	}
}

func TestReadConfigPathFilter(t *testing.T) {
	s, home := newTestServer(t)
	seedFile(t, home, ".zshrc", "export EDITOR=vim\n")
	seedFile(t, home, ".zshenv", "export LANG=en_US.UTF-8\n")

	res, err := s.handleReadConfig(context.Background(), callReq("read_config", map[string]any{
		"app": "zsh", "path_filter": "zshenv",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if strings.Contains(text, "EDITOR") {
		t.Errorf("filtered-out config present in:\n%s", text)
	}
	if !strings.Contains(text, "LANG") {
		t.Errorf("filtered-in config missing in:\n%s", text)
	}

	res, err = s.handleReadConfig(context.Background(), callReq("read_config", map[string]any{
		"app": "zsh", "path_filter": "no-such-path",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, res), "No configuration paths") {
		t.Error("expected a no-paths-match message")
	}
}

func TestSearchConfig(t *testing.T) {
	s, home := newTestServer(t)
	seedFile(t, home, ".zshrc", "# shell setup\nalias ll='ls -l'\nexport THEME=solarized\n")
	seedFile(t, home, ".zshenv", "export LANG=en_US.UTF-8\n")

	res, err := s.handleSearchConfig(context.Background(), callReq("search_config", map[string]any{
		"app": "zsh", "term": "theme",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)

	if !strings.Contains(text, "Line 3: export THEME=solarized") {
		t.Errorf("missing match line in:\n%s", text)
	}
	// Only locations with matches appear.
	if strings.Contains(text, ".zshenv") {
		t.Errorf("matchless config listed in:\n%s", text)
	}
}

func TestSearchConfigNoMatches(t *testing.T) {
	s, home := newTestServer(t)
	seedFile(t, home, ".zshrc", "alias ll='ls -l'\n")

	res, err := s.handleSearchConfig(context.Background(), callReq("search_config", map[string]any{
		"app": "zsh", "term": "keybinding",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, res), `No matches for "keybinding"`) {
		t.Error("expected a no-matches message")
	}
}

func TestAddLocation(t *testing.T) {
	s, home := newTestServer(t)
	extra := seedFile(t, home, "extra-settings.json", `{"a": 1}`)

	res, err := s.handleAddLocation(context.Background(), callReq("add_config_location", map[string]any{
		"app": "cursor", "path": extra, "type": "file", "format": "json", "description": "Extra settings",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("add failed: %s", resultText(t, res))
	}

	find, err := s.handleFindConfig(context.Background(), callReq("find_config", map[string]any{"app": "cursor"}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, find), extra) {
		t.Error("added location missing from find_config")
	}
}

func TestAddLocationUnknownApp(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleAddLocation(context.Background(), callReq("add_config_location", map[string]any{
		"app": "photoshop", "path": "~/x", "type": "file", "description": "x",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `Unknown application "photoshop"`) || !strings.Contains(text, "Valid applications:") {
		t.Errorf("unexpected response:\n%s", text)
	}
	if res.IsError {
		t.Error("unknown app must not be a protocol error")
	}
}

func TestAddLocationInvalidType(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleAddLocation(context.Background(), callReq("add_config_location", map[string]any{
		"app": "git", "path": "~/x", "type": "symlink", "description": "x",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("invalid type should produce an error result")
	}
}

func TestRenderResource(t *testing.T) {
	s, home := newTestServer(t)
	gitconfig := seedFile(t, home, ".gitconfig", "[user]\n\tname = Test\n")

	text, err := s.renderResource("git")
	if err != nil {
		t.Fatal(err)
	}

	var payload struct {
		App         string `json:"app"`
		DisplayName string `json:"display_name"`
		Configs     []struct {
			Description string `json:"description"`
			Path        string `json:"path"`
			Content     string `json:"content"`
		} `json:"configs"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("resource is not valid JSON: %v", err)
	}

	if payload.App != "git" || payload.DisplayName != "Git" {
		t.Errorf("payload header = %+v", payload)
	}
	if len(payload.Configs) != 1 {
		t.Fatalf("payload has %d configs, want 1", len(payload.Configs))
	}
	if payload.Configs[0].Path != gitconfig {
		t.Errorf("config path = %q, want %q", payload.Configs[0].Path, gitconfig)
	}
	if !strings.Contains(payload.Configs[0].Content, "name = Test") {
		t.Errorf("config content = %q", payload.Configs[0].Content)
	}
}

func TestRenderResourceUnknownApp(t *testing.T) {
	s, _ := newTestServer(t)
	if _, err := s.renderResource("photoshop"); err == nil {
		t.Error("renderResource should fail for unknown applications")
	}
}
