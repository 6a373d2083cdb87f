package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/confspect/confspect/internal/logging"
	"github.com/confspect/confspect/internal/reader"
	"github.com/confspect/confspect/internal/registry"
)

// readSeparator visibly divides the rendered contents of multiple locations
// in a single read_config response.
const readSeparator = "\n\n---\n\n"

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_apps",
		mcp.WithDescription("List all known applications and how many of their configuration files are present on this machine."),
	), s.handleListApps)

	s.mcp.AddTool(mcp.NewTool("find_config",
		mcp.WithDescription("Find the configuration file locations for an application."),
		mcp.WithString("app", mcp.Required(), mcp.Description("Application key, e.g. vscode, git, zsh (case-insensitive)")),
	), s.handleFindConfig)

	s.mcp.AddTool(mcp.NewTool("read_config",
		mcp.WithDescription("Read and display an application's configuration files."),
		mcp.WithString("app", mcp.Required(), mcp.Description("Application key (case-insensitive)")),
		mcp.WithString("path_filter", mcp.Description("Only read configs whose path contains this substring")),
	), s.handleReadConfig)

	s.mcp.AddTool(mcp.NewTool("search_config",
		mcp.WithDescription("Search for a term inside an application's configuration files."),
		mcp.WithString("app", mcp.Required(), mcp.Description("Application key (case-insensitive)")),
		mcp.WithString("term", mcp.Required(), mcp.Description("Substring to search for, matched case-insensitively")),
	), s.handleSearchConfig)

	s.mcp.AddTool(mcp.NewTool("add_config_location",
		mcp.WithDescription("Add a candidate configuration location to a known application for the lifetime of this process."),
		mcp.WithString("app", mcp.Required(), mcp.Description("Application key (case-insensitive)")),
		mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path; may start with ~/")),
		mcp.WithString("type", mcp.Required(), mcp.Enum("file", "directory"), mcp.Description("Expected filesystem kind")),
		mcp.WithString("description", mcp.Required(), mcp.Description("Human-readable description of the location")),
		mcp.WithString("format", mcp.Enum("json", "plist", "yaml", "toml", "text", "directory"), mcp.Description("Parse format; defaults to text for files and directory for directories")),
	), s.handleAddLocation)
}

func (s *Server) handleListApps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("Known applications:\n\n")

	for _, key := range s.reg.Keys() {
		app, _ := s.reg.Get(key)
		resolved := s.reg.ResolveApp(key)

		fmt.Fprintf(&b, "- %s: %s", key, app.DisplayName)
		if app.BundleID != "" {
			fmt.Fprintf(&b, " (%s)", app.BundleID)
		}
		if n := len(resolved); n > 0 {
			fmt.Fprintf(&b, " - %d config(s) found\n", n)
		} else {
			b.WriteString(" - no configs found\n")
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleFindConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKey, err := req.RequireString("app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolved := s.reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		return mcp.NewToolResultText(s.noneFound(appKey)), nil
	}

	app, _ := s.reg.Get(appKey)
	var b strings.Builder
	fmt.Fprintf(&b, "%s configuration files:\n", app.DisplayName)
	for _, loc := range resolved {
		fmt.Fprintf(&b, "\n- %s\n  Path: %s\n  Type: %s (%s)\n", loc.Description, loc.Path, loc.Type, loc.Format)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleReadConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKey, err := req.RequireString("app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filter := req.GetString("path_filter", "")

	resolved := s.reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		return mcp.NewToolResultText(s.noneFound(appKey)), nil
	}

	if filter != "" {
		var kept []registry.ConfigLocation
		for _, loc := range resolved {
			if strings.Contains(loc.Path, filter) {
				kept = append(kept, loc)
			}
		}
		if len(kept) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No configuration paths for %q contain %q.", appKey, filter)), nil
		}
		resolved = kept
	}

	logging.Debug("reading configs",
		zap.String("app", appKey),
		zap.Int("locations", len(resolved)),
	)

	contents := readAll(resolved)
	sections := make([]string, len(resolved))
	for i, loc := range resolved {
		sections[i] = fmt.Sprintf("## %s\nPath: %s\n\n%s", loc.Description, loc.Path, reader.FormatForDisplay(contents[i]))
	}

	return mcp.NewToolResultText(strings.Join(sections, readSeparator)), nil
}

func (s *Server) handleSearchConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKey, err := req.RequireString("app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	term, err := req.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolved := s.reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		return mcp.NewToolResultText(s.noneFound(appKey)), nil
	}

	var b strings.Builder
	found := false
	for _, loc := range resolved {
		matches := reader.Search(loc, term)
		if len(matches) == 0 {
			continue
		}
		if !found {
			fmt.Fprintf(&b, "Results for %q:\n", term)
			found = true
		}
		fmt.Fprintf(&b, "\n## %s (%s)\n%s\n", loc.Description, loc.Path, strings.Join(matches, "\n"))
	}

	if !found {
		return mcp.NewToolResultText(fmt.Sprintf("No matches for %q in %s configuration files.", term, appKey)), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleAddLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKey, err := req.RequireString("app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := req.GetString("format", "")

	app, ok := s.reg.Get(appKey)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Unknown application %q. %s", appKey, s.validKeysLine())), nil
	}

	loc, err := registry.NewLocation(path, typ, format, description)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.reg.AppendLocation(appKey, loc)
	logging.Info("added config location",
		zap.String("app", appKey),
		zap.String("path", path),
	)

	return mcp.NewToolResultText(fmt.Sprintf("Added configuration location to %s: %s (%s, %s). The addition lasts for this process only.",
		app.DisplayName, path, loc.Type, loc.Format)), nil
}

// noneFound is the taxonomy-(a) response: an empty result set plus the list
// of valid keys.
func (s *Server) noneFound(appKey string) string {
	return fmt.Sprintf("No configuration files found for %q. %s", appKey, s.validKeysLine())
}

func (s *Server) validKeysLine() string {
	return "Valid applications: " + strings.Join(s.reg.Keys(), ", ")
}
