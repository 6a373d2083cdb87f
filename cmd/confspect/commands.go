package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confspect/confspect/internal/logging"
	"github.com/confspect/confspect/internal/reader"
	"github.com/confspect/confspect/internal/registry"
	"github.com/confspect/confspect/internal/server"
	"github.com/confspect/confspect/internal/tui"
	"github.com/confspect/confspect/internal/ui"
	"github.com/confspect/confspect/internal/userconfig"
)

var pathFilter string

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)

	readCmd.Flags().StringVar(&pathFilter, "filter", "", "Only read configs whose path contains this substring")
}

// buildRegistry seeds the built-in table and merges the user overlay file.
func buildRegistry() (*registry.Registry, error) {
	reg, err := registry.New()
	if err != nil {
		return nil, err
	}

	overlay, err := userconfig.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("user config: %w", err)
	}
	if err := overlay.Apply(reg); err != nil {
		return nil, fmt.Errorf("user config: %w", err)
	}
	return reg, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP interface over stdio",
	Long: `Run confspect as an MCP (Model Context Protocol) server.

The server reads JSON-RPC requests from stdin and writes responses to
stdout until EOF. It is typically started as a subprocess by an MCP
client; set CONFSPECT_LOG_LEVEL to get diagnostic logs on stderr.`,
	Example: `  # Entry in an MCP client configuration
  {"command": "confspect", "args": ["serve"]}`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	logging.Info("starting MCP server on stdio")
	return server.New(reg).ServeStdio()
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known applications",
	Long:  `List every known application with how many of its configuration files exist on this machine.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	for _, key := range reg.Keys() {
		app, _ := reg.Get(key)
		resolved := reg.ResolveApp(key)

		status := "no configs found"
		if n := len(resolved); n > 0 {
			status = fmt.Sprintf("%d config(s) found", n)
		}
		fmt.Printf("%-12s %s %s\n",
			ui.Render(ui.KeyStyle, key),
			app.DisplayName,
			ui.Render(ui.MutedStyle, "("+status+")"))
	}
	return nil
}

var findCmd = &cobra.Command{
	Use:   "find <app>",
	Short: "Find an application's configuration files",
	Example: `  confspect find vscode
  confspect find git`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	appKey := args[0]
	resolved := reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		fmt.Printf("No configuration files found for %q.\n", appKey)
		fmt.Printf("Valid applications: %s\n", strings.Join(reg.Keys(), ", "))
		return nil
	}

	app, _ := reg.Get(appKey)
	fmt.Println(ui.Render(ui.HeaderStyle, app.DisplayName+" configuration files:"))
	for _, loc := range resolved {
		fmt.Printf("\n  %s\n  %s %s\n",
			loc.Description,
			ui.Render(ui.PathStyle, loc.Path),
			ui.Render(ui.MutedStyle, fmt.Sprintf("(%s, %s)", loc.Type, loc.Format)))
	}
	return nil
}

var readCmd = &cobra.Command{
	Use:   "read <app>",
	Short: "Read and display an application's configuration files",
	Example: `  confspect read zsh
  confspect read vscode --filter settings.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	appKey := args[0]
	resolved := reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		fmt.Printf("No configuration files found for %q.\n", appKey)
		fmt.Printf("Valid applications: %s\n", strings.Join(reg.Keys(), ", "))
		return nil
	}

	first := true
	for _, loc := range resolved {
		if pathFilter != "" && !strings.Contains(loc.Path, pathFilter) {
			continue
		}
		if !first {
			fmt.Println("\n---")
		}
		first = false

		cc := reader.Read(loc)
		fmt.Printf("%s\n%s\n\n%s\n",
			ui.Render(ui.HeaderStyle, loc.Description),
			ui.Render(ui.MutedStyle, loc.Path),
			reader.FormatForDisplay(cc))
	}

	if first {
		fmt.Printf("No configuration paths for %q contain %q.\n", appKey, pathFilter)
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <app> <term>",
	Short: "Search inside an application's configuration files",
	Long:  `Search for a term (case-insensitive substring) inside every resolvable configuration file of an application.`,
	Example: `  confspect search vscode theme
  confspect search zsh alias`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	appKey, term := args[0], args[1]
	resolved := reg.ResolveApp(appKey)
	if len(resolved) == 0 {
		fmt.Printf("No configuration files found for %q.\n", appKey)
		fmt.Printf("Valid applications: %s\n", strings.Join(reg.Keys(), ", "))
		return nil
	}

	found := false
	for _, loc := range resolved {
		matches := reader.Search(loc, term)
		if len(matches) == 0 {
			continue
		}
		found = true
		fmt.Printf("%s %s\n",
			ui.Render(ui.HeaderStyle, loc.Description),
			ui.Render(ui.MutedStyle, "("+loc.Path+")"))
		for _, m := range matches {
			fmt.Printf("  %s\n", m)
		}
		fmt.Println()
	}

	if !found {
		fmt.Printf("No matches for %q in %s configuration files.\n", term, appKey)
	}
	return nil
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse configurations interactively",
	Long:  `Launch an interactive terminal browser over all known applications and their configuration files.`,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}
	return tui.Run(reg)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example user configuration file",
	Long: `Write a commented example overlay file to the platform config
directory. The overlay can define new applications and append extra
candidate locations to existing ones.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := userconfig.Path()
	if err != nil {
		return err
	}
	if err := userconfig.WriteExample(path); err != nil {
		return err
	}
	fmt.Printf("Wrote example configuration to %s\n", path)
	return nil
}
