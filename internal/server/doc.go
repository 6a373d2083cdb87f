// Package server exposes the registry and reader over the Model Context
// Protocol (MCP) using mcp-go.
//
// Five tools are registered (list_apps, find_config, read_config,
// search_config, add_config_location) plus one appconfig:// resource per
// application that had at least one resolvable config when the server was
// constructed. Tool handlers never fail the protocol for domain conditions:
// an unknown application or an unreadable file comes back as descriptive
// text, and only a malformed request (missing argument, unknown tool or
// resource) is a hard error, raised by the mcp-go dispatcher itself.
//
// The server is typically started as a subprocess by an MCP client and
// speaks JSON-RPC on stdin/stdout until EOF.
package server
