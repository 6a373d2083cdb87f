package server

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/confspect/confspect/internal/reader"
	"github.com/confspect/confspect/internal/registry"
	"github.com/confspect/confspect/internal/version"
)

// Server wires the application registry into an MCP server instance. The
// registry is injected rather than global; the stdio loop serves one request
// at a time, which is the serialization the registry's mutation contract
// requires.
type Server struct {
	reg *registry.Registry
	mcp *server.MCPServer
}

// New builds a Server with all tools and resources registered.
func New(reg *registry.Registry) *Server {
	m := server.NewMCPServer(
		"confspect",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s := &Server{reg: reg, mcp: m}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio blocks, serving MCP over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// readAll reads every location concurrently and returns the results in
// declaration order. Each goroutine writes only its own slot, so no locking
// is needed; the indexed slice restores ordering on collection.
func readAll(locs []registry.ConfigLocation) []reader.ConfigContent {
	contents := make([]reader.ConfigContent, len(locs))
	var wg sync.WaitGroup
	for i, loc := range locs {
		wg.Add(1)
		go func(i int, loc registry.ConfigLocation) {
			defer wg.Done()
			contents[i] = reader.Read(loc)
		}(i, loc)
	}
	wg.Wait()
	return contents
}
