package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/confspect/confspect/internal/reader"
	"github.com/confspect/confspect/internal/registry"
)

// resourcePayload is the JSON shape served for an appconfig:// resource.
type resourcePayload struct {
	App         string          `json:"app"`
	DisplayName string          `json:"display_name"`
	BundleID    string          `json:"bundle_id,omitempty"`
	Configs     []resourceEntry `json:"configs"`
}

type resourceEntry struct {
	Description string                `json:"description"`
	Type        registry.LocationType `json:"type"`
	reader.ConfigContent
}

// registerResources exposes one resource per application that has at least
// one resolvable config at construction time. Reading the resource resolves
// and reads again, so content is always fresh; the resource list itself is
// fixed for the process.
func (s *Server) registerResources() {
	all := s.reg.ResolveAll()
	for _, key := range s.reg.Keys() {
		if len(all[key]) == 0 {
			continue
		}
		app, _ := s.reg.Get(key)
		uri := "appconfig://" + key

		res := mcp.NewResource(uri, app.DisplayName,
			mcp.WithResourceDescription(fmt.Sprintf("Configuration files for %s", app.DisplayName)),
			mcp.WithMIMEType("application/json"),
		)
		s.mcp.AddResource(res, s.resourceHandler(key, uri))
	}
}

func (s *Server) resourceHandler(key, uri string) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.renderResource(key)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	}
}

// renderResource resolves and reads every location of an application and
// serializes the result.
func (s *Server) renderResource(key string) (string, error) {
	app, ok := s.reg.Get(key)
	if !ok {
		return "", fmt.Errorf("unknown application %q", key)
	}

	resolved := s.reg.ResolveApp(key)
	contents := readAll(resolved)

	payload := resourcePayload{
		App:         key,
		DisplayName: app.DisplayName,
		BundleID:    app.BundleID,
		Configs:     make([]resourceEntry, len(resolved)),
	}
	for i, loc := range resolved {
		payload.Configs[i] = resourceEntry{
			Description:   loc.Description,
			Type:          loc.Type,
			ConfigContent: contents[i],
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s configs: %w", key, err)
	}
	return string(data), nil
}
