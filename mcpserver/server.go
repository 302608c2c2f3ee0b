// Package mcpserver exposes catalog search over the Model Context
// Protocol, so agents can locate tools in the panel the same way the UI
// does.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/panelforge/toolpanel/catalog"
	"github.com/panelforge/toolpanel/panel"
)

// Version reported in the MCP handshake.
const Version = "0.2.0"

// SearchParams are the arguments of the search_tools and filter_sections
// tools.
type SearchParams struct {
	Query string `json:"query" jsonschema:"query string to match against the tool catalog"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results, 0 for all"`
}

// ToolResult is one matched tool.
type ToolResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SearchResult is the output of search_tools.
type SearchResult struct {
	Tools []ToolResult `json:"tools"`
}

// SectionResult is one surviving section of filter_sections.
type SectionResult struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Tools []ToolResult `json:"tools"`
}

// SectionsResult is the output of filter_sections.
type SectionsResult struct {
	Sections []SectionResult `json:"sections"`
}

// New builds an MCP server offering search over the given panel.
func New(p *panel.Panel) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "toolpanel",
		Version: Version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_tools",
		Description: "Search the tool catalog and return matching tools, most relevant first.",
	}, searchHandler(p))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_sections",
		Description: "Search the tool catalog and return the section tree pruned to the matches.",
	}, sectionsHandler(p))

	return server
}

// Run serves the panel over stdio until ctx is canceled.
func Run(ctx context.Context, p *panel.Panel) error {
	return New(p).Run(ctx, &mcp.StdioTransport{})
}

func searchHandler(p *panel.Panel) mcp.ToolHandlerFor[SearchParams, SearchResult] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchParams) (*mcp.CallToolResult, SearchResult, error) {
		tools, err := p.FilterTools(ctx, args.Query)
		if err != nil {
			return nil, SearchResult{}, err
		}
		if args.Limit > 0 && len(tools) > args.Limit {
			tools = tools[:args.Limit]
		}

		out := SearchResult{Tools: make([]ToolResult, len(tools))}
		for i, t := range tools {
			out.Tools[i] = toolResult(t)
		}
		return nil, out, nil
	}
}

func sectionsHandler(p *panel.Panel) mcp.ToolHandlerFor[SearchParams, SectionsResult] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchParams) (*mcp.CallToolResult, SectionsResult, error) {
		box, err := p.FilterSections(ctx, args.Query)
		if err != nil {
			return nil, SectionsResult{}, err
		}

		var out SectionsResult
		for _, n := range box {
			switch v := n.(type) {
			case catalog.Tool:
				out.Sections = append(out.Sections, SectionResult{
					ID:    v.ID,
					Name:  v.Name,
					Tools: []ToolResult{toolResult(v)},
				})
			case catalog.Section:
				section := SectionResult{ID: v.ID, Name: v.Name}
				for _, child := range v.Elems {
					if t, ok := child.(catalog.Tool); ok {
						section.Tools = append(section.Tools, toolResult(t))
					}
				}
				if args.Limit > 0 && len(section.Tools) > args.Limit {
					section.Tools = section.Tools[:args.Limit]
				}
				out.Sections = append(out.Sections, section)
			}
		}
		return nil, out, nil
	}
}

func toolResult(t catalog.Tool) ToolResult {
	return ToolResult{ID: t.ID, Name: t.Name, Description: t.Description}
}
