package catalog

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPTool returns the MCP representation of the tool, suitable for listing
// through an MCP server. The catalog ID becomes the MCP tool name because
// catalog IDs are the stable handle callers execute by.
func (t Tool) MCPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        t.ID,
		Title:       t.Name,
		Description: t.Description,
	}
}
