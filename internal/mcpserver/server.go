// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes recase over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `recase MCP server: rewrites identifiers in the lettercase and separator style of a reference identifier.

Styles are inferred from the reference (e.g. "SCREAMING_SNAKE", "kebab-case", "camelCase", "_unused_var"). When the reference cannot tell styles apart (a single lowercase word admits lower, camel, and any separator), priorities decide. A priority is a compact spec: optional leading separator, a letter, optional separator, a letter. Examples: a_b (snake_case), aB (camelCase), Ab (PascalCase), A-B (SCREAMING-KEBAB), _ab (leading underscore).

Targets that start with a single space receive the style's leading separator in place of that space.`

// serverVersion is reported by the classify tool; Run sets it.
var serverVersion = "dev"

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, version string) error {
	serverVersion = version
	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recase",
		Description: "Rewrite each target in the identifier style inferred from reference. Returns the rendered targets in order and the style used. Set positional=true to copy the reference's per-character casing instead of inferring a style.",
	}, handleRecase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Infer the identifier style of reference. Returns the style, the style components still consistent with the reference, and whether a priority, the default order, or the fallback decided it.",
	}, handleClassify)
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
