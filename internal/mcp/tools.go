package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable catalog tool.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// buildToolCatalog returns all available MCP tools. The creation schema
// is deliberately permissive: the record validator owns field checking
// so a single submission reports every invalid field at once instead of
// failing on the first schema violation.
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "create_project",
			Description: "Validate raw project input and append it to the catalog",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name": {
						Type:        "string",
						Description: "Project name, at least 2 characters",
					},
					"client": {
						Type:        "string",
						Description: "Client name, at least 2 characters",
					},
					"category": {
						Type:        "string",
						Description: "One of: maintenance, development, social, performance",
					},
					"status": {
						Type:        "string",
						Description: "One of: inprogress, billed, awaitingpo, awaitingpayment, overdue",
					},
					"billingType": {
						Type:        "string",
						Description: "One of: retainer, fixed",
					},
					"value": {
						Description: "Project value as a positive number or numeric text",
					},
					"startDate": {
						Type:        "string",
						Description: "Start date in ISO form (YYYY-MM-DD)",
					},
					"endDate": {
						Type:        "string",
						Description: "Optional end date in ISO form (YYYY-MM-DD)",
					},
					"team": {
						Type:        "array",
						Description: "Assigned team member names",
						Items:       &jsonschema.Schema{Type: "string"},
					},
				},
			},
		},
		{
			Name:        "list_projects",
			Description: "List catalog projects matching free-text search and facet filters",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"search": {
						Type:        "string",
						Description: "Case-insensitive text matched against project and client names",
					},
					"category": {
						Type:        "string",
						Description: "Category facet (omit to match all)",
					},
					"status": {
						Type:        "string",
						Description: "Status facet (omit to match all)",
					},
					"billingType": {
						Type:        "string",
						Description: "Billing type facet (omit to match all)",
					},
				},
			},
		},
		{
			Name:        "get_project",
			Description: "Get a catalog project by ID",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"id": {
						Type:        "string",
						Description: "Project ID",
					},
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "catalog_summary",
			Description: "Get status counts and total value across the catalog",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
	}
}

// registerTools wires every catalog tool to the shared handler dispatch.
func registerTools(server *sdkmcp.Server, h *Handler) {
	for _, def := range buildToolCatalog() {
		tool := &sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
		method := def.Name
		sdkmcp.AddTool(server, tool, func(ctx context.Context, req *sdkmcp.CallToolRequest, args map[string]any) (*sdkmcp.CallToolResult, any, error) {
			raw, err := json.Marshal(args)
			if err != nil {
				return nil, nil, err
			}

			result, err := h.Handle(ctx, method, raw)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					return toolError(apiErr), nil, nil
				}
				return nil, nil, err
			}

			payload, err := json.Marshal(result)
			if err != nil {
				return nil, nil, err
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil, nil
		})
	}
}

// toolError reports a recoverable domain failure as tool output rather
// than a protocol error, keeping field details intact for the caller.
func toolError(apiErr *APIError) *sdkmcp.CallToolResult {
	payload, err := json.Marshal(apiErr)
	if err != nil {
		payload = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
	}
}
