package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/knowledge"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Agent     *agent.Agent
	Knowledge *knowledge.Repository
}

// NewMCPServer creates an MCP server exposing the portfolio agent and
// knowledge base as tools, so an MCP client can interview the portfolio
// the same way a site visitor would.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"askfolio",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("askfolio — conversational access to Max Karev's portfolio: projects, skills, experience, and availability."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_portfolio",
			mcp.WithDescription("Ask the portfolio agent a free-form question and get its answer."),
			mcp.WithString("message", mcp.Description("The question to ask"), mcp.Required()),
		),
		mcpAskPortfolio(deps),
	)

	s.AddTool(
		mcp.NewTool("find_project",
			mcp.WithDescription("Look up a portfolio project by name, id, or technology."),
			mcp.WithString("query", mcp.Description("Project name, id, or a technology it uses"), mcp.Required()),
		),
		mcpFindProject(deps),
	)

	s.AddTool(
		mcp.NewTool("list_skills",
			mcp.WithDescription("List the owner's skills, optionally filtered by category."),
			mcp.WithString("category", mcp.Description("Optional category filter (e.g. frontend, backend, devops)")),
		),
		mcpListSkills(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"portfolio://profile",
			"Owner Profile",
			mcp.WithResourceDescription("The portfolio owner's profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	return s
}

func mcpAskPortfolio(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return mcpError("message is required"), nil
		}

		resp := deps.Agent.ProcessMessage(agent.Request{Message: message})

		b, err := json.Marshal(resp)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpFindProject(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		project, ok := deps.Knowledge.FindProject(query)
		if !ok {
			return mcpError(fmt.Sprintf("no project matches %q", query)), nil
		}

		b, err := json.Marshal(project)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal project: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpListSkills(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")

		skills := deps.Knowledge.Skills()
		if category != "" {
			skills = deps.Knowledge.SkillsByCategory(category)
		}
		if len(skills) == 0 {
			return mcpText("[]"), nil
		}

		b, err := json.Marshal(skills)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal skills: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Knowledge.Profile())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
