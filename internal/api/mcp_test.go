package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/knowledge"
)

func newTestMCPDeps(t *testing.T) MCPDeps {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("knowledge.Default: %v", err)
	}
	return MCPDeps{Agent: agent.New(kb), Knowledge: kb}
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func TestMCPTool_AskPortfolio(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpAskPortfolio(deps)

	req := makeCallToolRequest("ask_portfolio", map[string]interface{}{
		"message": "What is InvoTrek?",
	})
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var resp agent.Response
	if err := json.Unmarshal([]byte(toolText(t, result)), &resp); err != nil {
		t.Fatalf("parsing tool output: %v", err)
	}
	if resp.Intent != "specific_project" {
		t.Errorf("intent = %q, want specific_project", resp.Intent)
	}
	if !strings.Contains(resp.Reply, "InvoTrek") {
		t.Errorf("reply should describe InvoTrek: %q", resp.Reply)
	}
}

func TestMCPTool_AskPortfolio_MissingMessage(t *testing.T) {
	handler := mcpAskPortfolio(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("ask_portfolio", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected a tool error for missing message")
	}
}

func TestMCPTool_FindProject(t *testing.T) {
	handler := mcpFindProject(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("find_project", map[string]interface{}{
		"query": "stripe",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var p knowledge.Project
	if err := json.Unmarshal([]byte(toolText(t, result)), &p); err != nil {
		t.Fatalf("parsing project: %v", err)
	}
	if p.ID != "invotrek" {
		t.Errorf("project id = %q, want invotrek (tech stack match)", p.ID)
	}
}

func TestMCPTool_FindProject_NoMatch(t *testing.T) {
	handler := mcpFindProject(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("find_project", map[string]interface{}{
		"query": "spaceship",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected a tool error for an unmatched query")
	}
}

func TestMCPTool_ListSkills(t *testing.T) {
	handler := mcpListSkills(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("list_skills", map[string]interface{}{
		"category": "devops",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var skills []knowledge.Skill
	if err := json.Unmarshal([]byte(toolText(t, result)), &skills); err != nil {
		t.Fatalf("parsing skills: %v", err)
	}
	if len(skills) == 0 {
		t.Fatal("no devops skills returned")
	}
	for _, s := range skills {
		if s.Category != "devops" {
			t.Errorf("skill %s leaked into devops filter", s.Name)
		}
	}
}

func TestMCPTool_ListSkills_UnknownCategory(t *testing.T) {
	handler := mcpListSkills(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("list_skills", map[string]interface{}{
		"category": "wizardry",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := toolText(t, result); got != "[]" {
		t.Errorf("output = %s, want []", got)
	}
}

func TestMCPResource_Profile(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpResourceProfile(deps)

	req := mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "portfolio://profile"},
	}
	contents, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	var p knowledge.Profile
	if err := json.Unmarshal([]byte(tc.Text), &p); err != nil {
		t.Fatalf("parsing profile JSON: %v", err)
	}
	if p.Name == "" {
		t.Error("empty profile name")
	}
}
