package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/SaiNageswarS/doubt-solver-api/solver"
	"github.com/SaiNageswarS/go-api-boot/logger"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "doubt-solver"
	serverVersion = "v1.0.0"

	SolveToolName = "solve_doubt"
)

type SolveInput struct {
	Question string `json:"question" jsonschema:"the academic question to solve"`
	Doubt    string `json:"doubt" jsonschema:"what specifically confuses the student about the question"`
}

type SolveOutput struct {
	Solution string `json:"solution" jsonschema:"step-by-step solution in markdown"`
}

// SolveTool exposes the question solver to MCP clients.
type SolveTool struct {
	solver solver.Solver
}

func ProvideSolveTool(qs *solver.QuestionSolver) *SolveTool {
	return NewSolveTool(qs)
}

func NewSolveTool(s solver.Solver) *SolveTool {
	return &SolveTool{solver: s}
}

func (t *SolveTool) Run(ctx context.Context, _ *sdkmcp.CallToolRequest, in SolveInput) (*sdkmcp.CallToolResult, SolveOutput, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, SolveOutput{}, errors.New("question is required")
	}

	doubt := strings.TrimSpace(in.Doubt)
	if doubt == "" {
		return nil, SolveOutput{}, errors.New("doubt is required")
	}

	solution := t.solver.Solve(ctx, question, doubt)
	logger.Info("MCP solve completed", zap.Int("solutionLength", len(solution)))

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: solution}},
	}, SolveOutput{Solution: solution}, nil
}

// Implementation identifies this server to MCP clients.
func Implementation() *sdkmcp.Implementation {
	return &sdkmcp.Implementation{Name: serverName, Version: serverVersion}
}

// ConfigureMCP registers the solve tool on the boot server's MCP server.
func (t *SolveTool) ConfigureMCP(s *sdkmcp.Server) {
	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        SolveToolName,
		Description: "Solve an academic question step by step, focusing on the student's stated doubt. Returns markdown.",
	}, t.Run)
}
