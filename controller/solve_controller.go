package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SaiNageswarS/doubt-solver-api/middleware"
	"github.com/SaiNageswarS/doubt-solver-api/model"
	"github.com/SaiNageswarS/doubt-solver-api/solver"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"go.uber.org/zap"
)

// SolveController handles HTTP requests for solving student doubts
type SolveController struct {
	solver solver.Solver
}

// ProvideSolveController creates a new SolveController backed by the configured completion API
func ProvideSolveController(qs *solver.QuestionSolver) *SolveController {
	return NewSolveController(qs)
}

func NewSolveController(s solver.Solver) *SolveController {
	return &SolveController{solver: s}
}

// HandleSolve handles POST requests carrying a question and the student's doubt
func (c *SolveController) HandleSolve(w http.ResponseWriter, r *http.Request) {
	// Decode loosely so wrong field types read as missing fields
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "no JSON data provided")
		return
	}

	question := trimmedField(body, "question")
	if question == "" {
		middleware.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}

	doubt := trimmedField(body, "doubt")
	if doubt == "" {
		middleware.WriteError(w, http.StatusBadRequest, "doubt is required")
		return
	}

	// Outbound failures come back as text inside the solution
	solution := c.solver.Solve(r.Context(), question, doubt)

	middleware.WriteJSON(w, http.StatusOK, model.SolveResponse{
		Success:  true,
		Solution: solution,
		Question: question,
		Doubt:    doubt,
	})

	logger.Info("Question solved",
		zap.Int("questionLength", len(question)),
		zap.Int("solutionLength", len(solution)))
}

func trimmedField(body map[string]any, key string) string {
	v, _ := body[key].(string)
	return strings.TrimSpace(v)
}

// Routes leaves /solve unqualified by method so the boot server's CORS layer
// can answer preflight requests before the POST filter runs.
func (c *SolveController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/solve",
			Method:  http.MethodPost,
			Handler: middleware.Chain(c.HandleSolve),
		},
	}
}
