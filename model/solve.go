package model

// SolveRequest is the body accepted by POST /solve.
type SolveRequest struct {
	Question string `json:"question"`
	Doubt    string `json:"doubt"`
}

// SolveResponse always reports success; outbound failures travel as text in Solution.
type SolveResponse struct {
	Success  bool   `json:"success"`
	Solution string `json:"solution"` // markdown answer or embedded error text
	Question string `json:"question"` // trimmed question, echoed
	Doubt    string `json:"doubt"`    // trimmed doubt, echoed
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// RenderRequest is the body accepted by POST /render.
type RenderRequest struct {
	Markdown string `json:"markdown"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}
