package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSPolicy is handed to the boot server, which applies it to every REST
// route and answers preflight requests before they reach a controller.
func CORSPolicy() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{RequestIDHeader, "Mcp-Session-Id"},
		MaxAge:         86400,
	})
}

// MCPMiddleware wraps the MCP endpoint, which the boot server mounts outside its CORS layer.
func MCPMiddleware(next http.Handler) http.Handler {
	return CORSPolicy().Handler(Chain(next.ServeHTTP))
}
