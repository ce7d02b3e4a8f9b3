package controller

import (
	"net/http"

	"github.com/SaiNageswarS/doubt-solver-api/middleware"
	"github.com/SaiNageswarS/doubt-solver-api/model"
	"github.com/SaiNageswarS/go-api-boot/server"
)

type HealthController struct {
}

func ProvideHealthController() *HealthController {
	return &HealthController{}
}

func (hc *HealthController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, model.HealthResponse{Status: "healthy"})
}

func (hc *HealthController) Routes() []server.Route {
	return []server.Route{
		{
			// More specific than the boot server's bare /health, so this one wins for GET.
			Pattern: "GET /health",
			Method:  http.MethodGet,
			Handler: middleware.Chain(hc.HandleHealth),
		},
	}
}
