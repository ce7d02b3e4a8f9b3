package controller

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/SaiNageswarS/doubt-solver-api/appconfig"
	"github.com/SaiNageswarS/doubt-solver-api/middleware"
	"github.com/SaiNageswarS/doubt-solver-api/model"
	"github.com/SaiNageswarS/doubt-solver-api/templates"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

var solverPage = template.Must(template.ParseFS(templates.FS, "solver.html"))

// PageController serves the browser chat page and renders solutions for it.
type PageController struct {
	model    string
	markdown goldmark.Markdown
}

func ProvidePageController(cfg *appconfig.AppConfig) *PageController {
	return &PageController{
		model: cfg.Model,
		// Raw HTML in the source is dropped and dangerous link targets are blanked.
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (pc *PageController) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Model string
	}{
		Model: pc.model,
	}

	var buf bytes.Buffer
	if err := solverPage.Execute(&buf, data); err != nil {
		logger.Error("Failed to execute solver page template", zap.Error(err))
		middleware.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleRender converts a markdown solution to HTML for display in the page.
func (pc *PageController) HandleRender(w http.ResponseWriter, r *http.Request) {
	var req model.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "no JSON data provided")
		return
	}

	var buf bytes.Buffer
	if err := pc.markdown.Convert([]byte(req.Markdown), &buf); err != nil {
		logger.Error("Failed to render markdown", zap.Error(err))
		middleware.WriteError(w, http.StatusInternalServerError, "failed to render markdown")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, model.RenderResponse{HTML: buf.String()})
}

func (pc *PageController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "GET /{$}",
			Method:  http.MethodGet,
			Handler: middleware.Chain(pc.HandleIndex),
		},
		{
			Pattern: "/render",
			Method:  http.MethodPost,
			Handler: middleware.Chain(pc.HandleRender),
		},
	}
}
