package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// StaticHandler serves the single-page frontend build
type StaticHandler struct {
	BaseHandler
	staticDir string
}

// NewStaticHandler creates a new static handler serving files from staticDir
func NewStaticHandler(staticDir string, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		BaseHandler: BaseHandler{Logger: logger},
		staticDir:   staticDir,
	}
}

// ServeSPA serves static files and falls back to index.html for unknown
// non-API paths, so client-side routes like /123456 resolve in the browser
func (h *StaticHandler) ServeSPA(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		h.RespondError(w, http.StatusNotFound, "Not found")
		return
	}

	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
