package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/boothcatalog/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssetsService is the interface that wraps methods for the public catalog read operations.
type AssetsService interface {
	// Method GetDetail retrieves an asset and its full link set by boothId using configured repository.
	//
	// If no asset with the given boothId exists, an "asset not found" error will be returned together with "nil" value.
	GetDetail(ctx context.Context, boothID string) (*models.AssetDetail, error)
	// Method Search retrieves a filtered list of assets using configured repository.
	//
	// "filter" parameter carries the optional keyword, type and character filters; they are combined
	// with logical AND. Results are ordered by boothId descending and capped at 50 rows.
	Search(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
}

// AssetsHandler handles HTTP requests for the public catalog
type AssetsHandler struct {
	BaseHandler
	service AssetsService
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(svc AssetsService, logger *zap.Logger) *AssetsHandler {
	return &AssetsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the public asset routes
// Note: This assumes the router is already scoped to /api
func (h *AssetsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/assets", h.GetAssets)
}

// GetAssets handles GET /api/assets
// @Summary Get assets
// @Description Get an asset with its download links (id mode) or a filtered asset list (list mode)
// @Tags assets
// @Accept json
// @Produce json
// @Param id query string false "BoothId for detail mode; when present all other filters are ignored"
// @Param q query string false "Keyword matched against assetName, assetChineseName or exact boothId"
// @Param type query string false "Asset type code; 'all' or empty disables the filter"
// @Param char query string false "Character name matched against adaptAvatars; assets tagged 'all' always match"
// @Success 200 {object} models.AssetDetail "Asset detail (id mode) or array of assets (list mode)"
// @Failure 404 {object} map[string]string "Not found - no asset with the given boothId"
// @Failure 500 {object} map[string]string "Internal server error - store failure"
// @Router /api/assets [get]
func (h *AssetsHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	// Detail mode
	if id != "" {
		detail, err := h.service.GetDetail(r.Context(), id)
		if err != nil {
			if strings.Contains(err.Error(), "asset not found") {
				h.RespondError(w, http.StatusNotFound, "Not found")
				return
			}
			h.Logger.Error("failed to get asset detail", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		h.RespondJSON(w, http.StatusOK, detail)
		return
	}

	// List mode
	filter := models.AssetFilter{
		Query:     r.URL.Query().Get("q"),
		AssetType: r.URL.Query().Get("type"),
		Character: r.URL.Query().Get("char"),
	}

	assets, err := h.service.Search(r.Context(), filter)
	if err != nil {
		h.Logger.Error("failed to search assets", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, assets)
}
