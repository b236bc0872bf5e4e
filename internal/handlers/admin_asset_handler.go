package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/boothcatalog/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminAssetsService is the interface that wraps methods for the token-gated write operations.
type AdminAssetsService interface {
	// Method Save upserts an asset and replaces its entire link set in one transaction using configured repository.
	//
	// On any store failure the transaction is rolled back and the previous asset row and link set remain untouched.
	Save(ctx context.Context, req *models.SaveAssetRequest) error
	// Method Delete removes an asset and its link set in one transaction using configured repository.
	//
	// Deleting a nonexistent boothId succeeds silently.
	Delete(ctx context.Context, boothID string) error
}

// AdminAssetsHandler handles HTTP requests for the admin endpoints
type AdminAssetsHandler struct {
	BaseHandler
	service AdminAssetsService
}

// NewAdminAssetsHandler creates a new admin assets handler
func NewAdminAssetsHandler(svc AdminAssetsService, logger *zap.Logger) *AdminAssetsHandler {
	return &AdminAssetsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the admin routes behind the token middleware
// Note: This assumes the router is already scoped to /api
func (h *AdminAssetsHandler) RegisterRoutes(r chi.Router, tokenMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(tokenMiddleware)
		r.Post("/save", h.SaveAsset)
		r.Post("/delete", h.DeleteAsset)
	})
}

// SaveAsset handles POST /api/admin/save
// @Summary Save an asset
// @Description Upsert an asset and replace its entire download link set. Requires the admin token.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminTokenAuth
// @Param request body models.SaveAssetRequest true "Asset payload with its full link set"
// @Success 200 {object} models.SuccessResponse "Asset saved"
// @Failure 400 {object} map[string]string "Bad request - invalid body or missing required fields"
// @Failure 401 {object} map[string]string "Unauthorized - missing or mismatched admin token"
// @Failure 500 {object} map[string]string "Internal server error - store failure, transaction rolled back"
// @Router /api/admin/save [post]
func (h *AdminAssetsHandler) SaveAsset(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Save(r.Context(), &req); err != nil {
		if strings.Contains(err.Error(), "required") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to save asset", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteAsset handles POST /api/admin/delete
// @Summary Delete an asset
// @Description Delete an asset and its download links. Requires the admin token.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminTokenAuth
// @Param request body models.DeleteAssetRequest true "BoothId of the asset to delete"
// @Success 200 {object} models.SuccessResponse "Asset deleted (or did not exist)"
// @Failure 400 {object} map[string]string "Bad request - invalid body or missing boothId"
// @Failure 401 {object} map[string]string "Unauthorized - missing or mismatched admin token"
// @Failure 500 {object} map[string]string "Internal server error - store failure"
// @Router /api/admin/delete [post]
func (h *AdminAssetsHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), req.BoothID); err != nil {
		if strings.Contains(err.Error(), "required") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to delete asset", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
