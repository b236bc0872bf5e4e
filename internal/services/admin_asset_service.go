package services

import (
	"context"
	"fmt"

	"github.com/boothcatalog/backend/internal/models"
	"go.uber.org/zap"
)

// adminAssetService implements the token-gated write operations
type adminAssetService struct {
	assetRepo AssetRepository
	logger    *zap.Logger
}

// NewAdminAssetService creates a new admin asset service
func NewAdminAssetService(assetRepo AssetRepository, logger *zap.Logger) *adminAssetService {
	return &adminAssetService{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// Save upserts the asset and replaces its entire link set
//
// Calling Save twice with the same payload yields the same link set
// afterward; supplying an empty link list clears any stored links.
func (s *adminAssetService) Save(ctx context.Context, req *models.SaveAssetRequest) error {
	if err := validateSaveRequest(req); err != nil {
		return err
	}

	if err := s.assetRepo.Save(ctx, req); err != nil {
		s.logger.Error("failed to save asset",
			zap.String("booth_id", req.BoothID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("asset saved",
		zap.String("booth_id", req.BoothID),
		zap.Int("links", len(req.Links)),
	)
	return nil
}

// Delete removes the asset and its link set
// Deleting a nonexistent boothId succeeds silently
func (s *adminAssetService) Delete(ctx context.Context, boothID string) error {
	if boothID == "" {
		return fmt.Errorf("boothId is required")
	}

	if err := s.assetRepo.Delete(ctx, boothID); err != nil {
		s.logger.Error("failed to delete asset",
			zap.String("booth_id", boothID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("asset deleted", zap.String("booth_id", boothID))
	return nil
}

// validateSaveRequest checks the fields the store cannot default
//
// For successful results:
//
// - boothId and assetName must be present
//
// - every link must carry a title and a downloadLink
func validateSaveRequest(req *models.SaveAssetRequest) error {
	if req.BoothID == "" {
		return fmt.Errorf("boothId is required")
	}
	if req.AssetName == "" {
		return fmt.Errorf("assetName is required")
	}
	for _, link := range req.Links {
		if link.Title == "" || link.DownloadLink == "" {
			return fmt.Errorf("link title and downloadLink are required")
		}
	}
	return nil
}
