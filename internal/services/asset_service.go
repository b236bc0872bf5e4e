package services

import (
	"context"
	"fmt"

	"github.com/boothcatalog/backend/internal/models"
	"go.uber.org/zap"
)

// AssetRepository is the interface that wraps methods for Assets and DownloadLinks table data access
type AssetRepository interface {
	// GetByBoothID retrieves a single asset by its boothId
	//
	// If no asset with the given boothId exists, an "asset not found" error is returned together with "nil" value.
	GetByBoothID(ctx context.Context, boothID string) (*models.Asset, error)
	// GetLinksByBoothID retrieves all download links for an asset
	//
	// An asset without links yields an empty result, not an error.
	GetLinksByBoothID(ctx context.Context, boothID string) ([]models.DownloadLink, error)
	// Search retrieves assets matching the filter
	//
	// "filter" parameter holds the keyword, type and character filters; all of them are optional
	// and combined with logical AND. Results are ordered by boothId descending and capped at 50 rows.
	Search(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	// Save upserts an asset and replaces its entire link set in one transaction
	Save(ctx context.Context, req *models.SaveAssetRequest) error
	// Delete removes an asset and its link set in one transaction
	Delete(ctx context.Context, boothID string) error
}

// assetService implements the public catalog read operations
type assetService struct {
	assetRepo AssetRepository
	logger    *zap.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo AssetRepository, logger *zap.Logger) *assetService {
	return &assetService{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// GetDetail retrieves an asset together with its full link set
//
// "boothID" parameter identifies the asset. If no asset exists, the
// repository's "asset not found" error is propagated unchanged so the
// handler can map it to a 404 response.
func (s *assetService) GetDetail(ctx context.Context, boothID string) (*models.AssetDetail, error) {
	asset, err := s.assetRepo.GetByBoothID(ctx, boothID)
	if err != nil {
		return nil, err
	}

	links, err := s.assetRepo.GetLinksByBoothID(ctx, boothID)
	if err != nil {
		s.logger.Error("failed to get download links", zap.Error(err))
		return nil, fmt.Errorf("failed to get download links: %w", err)
	}

	// An asset with no links returns an empty array, never null
	if links == nil {
		links = []models.DownloadLink{}
	}

	return &models.AssetDetail{
		Asset: asset,
		Links: links,
	}, nil
}

// Search retrieves the filtered asset list
func (s *assetService) Search(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	assets, err := s.assetRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("failed to search assets", zap.Error(err))
		return nil, fmt.Errorf("failed to search assets: %w", err)
	}

	if assets == nil {
		assets = []models.Asset{}
	}

	return assets, nil
}
