package services

import (
	"context"
	"errors"
	"testing"

	"github.com/boothcatalog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockAssetRepository is a mock implementation of AssetRepository
type mockAssetRepository struct {
	asset      *models.Asset
	links      []models.DownloadLink
	assets     []models.Asset
	getErr     error
	linksErr   error
	searchErr  error
	saveErr    error
	deleteErr  error
	savedReq   *models.SaveAssetRequest
	deletedIDs []string
}

func (m *mockAssetRepository) GetByBoothID(ctx context.Context, boothID string) (*models.Asset, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.asset, nil
}

func (m *mockAssetRepository) GetLinksByBoothID(ctx context.Context, boothID string) ([]models.DownloadLink, error) {
	if m.linksErr != nil {
		return nil, m.linksErr
	}
	return m.links, nil
}

func (m *mockAssetRepository) Search(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.assets, nil
}

func (m *mockAssetRepository) Save(ctx context.Context, req *models.SaveAssetRequest) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedReq = req
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, boothID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, boothID)
	return nil
}

func TestNewAssetService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockAssetRepository{}

	svc := NewAssetService(repo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.assetRepo)
	assert.Equal(t, logger, svc.logger)
}

func TestAssetService_GetDetail(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		boothID       string
		repo          *mockAssetRepository
		expectedError bool
		errorContains string
		expectedLinks int
	}{
		{
			name:    "success with links",
			boothID: "100",
			repo: &mockAssetRepository{
				asset: &models.Asset{BoothID: "100", AssetName: "Suit A"},
				links: []models.DownloadLink{
					{BoothID: "100", Title: "Main", DownloadLink: "http://x/1"},
				},
			},
			expectedError: false,
			expectedLinks: 1,
		},
		{
			name:    "success with no links returns empty array",
			boothID: "100",
			repo: &mockAssetRepository{
				asset: &models.Asset{BoothID: "100", AssetName: "Suit A"},
				links: nil,
			},
			expectedError: false,
			expectedLinks: 0,
		},
		{
			name:    "asset not found propagated",
			boothID: "999",
			repo: &mockAssetRepository{
				getErr: errors.New("asset not found"),
			},
			expectedError: true,
			errorContains: "asset not found",
		},
		{
			name:    "link query error",
			boothID: "100",
			repo: &mockAssetRepository{
				asset:    &models.Asset{BoothID: "100", AssetName: "Suit A"},
				linksErr: errors.New("database error"),
			},
			expectedError: true,
			errorContains: "failed to get download links",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssetService(tt.repo, logger)

			result, err := svc.GetDetail(context.Background(), tt.boothID)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.NotNil(t, result.Asset)
				assert.NotNil(t, result.Links)
				assert.Len(t, result.Links, tt.expectedLinks)
			}
		})
	}
}

func TestAssetService_Search(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		filter        models.AssetFilter
		repo          *mockAssetRepository
		expectedError bool
		expectedCount int
	}{
		{
			name:   "success with results",
			filter: models.AssetFilter{Query: "suit"},
			repo: &mockAssetRepository{
				assets: []models.Asset{
					{BoothID: "200", AssetName: "Suit B"},
					{BoothID: "100", AssetName: "Suit A"},
				},
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:   "empty result returns empty array not nil",
			filter: models.AssetFilter{Character: "unknown"},
			repo: &mockAssetRepository{
				assets: nil,
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:   "repository error",
			filter: models.AssetFilter{},
			repo: &mockAssetRepository{
				searchErr: errors.New("database error"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssetService(tt.repo, logger)

			result, err := svc.Search(context.Background(), tt.filter)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
			}
		})
	}
}
