package models

// FilterAll is the sentinel value that disables the type filter and, inside
// adaptAvatars, marks an asset as compatible with every character
const FilterAll = "all"

// Asset represents a catalog entry for a downloadable booth item
type Asset struct {
	BoothID          string   `json:"boothId"`
	AssetName        string   `json:"assetName"`
	PreviewImage     string   `json:"previewImage,omitempty"`
	AssetType        int      `json:"assetType"`
	AssetChineseName string   `json:"assetChineseName,omitempty"`
	AdaptAvatars     []string `json:"adaptAvatars,omitempty"` // lowercase compatibility tags
}

// AssetFilter holds the list-mode query filters, combined with logical AND
type AssetFilter struct {
	Query     string // substring match against assetName/assetChineseName or exact boothId
	AssetType string // exact assetType match, skipped when empty or "all"
	Character string // quoted-substring match against adaptAvatars
}

// AssetDetail represents a single asset together with its full link set
type AssetDetail struct {
	Asset *Asset         `json:"asset"`
	Links []DownloadLink `json:"links"`
}

// SaveAssetRequest represents a request to create or overwrite an asset
// and replace its entire link set
type SaveAssetRequest struct {
	BoothID          string                `json:"boothId"`
	AssetName        string                `json:"assetName"`
	PreviewImage     string                `json:"previewImage,omitempty"`
	AssetType        int                   `json:"assetType,omitempty"`
	AssetChineseName string                `json:"assetChineseName,omitempty"`
	AdaptAvatars     []string              `json:"adaptAvatars,omitempty"`
	Links            []DownloadLinkRequest `json:"links,omitempty"`
}

// DeleteAssetRequest represents a request to delete an asset and its links
type DeleteAssetRequest struct {
	BoothID string `json:"boothId"`
}

// SuccessResponse is the response body for successful admin operations
type SuccessResponse struct {
	Success bool `json:"success"`
}
