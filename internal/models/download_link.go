package models

// DownloadLink represents one download entry belonging to an asset
// Links have no independent identity; they are always handled as a full
// set scoped to one boothId
type DownloadLink struct {
	BoothID      string `json:"boothId"`
	Title        string `json:"title"`
	DownloadLink string `json:"downloadLink"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

// DownloadLinkRequest represents one link entry in a save request
type DownloadLinkRequest struct {
	Title        string `json:"title"`
	DownloadLink string `json:"downloadLink"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}
