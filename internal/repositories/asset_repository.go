package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boothcatalog/backend/internal/models"
)

// maxSearchResults caps list-mode queries; there is no further pagination
const maxSearchResults = 50

type assetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *sql.DB) *assetRepository {
	return &assetRepository{
		db: db,
	}
}

// GetByBoothID retrieves a single asset by its boothId
func (r *assetRepository) GetByBoothID(ctx context.Context, boothID string) (*models.Asset, error) {
	query := `
		SELECT boothId, assetName, previewImage, assetType, assetChineseName, adaptAvatars
		FROM Assets
		WHERE boothId = ?
		LIMIT 1
	`

	var asset models.Asset
	var previewImage, chineseName, adaptAvatars sql.NullString
	err := r.db.QueryRowContext(ctx, query, boothID).Scan(
		&asset.BoothID,
		&asset.AssetName,
		&previewImage,
		&asset.AssetType,
		&chineseName,
		&adaptAvatars,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("asset not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by boothId: %w", err)
	}

	asset.PreviewImage = previewImage.String
	asset.AssetChineseName = chineseName.String
	asset.AdaptAvatars = parseAvatarTags(adaptAvatars.String)
	return &asset, nil
}

// GetLinksByBoothID retrieves all download links for an asset, zero or more
func (r *assetRepository) GetLinksByBoothID(ctx context.Context, boothID string) ([]models.DownloadLink, error) {
	query := `
		SELECT boothId, title, downloadLink, imageUrl, description
		FROM DownloadLinks
		WHERE boothId = ?
	`

	rows, err := r.db.QueryContext(ctx, query, boothID)
	if err != nil {
		return nil, fmt.Errorf("failed to query download links: %w", err)
	}
	defer rows.Close()

	var links []models.DownloadLink
	for rows.Next() {
		var link models.DownloadLink
		var imageURL, description sql.NullString
		err := rows.Scan(
			&link.BoothID,
			&link.Title,
			&link.DownloadLink,
			&imageURL,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan download link: %w", err)
		}
		link.ImageURL = imageURL.String
		link.Description = description.String
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return links, nil
}

// Search retrieves assets matching the filter, ordered by boothId descending
// and capped at maxSearchResults rows
func (r *assetRepository) Search(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	var whereClauses []string
	var args []any

	// Build WHERE clause; every filter value is bound, never concatenated
	if filter.Query != "" {
		whereClauses = append(whereClauses, "(assetName LIKE ? OR assetChineseName LIKE ? OR boothId = ?)")
		args = append(args, "%"+filter.Query+"%", "%"+filter.Query+"%", filter.Query)
	}

	if filter.AssetType != "" && filter.AssetType != models.FilterAll {
		whereClauses = append(whereClauses, "assetType = ?")
		args = append(args, filter.AssetType)
	}

	if filter.Character != "" {
		// adaptAvatars holds a serialized tag list, so the tag is matched as
		// a quoted substring; a stored "all" tag matches every character
		whereClauses = append(whereClauses, "(LOWER(adaptAvatars) LIKE ? OR LOWER(adaptAvatars) LIKE ?)")
		args = append(args, `%"`+strings.ToLower(filter.Character)+`"%`, `%"all"%`)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT boothId, assetName, previewImage, assetType, assetChineseName, adaptAvatars
		FROM Assets
		%s
		ORDER BY boothId DESC
		LIMIT ?
	`, whereClause)

	args = append(args, maxSearchResults)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		var previewImage, chineseName, adaptAvatars sql.NullString
		err := rows.Scan(
			&asset.BoothID,
			&asset.AssetName,
			&previewImage,
			&asset.AssetType,
			&chineseName,
			&adaptAvatars,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.PreviewImage = previewImage.String
		asset.AssetChineseName = chineseName.String
		asset.AdaptAvatars = parseAvatarTags(adaptAvatars.String)
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return assets, nil
}

// Save upserts the asset row and replaces its entire link set inside a
// single transaction; on any failure the previous state is left untouched
func (r *assetRepository) Save(ctx context.Context, req *models.SaveAssetRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsertQuery := `
		INSERT INTO Assets (boothId, assetName, previewImage, assetType, assetChineseName, adaptAvatars)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			assetName = VALUES(assetName),
			previewImage = VALUES(previewImage),
			assetType = VALUES(assetType),
			assetChineseName = VALUES(assetChineseName),
			adaptAvatars = VALUES(adaptAvatars)
	`

	if _, err = tx.ExecContext(ctx, upsertQuery,
		req.BoothID,
		req.AssetName,
		nullString(req.PreviewImage),
		req.AssetType,
		nullString(req.AssetChineseName),
		serializeAvatarTags(req.AdaptAvatars),
	); err != nil {
		return fmt.Errorf("failed to upsert asset: %w", err)
	}

	// The old link set is cleared unconditionally, even when no new links
	// are supplied
	if _, err = tx.ExecContext(ctx, `DELETE FROM DownloadLinks WHERE boothId = ?`, req.BoothID); err != nil {
		return fmt.Errorf("failed to delete old download links: %w", err)
	}

	insertQuery := `
		INSERT INTO DownloadLinks (boothId, title, downloadLink, imageUrl, description)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, link := range req.Links {
		if _, err = tx.ExecContext(ctx, insertQuery,
			req.BoothID,
			link.Title,
			link.DownloadLink,
			nullString(link.ImageURL),
			nullString(link.Description),
		); err != nil {
			return fmt.Errorf("failed to insert download link: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes an asset and its link set inside a single transaction
// Deleting a nonexistent boothId is a no-op, not an error
func (r *assetRepository) Delete(ctx context.Context, boothID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM DownloadLinks WHERE boothId = ?`, boothID); err != nil {
		return fmt.Errorf("failed to delete download links: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM Assets WHERE boothId = ?`, boothID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// parseAvatarTags decodes the stored adaptAvatars text into a tag list
// Rows written before the JSON format settled are treated as having no tags
func parseAvatarTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	return tags
}

// serializeAvatarTags encodes the tag list as JSON text, or NULL when empty
func serializeAvatarTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return string(data)
}

// nullString maps empty strings to NULL for optional columns
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
