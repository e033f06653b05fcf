package store

import (
	"context"
	"fmt"
	"time"

	"vendorhub/internal/utils"
	"vendorhub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	vendorTableName         = "vendorhub.vendors"
	vendorCategoryTableName = "vendorhub.vendor_categories"
	portfolioTableName      = "vendorhub.vendor_portfolios"
	portfolioAssetTableName = "vendorhub.vendor_portfolio_assets"
)

var vendorColumns = utils.StructTagValues(types.Vendor{})

type VendorRepository struct {
	pool *pgxpool.Pool
}

func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// Vendors returns approved vendors ranked by the requested strategy,
// optionally restricted to one category. Each strategy is a fixed multi-key
// ORDER BY; ties always fall through to most recently updated.
func (r *VendorRepository) Vendors(ctx context.Context, q types.VendorQuery) ([]*types.Vendor, error) {
	builder := psql().
		Select(utils.PrefixSliceOfStrings("v", vendorColumns)...).
		From(vendorTableName + " v").
		Where(sq.Eq{"v.status": types.VendorStatusApproved})

	if q.CategoryID != "" {
		builder = builder.
			Join(vendorCategoryTableName + " vc ON vc.vendor_id = v.id").
			Where(sq.Eq{"vc.category_id": q.CategoryID})
	}

	if q.MinReviewCount != nil {
		builder = builder.Where(sq.GtOrEq{"v.review_count": *q.MinReviewCount})
	}

	switch q.Sort {
	case types.VendorSortPopular:
		builder = builder.OrderBy(
			"v.review_count DESC",
			"v.rating_avg DESC NULLS LAST",
			"v.updated_at DESC",
		)
	case types.VendorSortNewest:
		builder = builder.OrderBy("v.created_at DESC")
	case types.VendorSortRecommended, types.VendorSortReviewed:
		builder = builder.OrderBy(
			"v.rating_avg DESC NULLS LAST",
			"v.review_count DESC",
			"v.updated_at DESC",
		)
	default:
		return nil, fmt.Errorf("unknown vendor sort %q", q.Sort)
	}

	query, args, err := builder.Limit(q.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate vendors query: %w", err)
	}

	var vendors []*types.Vendor
	err = pgxscan.Select(ctx, r.pool, &vendors, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendors: %w", err)
	}

	return vendors, nil
}

type vendorCategoryRow struct {
	VendorID   string    `db:"vendor_id"`
	CategoryID string    `db:"category_id"`
	ParentID   *string   `db:"parent_id"`
	Depth      int       `db:"depth"`
	Name       string    `db:"name"`
	Slug       string    `db:"slug"`
	SortOrder  int       `db:"sort_order"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// CategoriesByVendorIDs bulk-fetches category tags for the given vendors.
// Vendors without tags are simply absent from the returned map.
func (r *VendorRepository) CategoriesByVendorIDs(ctx context.Context, vendorIDs []string) (map[string][]*types.Category, error) {
	result := make(map[string][]*types.Category, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return result, nil
	}

	query, args, err := psql().
		Select(
			"vc.vendor_id",
			"c.id AS category_id",
			"c.parent_id",
			"c.depth",
			"c.name",
			"c.slug",
			"c.sort_order",
			"c.is_active",
			"c.created_at",
			"c.updated_at",
		).
		From(vendorCategoryTableName + " vc").
		Join(categoryTableName + " c ON c.id = vc.category_id").
		Where(sq.Eq{"vc.vendor_id": vendorIDs}).
		OrderBy("vc.vendor_id ASC", "c.depth ASC", "c.sort_order ASC", "c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate vendor categories query: %w", err)
	}

	var rows []*vendorCategoryRow
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor categories: %w", err)
	}

	for _, row := range rows {
		result[row.VendorID] = append(result[row.VendorID], &types.Category{
			ID:        row.CategoryID,
			ParentID:  row.ParentID,
			Depth:     row.Depth,
			Name:      row.Name,
			Slug:      row.Slug,
			SortOrder: row.SortOrder,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return result, nil
}

type vendorThumbnailRow struct {
	VendorID string `db:"vendor_id"`
	FileID   string `db:"file_id"`
	URL      string `db:"url"`
}

// ThumbnailsByVendorIDs bulk-fetches one thumbnail per vendor: the first asset
// of the vendor's first portfolio by sort order. Vendors without assets are
// absent from the returned map.
func (r *VendorRepository) ThumbnailsByVendorIDs(ctx context.Context, vendorIDs []string) (map[string]*types.ImageRef, error) {
	result := make(map[string]*types.ImageRef, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return result, nil
	}

	query, args, err := psql().
		Select("vp.vendor_id", "vpa.file_id", "vpa.url").
		Options("DISTINCT ON (vp.vendor_id)").
		From(portfolioAssetTableName + " vpa").
		Join(portfolioTableName + " vp ON vp.id = vpa.portfolio_id").
		Where(sq.Eq{"vp.vendor_id": vendorIDs}).
		OrderBy("vp.vendor_id ASC", "vp.sort_order ASC", "vpa.sort_order ASC", "vpa.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate vendor thumbnails query: %w", err)
	}

	var rows []*vendorThumbnailRow
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor thumbnails: %w", err)
	}

	for _, row := range rows {
		result[row.VendorID] = &types.ImageRef{FileID: row.FileID, URL: row.URL}
	}

	return result, nil
}

func (r *VendorRepository) UpsertVendor(ctx context.Context, vendor *types.Vendor) error {
	now := time.Now()
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = now
	}
	if vendor.UpdatedAt.IsZero() {
		vendor.UpdatedAt = now
	}

	vendorMap := utils.StructToMap(vendor)

	updateMap := make(map[string]interface{})
	for k, v := range vendorMap {
		if k != "id" && k != "created_at" {
			updateMap[k] = v
		}
	}

	query, args, err := psql().
		Insert(vendorTableName).
		SetMap(vendorMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(updateMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert vendor query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert vendor")
}

// ReplaceVendorCategories swaps a vendor's category tags for the given set.
func (r *VendorRepository) ReplaceVendorCategories(ctx context.Context, vendorID string, categoryIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query, args, err := psql().
		Delete(vendorCategoryTableName).
		Where(sq.Eq{"vendor_id": vendorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete tags query: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete vendor tags: %w", err)
	}

	now := time.Now()
	for _, categoryID := range categoryIDs {
		query, args, err := psql().
			Insert(vendorCategoryTableName).
			Columns("vendor_id", "category_id", "created_at").
			Values(vendorID, categoryID, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate insert tag query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert vendor tag: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ReplaceVendorThumbnail resets a vendor's portfolio to a single image.
func (r *VendorRepository) ReplaceVendorThumbnail(ctx context.Context, vendorID string, image types.ImageRef) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query, args, err := psql().
		Delete(portfolioAssetTableName).
		Where(sq.Expr("portfolio_id IN (SELECT id FROM "+portfolioTableName+" WHERE vendor_id = ?)", vendorID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete assets query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete portfolio assets: %w", err)
	}

	query, args, err = psql().
		Delete(portfolioTableName).
		Where(sq.Eq{"vendor_id": vendorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete portfolios query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete portfolios: %w", err)
	}

	now := time.Now()
	portfolioID := utils.NanoID()

	query, args, err = psql().
		Insert(portfolioTableName).
		Columns("id", "vendor_id", "sort_order", "created_at", "updated_at").
		Values(portfolioID, vendorID, 0, now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert portfolio query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	query, args, err = psql().
		Insert(portfolioAssetTableName).
		Columns("id", "portfolio_id", "file_id", "url", "sort_order", "created_at").
		Values(utils.NanoID(), portfolioID, image.FileID, image.URL, 0, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert asset query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert portfolio asset: %w", err)
	}

	return tx.Commit(ctx)
}
