package feed

import (
	"context"
	"fmt"
	"time"

	"vendorhub/internal/utils"
	"vendorhub/pkg/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Vendors in the "reviewed" carousel must have at least this many reviews.
const minReviewedCount = 3

// CategorySource provides the category tree.
type CategorySource interface {
	AllCategories(ctx context.Context) ([]*types.Category, error)
}

// VendorSource provides ranked candidate pools and bulk enrichment reads.
type VendorSource interface {
	Vendors(ctx context.Context, q types.VendorQuery) ([]*types.Vendor, error)
	CategoriesByVendorIDs(ctx context.Context, vendorIDs []string) (map[string][]*types.Category, error)
	ThumbnailsByVendorIDs(ctx context.Context, vendorIDs []string) (map[string]*types.ImageRef, error)
}

// Policy carries the home feed tuning knobs.
type Policy struct {
	SectionSize           int
	CandidateSize         int
	CategoryGridSize      int
	CategorySectionCount  int
	MaxSectionAppearances int
}

func DefaultPolicy() Policy {
	return Policy{
		SectionSize:           8,
		CandidateSize:         60,
		CategoryGridSize:      10,
		CategorySectionCount:  4,
		MaxSectionAppearances: 2,
	}
}

// Composer assembles the home feed from ranked candidate pools. It holds no
// per-request state; every Build call creates its own Picker.
type Composer struct {
	logger     *logrus.Logger
	policy     Policy
	categories CategorySource
	vendors    VendorSource
	now        func() time.Time
}

func NewComposer(logger *logrus.Logger, policy Policy, categories CategorySource, vendors VendorSource) *Composer {
	return &Composer{
		logger:     logger,
		policy:     policy,
		categories: categories,
		vendors:    vendors,
		now:        time.Now,
	}
}

type carouselSpec struct {
	id       string
	title    string
	pool     []*types.Vendor
	req      Requirements
	category *types.Category
}

// Build composes one feed response. All candidate pools are fetched
// concurrently, then both enrichment reads, then sections are selected
// sequentially over a shared exposure counter in a fixed order: category
// grid, recommended, popular, reviewed, newest, per-category carousels.
// That order is load-bearing — it decides which vendors later sections may
// still pick. Any read failure aborts the whole build.
func (c *Composer) Build(ctx context.Context) (*types.FeedResponse, error) {
	categories, err := c.categories.AllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	var mainCategories []*types.Category
	for _, category := range categories {
		if category.Depth == 1 {
			mainCategories = append(mainCategories, category)
		}
	}
	gridCategories := firstN(mainCategories, c.policy.CategoryGridSize)
	sectionCategories := firstN(mainCategories, c.policy.CategorySectionCount)

	candidateLimit := uint64(c.policy.CandidateSize)
	queries := []types.VendorQuery{
		{Sort: types.VendorSortRecommended, Limit: candidateLimit},
		{Sort: types.VendorSortPopular, Limit: candidateLimit},
		{Sort: types.VendorSortReviewed, MinReviewCount: utils.IntPtr(minReviewedCount), Limit: candidateLimit},
		{Sort: types.VendorSortNewest, Limit: candidateLimit},
	}
	for _, category := range sectionCategories {
		queries = append(queries, types.VendorQuery{
			Sort:       types.VendorSortRecommended,
			CategoryID: category.ID,
			Limit:      candidateLimit,
		})
	}

	pools := make([][]*types.Vendor, len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, q := range queries {
		group.Go(func() error {
			vendors, err := c.vendors.Vendors(groupCtx, q)
			if err != nil {
				return fmt.Errorf("fetch %s candidates: %w", q.Sort, err)
			}
			pools[i] = vendors
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	vendorIDs := unionVendorIDs(pools)

	var (
		tags       map[string][]*types.Category
		thumbnails map[string]*types.ImageRef
	)

	enrich, enrichCtx := errgroup.WithContext(ctx)
	enrich.Go(func() error {
		var err error
		tags, err = c.vendors.CategoriesByVendorIDs(enrichCtx, vendorIDs)
		return utils.ErrorWrapOrNil(err, "fetch vendor category tags")
	})
	enrich.Go(func() error {
		var err error
		thumbnails, err = c.vendors.ThumbnailsByVendorIDs(enrichCtx, vendorIDs)
		return utils.ErrorWrapOrNil(err, "fetch vendor thumbnails")
	})
	if err := enrich.Wait(); err != nil {
		return nil, err
	}

	picker := NewPicker(c.policy.MaxSectionAppearances, tags, thumbnails)

	sections := make([]types.Section, 0, 5+len(sectionCategories))
	sections = append(sections, types.Section{
		ID:    "categories",
		Type:  types.SectionTypeCategoryGrid,
		Title: "카테고리",
		Items: gridCategories,
	})

	carousels := []carouselSpec{
		{id: "recommended", title: "추천 파트너", pool: pools[0], req: Requirements{Thumbnail: true, Summary: true, Category: true}},
		{id: "popular", title: "이번 달 인기", pool: pools[1], req: Requirements{Thumbnail: true}},
		{id: "reviewed", title: "리뷰로 검증", pool: pools[2], req: Requirements{Thumbnail: true}},
		{id: "newest", title: "신규 입점", pool: pools[3], req: Requirements{Thumbnail: true}},
	}
	for i, category := range sectionCategories {
		carousels = append(carousels, carouselSpec{
			id:       "category:" + category.Slug,
			title:    category.Name + " 추천",
			pool:     pools[4+i],
			req:      Requirements{Thumbnail: true},
			category: category,
		})
	}

	for _, carousel := range carousels {
		picked := picker.Pick(carousel.pool, c.policy.SectionSize, carousel.req)
		if len(picked) == 0 {
			continue
		}

		sections = append(sections, types.Section{
			ID:       carousel.id,
			Type:     types.SectionTypeVendorCarousel,
			Title:    carousel.title,
			Category: carousel.category,
			Items:    toCards(picked, tags, thumbnails),
		})
	}

	c.logger.WithFields(logrus.Fields{
		"sections":   len(sections),
		"candidates": len(vendorIDs),
	}).Debug("home feed composed")

	return &types.FeedResponse{
		Version:     types.FeedVersion,
		GeneratedAt: c.now().UTC(),
		Sections:    sections,
	}, nil
}

func toCards(vendors []*types.Vendor, tags map[string][]*types.Category, thumbnails map[string]*types.ImageRef) []*types.VendorCard {
	cards := make([]*types.VendorCard, 0, len(vendors))
	for _, vendor := range vendors {
		vendorTags := tags[vendor.ID]
		if vendorTags == nil {
			vendorTags = []*types.Category{}
		}

		cards = append(cards, &types.VendorCard{
			ID:              vendor.ID,
			Name:            vendor.Name,
			Summary:         vendor.Summary,
			RegionPrimary:   vendor.RegionPrimary,
			RegionSecondary: vendor.RegionSecondary,
			PriceMin:        vendor.PriceMin,
			PriceMax:        vendor.PriceMax,
			RatingAvg:       vendor.RatingAvg,
			ReviewCount:     vendor.ReviewCount,
			Categories:      vendorTags,
			Thumbnail:       thumbnails[vendor.ID],
		})
	}
	return cards
}

// unionVendorIDs collects the distinct vendor ids across all pools,
// preserving first-seen order so enrichment reads are deterministic.
func unionVendorIDs(pools [][]*types.Vendor) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, pool := range pools {
		for _, vendor := range pool {
			if _, ok := seen[vendor.ID]; ok {
				continue
			}
			seen[vendor.ID] = struct{}{}
			ids = append(ids, vendor.ID)
		}
	}
	return ids
}

func firstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
