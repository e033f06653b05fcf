package seed

import (
	"context"
	"fmt"
	"time"

	"vendorhub/internal/store"
	"vendorhub/internal/utils"
	"vendorhub/pkg/types"
)

type sampleVendor struct {
	vendor    types.Vendor
	slugs     []string
	thumbnail *types.File
}

// SyncVendors loads a set of sample approved vendors with uneven profile
// richness, so the home feed's relaxation passes have something to chew on
// in development. Vendors are upserted by fixed ID; tags and thumbnails are
// replaced wholesale.
func SyncVendors(ctx context.Context, vendors *store.VendorRepository, categories *store.CategoryRepository, files *store.FileRepository) error {
	all, err := categories.AllCategoriesUnfiltered(ctx)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}

	categoryIDBySlug := make(map[string]string, len(all))
	for _, category := range all {
		categoryIDBySlug[category.Slug] = category.ID
	}

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	samples := []sampleVendor{
		{
			vendor: types.Vendor{
				ID:            "a1Qw3eRt5yUi8oPz2xCv8bHn5bVc8xZl",
				Name:          "메디스페이스 파트너스",
				Summary:       utils.StringPtr("개원 입지 분석부터 임대차 계약까지 원스톱 지원"),
				RegionPrimary: utils.StringPtr("서울"),
				PriceMin:      utils.Int64Ptr(3000000),
				PriceMax:      utils.Int64Ptr(15000000),
				RatingAvg:     utils.Float64Ptr(4.8),
				ReviewCount:   24,
				Status:        types.VendorStatusApproved,
				CreatedAt:     base,
				UpdatedAt:     base.AddDate(0, 2, 0),
			},
			slugs: []string{"location"},
			thumbnail: &types.File{
				ID:         "f1Aa2Bb3Cc4Dd5Ee6Ff7Gg8Hh9Ii0Jj1",
				StorageKey: "thumbnails/medispace.jpg",
				FileName:   "medispace.jpg",
				Purpose:    "portfolio",
			},
		},
		{
			vendor: types.Vendor{
				ID:            "b2Er4tYu6iOp9aSd2fGh5jKl8zXc1vBn",
				Name:          "닥터인테리어",
				Summary:       utils.StringPtr("의원 전문 인테리어, 설계부터 시공까지"),
				RegionPrimary: utils.StringPtr("경기"),
				PriceMin:      utils.Int64Ptr(50000000),
				PriceMax:      utils.Int64Ptr(200000000),
				RatingAvg:     utils.Float64Ptr(4.6),
				ReviewCount:   18,
				Status:        types.VendorStatusApproved,
				CreatedAt:     base.AddDate(0, 0, 10),
				UpdatedAt:     base.AddDate(0, 2, 5),
			},
			slugs: []string{"interior"},
			thumbnail: &types.File{
				ID:         "f2Kk2Ll3Mm4Nn5Oo6Pp7Qq8Rr9Ss0Tt1",
				StorageKey: "thumbnails/drinterior.jpg",
				FileName:   "drinterior.jpg",
				Purpose:    "portfolio",
			},
		},
		{
			vendor: types.Vendor{
				ID:            "c3Ty7uIo0pAs3dFg6hJk9lZx2cVb5nMq",
				Name:          "세무법인 온택스",
				Summary:       utils.StringPtr("개원의 전문 세무 기장, 첫 달 무료 상담"),
				RegionPrimary: utils.StringPtr("서울"),
				RatingAvg:     utils.Float64Ptr(4.9),
				ReviewCount:   41,
				Status:        types.VendorStatusApproved,
				CreatedAt:     base.AddDate(0, 0, 20),
				UpdatedAt:     base.AddDate(0, 1, 25),
			},
			slugs: []string{"tax-accounting"},
			thumbnail: &types.File{
				ID:         "f3Uu2Vv3Ww4Xx5Yy6Zz7Aa8Bb9Cc0Dd1",
				StorageKey: "thumbnails/ontax.jpg",
				FileName:   "ontax.jpg",
				Purpose:    "portfolio",
			},
		},
		{
			// No thumbnail and no summary: only reachable through the
			// relaxed selection passes.
			vendor: types.Vendor{
				ID:          "d4Gf5dSa8hJk2lQw4eRt6yUi0oPz3xCv",
				Name:        "클린메디 방역",
				ReviewCount: 2,
				RatingAvg:   utils.Float64Ptr(4.0),
				Status:      types.VendorStatusApproved,
				CreatedAt:   base.AddDate(0, 1, 0),
				UpdatedAt:   base.AddDate(0, 1, 0),
			},
			slugs: []string{"cleaning"},
		},
		{
			// Fresh vendor with no reviews yet.
			vendor: types.Vendor{
				ID:            "e5Hn6bVc9xZl3kMj5qWe8rTy0uIo2pAs",
				Name:          "차트온 EMR",
				Summary:       utils.StringPtr("클라우드 전자차트, 2주 무료 체험"),
				RegionPrimary: utils.StringPtr("전국"),
				Status:        types.VendorStatusApproved,
				CreatedAt:     base.AddDate(0, 2, 10),
				UpdatedAt:     base.AddDate(0, 2, 10),
			},
			slugs: []string{"emr"},
			thumbnail: &types.File{
				ID:         "f5Ee2Ff3Gg4Hh5Ii6Jj7Kk8Ll9Mm0Nn1",
				StorageKey: "thumbnails/charton.jpg",
				FileName:   "charton.jpg",
				Purpose:    "portfolio",
			},
		},
		{
			// Pending vendor: must never surface in the feed.
			vendor: types.Vendor{
				ID:        "g6Jk7lZx0cVb4nMq8wEr1tYu4iOp7aSd",
				Name:      "미승인 업체",
				Status:    types.VendorStatusPending,
				CreatedAt: base.AddDate(0, 2, 15),
				UpdatedAt: base.AddDate(0, 2, 15),
			},
			slugs: []string{"marketing"},
		},
	}

	for i := range samples {
		sample := &samples[i]

		if err := vendors.UpsertVendor(ctx, &sample.vendor); err != nil {
			return fmt.Errorf("upsert vendor %s: %w", sample.vendor.Name, err)
		}

		categoryIDs := make([]string, 0, len(sample.slugs))
		for _, slug := range sample.slugs {
			categoryID, ok := categoryIDBySlug[slug]
			if !ok {
				return fmt.Errorf("vendor %s references unknown category slug %q", sample.vendor.Name, slug)
			}
			categoryIDs = append(categoryIDs, categoryID)
		}
		if err := vendors.ReplaceVendorCategories(ctx, sample.vendor.ID, categoryIDs); err != nil {
			return fmt.Errorf("replace tags for vendor %s: %w", sample.vendor.Name, err)
		}

		if sample.thumbnail == nil {
			continue
		}

		if err := files.CreateFile(ctx, sample.thumbnail); err != nil {
			return fmt.Errorf("create thumbnail file for vendor %s: %w", sample.vendor.Name, err)
		}

		image := types.ImageRef{
			FileID: sample.thumbnail.ID,
			URL:    "https://cdn.vendorhub.example/" + sample.thumbnail.StorageKey,
		}
		if err := vendors.ReplaceVendorThumbnail(ctx, sample.vendor.ID, image); err != nil {
			return fmt.Errorf("replace thumbnail for vendor %s: %w", sample.vendor.Name, err)
		}
	}

	return nil
}
