package seed

import (
	"context"
	"fmt"

	"vendorhub/internal/store"
	"vendorhub/pkg/types"
)

// SyncCategories syncs the database with the category definitions below.
// This file is the source of truth for the top-level category tree:
// - Inserts new categories that don't exist
// - Updates existing categories that have changed
// - Deletes categories from DB that aren't in this list
//
// To generate new IDs: `go run ./cmd/vendorhub nanoid`
func SyncCategories(ctx context.Context, repo *store.CategoryRepository) error {
	categories := []types.Category{
		{
			ID:        "vQ7mJ2kLxP9aWc4eRt6yUi8oZs1dFg3h",
			Name:      "입지/부동산",
			Slug:      "location",
			Depth:     1,
			SortOrder: 1,
			IsActive:  true,
		},
		{
			ID:        "Hn5bVc8xZl2kMj4qWe7rTy9uIo1pAs6d",
			Name:      "인테리어",
			Slug:      "interior",
			Depth:     1,
			SortOrder: 2,
			IsActive:  true,
		},
		{
			ID:        "Gf4dSa7hJk1lQw3eRt5yUi9oPz2xCv8b",
			Name:      "의료기기",
			Slug:      "medical-equipment",
			Depth:     1,
			SortOrder: 3,
			IsActive:  true,
		},
		{
			ID:        "Ty6uIo9pAs2dFg5hJk8lZx1cVb4nMq7w",
			Name:      "마케팅",
			Slug:      "marketing",
			Depth:     1,
			SortOrder: 4,
			IsActive:  true,
		},
		{
			ID:        "Er3tYu6iOp9aSd2fGh5jKl8zXc1vBn4m",
			Name:      "세무/회계",
			Slug:      "tax-accounting",
			Depth:     1,
			SortOrder: 5,
			IsActive:  true,
		},
		{
			ID:        "Wq2eRt5yUi8oPa1sDf4gHj7kLz0xCv3b",
			Name:      "노무",
			Slug:      "labor",
			Depth:     1,
			SortOrder: 6,
			IsActive:  true,
		},
		{
			ID:        "Zx1cVb4nMq7wEr0tYu3iOp6aSd9fGh2j",
			Name:      "전자차트/EMR",
			Slug:      "emr",
			Depth:     1,
			SortOrder: 7,
			IsActive:  true,
		},
		{
			ID:        "Kl8zXc1vBn4mQw7eRt0yUi3oPa6sDf9g",
			Name:      "청소/소독",
			Slug:      "cleaning",
			Depth:     1,
			SortOrder: 8,
			IsActive:  true,
		},
	}

	existing, err := repo.AllCategoriesUnfiltered(ctx)
	if err != nil {
		return fmt.Errorf("fetch existing categories: %w", err)
	}

	wanted := make(map[string]struct{}, len(categories))
	for i := range categories {
		wanted[categories[i].ID] = struct{}{}
		if err := repo.UpsertCategory(ctx, &categories[i]); err != nil {
			return fmt.Errorf("upsert category %s: %w", categories[i].Slug, err)
		}
	}

	for _, category := range existing {
		if _, ok := wanted[category.ID]; ok {
			continue
		}
		if err := repo.DeleteCategory(ctx, category.ID); err != nil {
			return fmt.Errorf("delete category %s: %w", category.Slug, err)
		}
	}

	return nil
}
