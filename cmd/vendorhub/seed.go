package main

import (
	"context"
	"fmt"

	"vendorhub/internal/db"
	"vendorhub/internal/seed"
	"vendorhub/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)
		vendorRepo := store.NewVendorRepository(pool)
		fileRepo := store.NewFileRepository(pool)

		logrus.Info("Seeding categories...")
		if err := seed.SyncCategories(ctx, categoryRepo); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		logrus.Info("Seeding vendors...")
		if err := seed.SyncVendors(ctx, vendorRepo, categoryRepo, fileRepo); err != nil {
			return fmt.Errorf("failed to seed vendors: %w", err)
		}

		categories, err := categoryRepo.AllCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to verify seeded categories: %w", err)
		}
		pp.Println("seeded categories:", len(categories))

		logrus.Info("Seed complete")
		return nil
	},
}
