package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendorhub/internal/db"
	"vendorhub/internal/feed"
	"vendorhub/internal/server"
	"vendorhub/internal/storage"
	"vendorhub/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}
	s3Client := s3.NewFromConfig(awsConfig)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	categoryRepo := store.NewCategoryRepository(pool)
	vendorRepo := store.NewVendorRepository(pool)
	fileRepo := store.NewFileRepository(pool)

	fileStorage := storage.NewFileStorage(
		s3Client,
		config.FileBucket,
		time.Duration(config.DownloadURLTTLSec)*time.Second,
	)

	composer := feed.NewComposer(logger, feed.Policy{
		SectionSize:           config.Feed.SectionSize,
		CandidateSize:         config.Feed.CandidateSize,
		CategoryGridSize:      config.Feed.CategoryGridSize,
		CategorySectionCount:  config.Feed.CategorySectionCount,
		MaxSectionAppearances: config.Feed.MaxSectionAppearances,
	}, categoryRepo, vendorRepo)

	srv := server.New(
		config,
		logger,
		composer,
		vendorRepo,
		categoryRepo,
		fileRepo,
		fileStorage,
	)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
