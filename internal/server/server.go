package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vendorhub/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// FeedBuilder composes the home feed.
type FeedBuilder interface {
	Build(ctx context.Context) (*types.FeedResponse, error)
}

// VendorLister serves the browse endpoint.
type VendorLister interface {
	Vendors(ctx context.Context, q types.VendorQuery) ([]*types.Vendor, error)
}

// CategoryFinder resolves browse category filters.
type CategoryFinder interface {
	CategoryBySlug(ctx context.Context, slug string) (*types.Category, error)
}

// FileFinder looks up stored file records.
type FileFinder interface {
	FileByID(ctx context.Context, fileID string) (*types.File, error)
}

// DownloadSigner issues time-limited download URLs.
type DownloadSigner interface {
	SignedDownloadURL(ctx context.Context, key, downloadName string) (string, time.Time, error)
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	feed       FeedBuilder
	vendors    VendorLister
	categories CategoryFinder
	files      FileFinder
	storage    DownloadSigner

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	feed FeedBuilder,
	vendors VendorLister,
	categories CategoryFinder,
	files FileFinder,
	storage DownloadSigner,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		feed:       feed,
		vendors:    vendors,
		categories: categories,
		files:      files,
		storage:    storage,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/home", s.handleHomeFeed, http.MethodGet)
	r.HandleFunc("/api/vendors", s.handleVendorList, http.MethodGet)
	r.HandleFunc("/api/files/:fileID/download", s.handleFileDownload, http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
