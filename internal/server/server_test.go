package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vendorhub/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock collaborators ---

type mockFeedBuilder struct {
	feed *types.FeedResponse
	err  error
}

func (m *mockFeedBuilder) Build(_ context.Context) (*types.FeedResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.feed, nil
}

type mockVendorLister struct {
	vendors []*types.Vendor
	err     error
	query   types.VendorQuery
}

func (m *mockVendorLister) Vendors(_ context.Context, q types.VendorQuery) ([]*types.Vendor, error) {
	m.query = q
	if m.err != nil {
		return nil, m.err
	}
	return m.vendors, nil
}

type mockCategoryFinder struct {
	category *types.Category
	err      error
}

func (m *mockCategoryFinder) CategoryBySlug(_ context.Context, _ string) (*types.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

type mockFileFinder struct {
	file *types.File
	err  error
}

func (m *mockFileFinder) FileByID(_ context.Context, _ string) (*types.File, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.file, nil
}

type mockDownloadSigner struct {
	url       string
	expiresAt time.Time
	err       error

	key          string
	downloadName string
}

func (m *mockDownloadSigner) SignedDownloadURL(_ context.Context, key, downloadName string) (string, time.Time, error) {
	m.key = key
	m.downloadName = downloadName
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return m.url, m.expiresAt, nil
}

// --- Harness ---

type testMocks struct {
	feed       *mockFeedBuilder
	vendors    *mockVendorLister
	categories *mockCategoryFinder
	files      *mockFileFinder
	signer     *mockDownloadSigner
}

func newTestService(t *testing.T) (*Service, *testMocks) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		ServerPort:      8080,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 15,
		Feed:            types.FeedConfig{BuildTimeoutSec: 5},
	}

	mocks := &testMocks{
		feed:       &mockFeedBuilder{},
		vendors:    &mockVendorLister{},
		categories: &mockCategoryFinder{},
		files:      &mockFileFinder{},
		signer:     &mockDownloadSigner{},
	}

	s := New(config, logger, mocks.feed, mocks.vendors, mocks.categories, mocks.files, mocks.signer)
	return s, mocks
}

func doRequest(t *testing.T, s *Service, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- Tests ---

func TestHandleHealth(t *testing.T) {
	s, _ := newTestService(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleHomeFeed(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.feed.feed = &types.FeedResponse{
		Version:     types.FeedVersion,
		GeneratedAt: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC),
		Sections: []types.Section{
			{ID: "categories", Type: types.SectionTypeCategoryGrid, Title: "카테고리", Items: []*types.Category{}},
		},
	}

	rec := doRequest(t, s, http.MethodGet, "/api/home")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, codeOK, body.Code)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, types.FeedVersion, data["version"])
	assert.Len(t, data["sections"], 1)
}

func TestHandleHomeFeedBuildFailure(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.feed.err = context.DeadlineExceeded

	rec := doRequest(t, s, http.MethodGet, "/api/home")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, codeInternal, decodeEnvelope(t, rec).Code)
}
