package server

import (
	"errors"
	"net/http"
	"testing"

	"vendorhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVendorListDefaults(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.vendors.vendors = []*types.Vendor{{ID: "v1", Name: "vendor"}}

	rec := doRequest(t, s, http.MethodGet, "/api/vendors")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeOK, decodeEnvelope(t, rec).Code)

	assert.Equal(t, types.VendorSortRecommended, mocks.vendors.query.Sort)
	assert.Equal(t, uint64(defaultVendorListLimit), mocks.vendors.query.Limit)
	assert.Empty(t, mocks.vendors.query.CategoryID)
}

func TestHandleVendorListSortAndLimit(t *testing.T) {
	s, mocks := newTestService(t)

	rec := doRequest(t, s, http.MethodGet, "/api/vendors?sort=newest&limit=500")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.VendorSortNewest, mocks.vendors.query.Sort)
	assert.Equal(t, uint64(maxVendorListLimit), mocks.vendors.query.Limit)
}

func TestHandleVendorListUnknownSort(t *testing.T) {
	s, _ := newTestService(t)

	rec := doRequest(t, s, http.MethodGet, "/api/vendors?sort=bestest")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeBadRequest, decodeEnvelope(t, rec).Code)
}

func TestHandleVendorListCategoryFilter(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.categories.category = &types.Category{ID: "cat1", Slug: "interior"}

	rec := doRequest(t, s, http.MethodGet, "/api/vendors?category=interior")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cat1", mocks.vendors.query.CategoryID)
}

func TestHandleVendorListCategoryNotFound(t *testing.T) {
	s, _ := newTestService(t)

	rec := doRequest(t, s, http.MethodGet, "/api/vendors?category=nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decodeEnvelope(t, rec).Code)
}

func TestHandleVendorListStoreFailure(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.vendors.err = errors.New("boom")

	rec := doRequest(t, s, http.MethodGet, "/api/vendors")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, codeInternal, decodeEnvelope(t, rec).Code)
}
