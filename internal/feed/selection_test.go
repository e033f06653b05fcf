package feed

import (
	"fmt"
	"testing"

	"vendorhub/internal/utils"
	"vendorhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVendor(id string) *types.Vendor {
	return &types.Vendor{
		ID:     id,
		Name:   "vendor-" + id,
		Status: types.VendorStatusApproved,
	}
}

func decoratedVendor(id string) *types.Vendor {
	v := testVendor(id)
	v.Summary = utils.StringPtr("summary " + id)
	return v
}

// fullPicker returns a picker that knows a thumbnail and a category tag for
// every given vendor.
func fullPicker(maxAppearances int, vendors ...*types.Vendor) *Picker {
	tags := make(map[string][]*types.Category)
	thumbnails := make(map[string]*types.ImageRef)
	for _, v := range vendors {
		tags[v.ID] = []*types.Category{{ID: "cat-" + v.ID, Name: "Category", Depth: 1}}
		thumbnails[v.ID] = &types.ImageRef{FileID: "file-" + v.ID, URL: "https://cdn.example/" + v.ID}
	}
	return NewPicker(maxAppearances, tags, thumbnails)
}

func vendorIDs(vendors []*types.Vendor) []string {
	ids := make([]string, 0, len(vendors))
	for _, v := range vendors {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestPickerFillsQuotaInRankOrder(t *testing.T) {
	candidates := make([]*types.Vendor, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, decoratedVendor(fmt.Sprintf("v%02d", i)))
	}

	picker := fullPicker(2, candidates...)
	picked := picker.Pick(candidates, 8, Requirements{Thumbnail: true, Summary: true, Category: true})

	require.Len(t, picked, 8)
	assert.Equal(t, vendorIDs(candidates[:8]), vendorIDs(picked))
}

func TestPickerRelaxesWhenNoThumbnailsExist(t *testing.T) {
	// 10 bare vendors, thumbnail required: passes A-C find nothing, pass D
	// fills the whole quota in rank order.
	candidates := make([]*types.Vendor, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, testVendor(fmt.Sprintf("v%02d", i)))
	}

	picker := NewPicker(2, nil, nil)
	picked := picker.Pick(candidates, 8, Requirements{Thumbnail: true, Summary: true, Category: true})

	require.Len(t, picked, 8)
	assert.Equal(t, vendorIDs(candidates[:8]), vendorIDs(picked))
}

func TestPickerPrefersDecoratedOverBare(t *testing.T) {
	// The top-ranked vendor has no thumbnail; the next two are fully
	// decorated. Decorated vendors win the early passes even though the bare
	// one outranks them.
	bare := testVendor("bare")
	second := decoratedVendor("second")
	third := decoratedVendor("third")

	picker := fullPicker(2, second, third)
	picked := picker.Pick([]*types.Vendor{bare, second, third}, 3, Requirements{Thumbnail: true})

	require.Len(t, picked, 3)
	assert.Equal(t, []string{"second", "third", "bare"}, vendorIDs(picked))
}

func TestPickerDropsSummaryRequirementFirst(t *testing.T) {
	// noSummary still has thumbnail and tag, so it qualifies at pass B, ahead
	// of the completely bare candidate.
	full := decoratedVendor("full")
	noSummary := testVendor("nosummary")
	bare := testVendor("bare")

	tags := map[string][]*types.Category{
		"full":      {{ID: "c1"}},
		"nosummary": {{ID: "c1"}},
	}
	thumbnails := map[string]*types.ImageRef{
		"full":      {FileID: "f1", URL: "u1"},
		"nosummary": {FileID: "f2", URL: "u2"},
	}

	picker := NewPicker(2, tags, thumbnails)
	picked := picker.Pick([]*types.Vendor{bare, noSummary, full}, 3, Requirements{Thumbnail: true, Summary: true, Category: true})

	require.Len(t, picked, 3)
	assert.Equal(t, []string{"full", "nosummary", "bare"}, vendorIDs(picked))
}

func TestPickerTreatsEmptySummaryAsMissing(t *testing.T) {
	v := testVendor("v1")
	v.Summary = utils.StringPtr("")

	picker := fullPicker(2, v)
	picked := picker.Pick([]*types.Vendor{v}, 1, Requirements{Thumbnail: true, Summary: true})

	// Still picked, but only once relaxation drops the summary requirement.
	require.Len(t, picked, 1)
}

func TestPickerNoDuplicatesWithinSection(t *testing.T) {
	v1 := decoratedVendor("v1")
	v2 := decoratedVendor("v2")

	picker := fullPicker(2, v1, v2)
	picked := picker.Pick([]*types.Vendor{v1, v2, v1, v2}, 4, Requirements{Thumbnail: true})

	assert.Equal(t, []string{"v1", "v2"}, vendorIDs(picked))
}

func TestPickerExposureCapAcrossSections(t *testing.T) {
	shared := decoratedVendor("shared")
	alt := decoratedVendor("alt")
	pool := []*types.Vendor{shared, alt}

	picker := fullPicker(2, shared, alt)

	first := picker.Pick(pool, 1, Requirements{Thumbnail: true})
	require.Equal(t, []string{"shared"}, vendorIDs(first))

	second := picker.Pick(pool, 1, Requirements{Thumbnail: true})
	require.Equal(t, []string{"shared"}, vendorIDs(second))

	// Cap reached: the third section must fall back to the alternative.
	third := picker.Pick(pool, 1, Requirements{Thumbnail: true})
	assert.Equal(t, []string{"alt"}, vendorIDs(third))
}

func TestPickerLastResortIgnoresExposureCap(t *testing.T) {
	only := decoratedVendor("only")
	pool := []*types.Vendor{only}

	picker := fullPicker(2, only)

	for i := 0; i < 2; i++ {
		require.Equal(t, []string{"only"}, vendorIDs(picker.Pick(pool, 1, Requirements{Thumbnail: true})))
	}

	// No uncapped candidate remains, so the final pass re-admits the vendor
	// rather than leaving the section empty.
	overflow := picker.Pick(pool, 1, Requirements{Thumbnail: true})
	assert.Equal(t, []string{"only"}, vendorIDs(overflow))
	assert.Equal(t, 3, picker.exposure["only"])
}

func TestPickerEmptyPool(t *testing.T) {
	picker := NewPicker(2, nil, nil)
	picked := picker.Pick(nil, 8, Requirements{Thumbnail: true})
	assert.Empty(t, picked)
}

func TestPickerQuotaLargerThanPool(t *testing.T) {
	v1 := decoratedVendor("v1")
	v2 := decoratedVendor("v2")

	picker := fullPicker(2, v1, v2)
	picked := picker.Pick([]*types.Vendor{v1, v2}, 8, Requirements{Thumbnail: true})

	assert.Equal(t, []string{"v1", "v2"}, vendorIDs(picked))
}
