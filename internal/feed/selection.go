package feed

import (
	"vendorhub/internal/utils"
	"vendorhub/pkg/types"
)

// Requirements is the content-quality profile a section asks for. Each flag
// gates candidates on the presence of the corresponding field.
type Requirements struct {
	Thumbnail bool
	Summary   bool
	Category  bool
}

// pass is one relaxation level: a requirement profile plus an exposure cap.
// A cap of 0 means uncapped.
type pass struct {
	maxAppearances int
	req            Requirements
}

// Picker fills section quotas from ranked candidate pools while limiting how
// many sections of one feed response may contain the same vendor.
//
// A Picker is created once per feed build and mutated by every Pick call in
// that build; it must not be shared across builds or goroutines. Sections are
// picked sequentially so that later sections observe the exposure counts of
// earlier ones.
type Picker struct {
	maxAppearances int
	exposure       map[string]int
	tags           map[string][]*types.Category
	thumbnails     map[string]*types.ImageRef
}

func NewPicker(maxAppearances int, tags map[string][]*types.Category, thumbnails map[string]*types.ImageRef) *Picker {
	return &Picker{
		maxAppearances: maxAppearances,
		exposure:       make(map[string]int),
		tags:           tags,
		thumbnails:     thumbnails,
	}
}

// Pick selects up to quota vendors from the ranked candidates. It tries to
// fill the quota in successive passes, each relaxing one requirement, never
// revisiting a vendor already picked for this section:
//
//  1. full profile, exposure capped
//  2. drop the summary requirement
//  3. drop the category requirement
//  4. no content requirements
//  5. no content requirements, no exposure cap (last resort; a vendor may
//     exceed the soft cap rather than leave the section under-filled)
//
// Candidates are walked in their given order within each pass, so the result
// preserves ranking order per pass and prefers fully decorated vendors over
// bare ones. Every selected vendor's exposure count is incremented.
func (p *Picker) Pick(candidates []*types.Vendor, quota int, req Requirements) []*types.Vendor {
	picked := make([]*types.Vendor, 0, quota)
	pickedIDs := make(map[string]struct{}, quota)

	passes := []pass{
		{maxAppearances: p.maxAppearances, req: req},
		{maxAppearances: p.maxAppearances, req: Requirements{Thumbnail: req.Thumbnail, Category: req.Category}},
		{maxAppearances: p.maxAppearances, req: Requirements{Thumbnail: req.Thumbnail}},
		{maxAppearances: p.maxAppearances},
		{maxAppearances: 0},
	}

	for _, ps := range passes {
		for _, vendor := range candidates {
			if len(picked) >= quota {
				break
			}
			if _, ok := pickedIDs[vendor.ID]; ok {
				continue
			}

			current := p.exposure[vendor.ID]
			if ps.maxAppearances > 0 && current >= ps.maxAppearances {
				continue
			}
			if ps.req.Thumbnail && p.thumbnails[vendor.ID] == nil {
				continue
			}
			if ps.req.Summary && utils.PtrString(vendor.Summary) == "" {
				continue
			}
			if ps.req.Category && len(p.tags[vendor.ID]) == 0 {
				continue
			}

			picked = append(picked, vendor)
			pickedIDs[vendor.ID] = struct{}{}
			p.exposure[vendor.ID] = current + 1
		}
	}

	return picked
}
