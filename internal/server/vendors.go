package server

import (
	"net/http"

	"vendorhub/pkg/types"
)

const (
	defaultVendorListLimit = 20
	maxVendorListLimit     = 60
)

type vendorListQuery struct {
	Sort     string `form:"sort"`
	Category string `form:"category"`
	Limit    uint64 `form:"limit"`
}

type vendorListData struct {
	Items []*types.Vendor `json:"items"`
}

func (s *Service) handleVendorList(w http.ResponseWriter, r *http.Request) {
	var params vendorListQuery
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, "invalid query parameters")
		return
	}

	sort := types.VendorSort(params.Sort)
	if params.Sort == "" {
		sort = types.VendorSortRecommended
	}
	if !types.ValidVendorSort(sort) {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, "unknown sort strategy")
		return
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultVendorListLimit
	}
	if limit > maxVendorListLimit {
		limit = maxVendorListLimit
	}

	query := types.VendorQuery{Sort: sort, Limit: limit}

	if params.Category != "" {
		category, err := s.categories.CategoryBySlug(r.Context(), params.Category)
		if err != nil {
			s.logger.WithError(err).Error("failed to resolve category filter")
			s.respondError(w, http.StatusInternalServerError, codeInternal, "failed to resolve category")
			return
		}
		if category == nil {
			s.respondError(w, http.StatusNotFound, codeNotFound, "category not found")
			return
		}
		query.CategoryID = category.ID
	}

	vendors, err := s.vendors.Vendors(r.Context(), query)
	if err != nil {
		s.logger.WithError(err).Error("failed to list vendors")
		s.respondError(w, http.StatusInternalServerError, codeInternal, "failed to list vendors")
		return
	}

	s.respondOK(w, vendorListData{Items: vendors})
}
