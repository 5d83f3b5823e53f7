// Package catalog defines the sculpture listing filter contract: the set of
// optional filter parameters accepted by the listing endpoints and a pure
// in-memory re-derivation of the same predicate, used by clients to re-filter
// an already-fetched page without another round trip. The SQL side of the
// contract is built from the same field set in the sculpture repository.
package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"sculpture_shop/internal/domain/models"
)

const (
	// DefaultLimit applies when the caller sends no limit.
	DefaultLimit = 100
	// MaxLimit is the hard pagination cap: requested limits are clamped,
	// never rejected.
	MaxLimit = 500

	DefaultFeaturedLimit = 10
	DefaultRelatedLimit  = 4
	DefaultRequestLimit  = 50
)

// Filter is the set of optional listing filters. Nil fields mean "any";
// present fields combine with logical AND.
type Filter struct {
	CategoryID *int64
	MaterialID *int64
	MinPrice   *float64
	MaxPrice   *float64
	SearchTerm *string
	IsFeatured *bool
	Limit      int
	Offset     int
}

// ParseFilter reads a filter from query parameters. Parsing is lenient:
// an unparseable number or boolean drops the filter instead of failing the
// request. Limit is clamped to [1, MaxLimit], offset to >= 0.
func ParseFilter(values url.Values) Filter {
	f := Filter{
		CategoryID: parseInt64(values.Get("category_id")),
		MaterialID: parseInt64(values.Get("material_id")),
		MinPrice:   parseFloat(values.Get("min_price")),
		MaxPrice:   parseFloat(values.Get("max_price")),
		IsFeatured: parseBool(values.Get("is_featured")),
		Limit:      DefaultLimit,
	}

	if term := strings.TrimSpace(values.Get("search_term")); term != "" {
		f.SearchTerm = &term
	}

	if limit := parseInt64(values.Get("limit")); limit != nil {
		f.Limit = int(*limit)
	}
	f.Limit = ClampLimit(f.Limit, DefaultLimit)

	if offset := parseInt64(values.Get("offset")); offset != nil && *offset > 0 {
		f.Offset = int(*offset)
	}

	return f
}

// ClampLimit applies the fallback to non-positive limits and caps the rest
// at MaxLimit. Every listing endpoint's page size goes through here.
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Match reports whether a sculpture satisfies every present filter. The
// search term matches the name case-insensitively; MatchText widens that
// to description, category and material for client-side re-filtering.
func (f Filter) Match(s models.Sculpture) bool {
	if f.CategoryID != nil && (s.CategoryID == nil || *s.CategoryID != *f.CategoryID) {
		return false
	}
	if f.MaterialID != nil && (s.MaterialID == nil || *s.MaterialID != *f.MaterialID) {
		return false
	}
	if f.MinPrice != nil && s.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && s.Price > *f.MaxPrice {
		return false
	}
	if f.IsFeatured != nil && s.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.SearchTerm != nil && !containsFold(s.Name, *f.SearchTerm) {
		return false
	}
	return true
}

// MatchText is the client-side variant of Match: the search term also
// matches description, category name and material name.
func (f Filter) MatchText(s models.Sculpture) bool {
	if f.SearchTerm == nil {
		return f.Match(s)
	}

	term := *f.SearchTerm
	nameless := f
	nameless.SearchTerm = nil
	if !nameless.Match(s) {
		return false
	}

	return containsFold(s.Name, term) ||
		containsFold(s.Description, term) ||
		containsFold(s.CategoryName, term) ||
		containsFold(s.MaterialName, term)
}

// Apply filters a collection in place-order without paginating. It is pure:
// the input slice is never mutated and equal inputs yield equal outputs.
func Apply(items []models.Sculpture, f Filter) []models.Sculpture {
	out := make([]models.Sculpture, 0, len(items))
	for _, s := range items {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// ApplyText is Apply with the widened client-side search predicate.
func ApplyText(items []models.Sculpture, f Filter) []models.Sculpture {
	out := make([]models.Sculpture, 0, len(items))
	for _, s := range items {
		if f.MatchText(s) {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the number of items matching the filter, ignoring
// pagination, so Count(items, f) == len(Apply(items, f)) always holds.
func Count(items []models.Sculpture, f Filter) int {
	n := 0
	for _, s := range items {
		if f.Match(s) {
			n++
		}
	}
	return n
}

// Paginate applies the limit/offset window to an already-filtered list.
func Paginate(items []models.Sculpture, limit, offset int) []models.Sculpture {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []models.Sculpture{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func parseInt64(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	// the original API sends is_featured as 0/1
	switch raw {
	case "1", "true", "True":
		v := true
		return &v
	case "0", "false", "False":
		v := false
		return &v
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SortKey selects a client-side ordering. The server listing endpoint does
// not sort; ordering is applied after filtering with a stable sort so ties
// keep their original array order.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
)

// SortBy returns a sorted copy of items; an unknown key returns the copy
// unchanged.
func SortBy(items []models.Sculpture, key SortKey) []models.Sculpture {
	out := make([]models.Sculpture, len(items))
	copy(out, items)

	var less func(i, j int) bool
	switch key {
	case SortNewest:
		less = func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) }
	case SortOldest:
		less = func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) }
	case SortPriceAsc:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortPriceDesc:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	case SortNameAsc:
		less = func(i, j int) bool { return out[i].Name < out[j].Name }
	default:
		return out
	}

	sort.SliceStable(out, less)
	return out
}
