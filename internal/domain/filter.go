package domain

// SortOption enumerates the supported catalog sort orders.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortPopular   SortOption = "popular"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
)

// ParseSortOption maps a raw sort value to a SortOption. Unrecognized or
// empty values fall back to SortNewest.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc, SortPopular, SortNameAsc, SortNameDesc, SortNewest:
		return SortOption(raw)
	default:
		return SortNewest
	}
}

// ProductFilters narrows a catalog page. Every field is optional; active
// filters combine with logical AND.
type ProductFilters struct {
	Sort      SortOption
	BrandID   string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	InStock   bool
}

// Matches reports whether the product passes every active filter. Sort is
// not a predicate and is ignored here.
func (f ProductFilters) Matches(p *Product) bool {
	if f.BrandID != "" && p.BrandID != f.BrandID {
		return false
	}
	if f.Condition != "" && p.Condition != f.Condition {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock && !p.InStock() {
		return false
	}
	return true
}

// ProductPage is a bounded, sorted slice of the filtered catalog.
// TotalCount counts the filtered set before pagination.
type ProductPage struct {
	Items      []*Product
	TotalCount int
}
