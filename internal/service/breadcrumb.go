package service

import "storefront/internal/domain"

const (
	// HomeLabel is the label of the synthetic root breadcrumb.
	HomeLabel = "Home"

	// maxTrailTail caps how many non-root entries survive bounding.
	maxTrailTail = 4
)

// Breadcrumb is one display-ready navigation trail entry.
type Breadcrumb struct {
	Href      string `json:"href"`
	Label     string `json:"label"`
	IsCurrent bool   `json:"isCurrent"`
}

// BuildBreadcrumbs turns an ancestor chain (root→leaf) into a bounded
// navigation trail. The Home entry is prepended before bounding.
func BuildBreadcrumbs(chain []*domain.Category) []Breadcrumb {
	items := make([]Breadcrumb, 0, len(chain)+1)
	items = append(items, Breadcrumb{Href: "/", Label: HomeLabel})
	for _, c := range chain {
		items = append(items, Breadcrumb{
			Href:  "/categories/" + c.Slug,
			Label: c.Name,
		})
	}
	return BoundTrail(items)
}

// BoundTrail keeps the Home entry plus at most the last four remaining
// entries, and marks exactly the final entry as current. Two quirks are
// load-bearing for the storefront pages and must stay:
//   - Home survives bounding only when the incoming trail actually carries
//     a Home entry; it is never synthesized here. Pages that assemble
//     trails without Home render without it.
//   - When the trail holds nothing but Home, the result is empty rather
//     than a one-entry trail.
func BoundTrail(items []Breadcrumb) []Breadcrumb {
	var home *Breadcrumb
	rest := make([]Breadcrumb, 0, len(items))
	for i := range items {
		if items[i].Label == HomeLabel && home == nil {
			home = &items[i]
			continue
		}
		rest = append(rest, items[i])
	}

	if len(rest) == 0 {
		return []Breadcrumb{}
	}
	if len(rest) > maxTrailTail {
		rest = rest[len(rest)-maxTrailTail:]
	}

	out := make([]Breadcrumb, 0, len(rest)+1)
	if home != nil {
		out = append(out, Breadcrumb{Href: home.Href, Label: home.Label})
	}
	out = append(out, rest...)

	for i := range out {
		out[i].IsCurrent = i == len(out)-1
	}
	return out
}
