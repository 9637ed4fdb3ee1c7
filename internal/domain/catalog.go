package domain

import "time"

// Category is a node in the storefront category tree. Path holds the
// ancestor ids root→self, so len(Path) == Level+1 and the last element
// is the category's own id.
type Category struct {
	ID              string
	Name            string
	Slug            string
	Description     string
	DescriptionLong string
	ParentID        *string
	Level           int
	Path            []string
	Order           int
	IsActive        bool
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Root reports whether the category sits at the top of the tree.
func (c *Category) Root() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// CategoryNode is a category with its resolved active children, used for
// tree-shaped responses. Children keep the order they were assembled in.
type CategoryNode struct {
	Category *Category
	Children []*CategoryNode
}

// Brand represents a product brand
type Brand struct {
	ID              string
	Name            string
	Slug            string
	Description     string
	LogoURL         string
	WebsiteURL      string
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SpecEntry is a single product specification line. Specifications are kept
// as an ordered slice because display order follows insertion order.
type SpecEntry struct {
	Label string
	Value string
}

// Badge is a merchandising flag rendered on product cards.
type Badge struct {
	Label    string
	Position string
	Priority int
	Color    string
}

// ProductSection is one rich description block. Display order is by
// ascending Order, not slice position.
type ProductSection struct {
	Order       int
	Title       string
	Description string
	ImageURL    string
}

// Product represents a catalog product. CreatedAt/UpdatedAt may be the
// epoch-zero sentinel when the stored record carries no timestamp.
type Product struct {
	ID                  string
	Slug                string
	Title               string
	ShortDescription    string
	Description         string
	BrandID             string
	BrandName           string
	CategoryIDs         []string
	PrimaryCategoryID   string
	PrimaryCategoryName string
	CategoryPath        []string
	Price               float64
	OldPrice            *float64
	CostPrice           *float64
	Images              []string
	ImageAlts           []string
	Stock               int
	SKU                 string
	Barcode             string
	Condition           string
	Specifications      []SpecEntry
	Tags                []string
	Badges              []Badge
	Sections            []ProductSection
	MetaTitle           string
	MetaDescription     string
	Keywords            []string
	SalesCount          int
	IsActive            bool
	IsNewArrival        bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// InStock reports whether the product can be displayed as available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
