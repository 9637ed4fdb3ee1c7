// Package serialize maps stored catalog entities into their transport form:
// flat records with ISO-8601 string timestamps (null when the record carried
// none), independent of the document store's native temporal type.
package serialize

import (
	"sort"

	"storefront/internal/domain"
	"storefront/internal/timeutil"
)

// Category is the wire form of a category. ParentID is omitted entirely at
// the root; absent and null are treated as the same "no parent" signal.
type Category struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description,omitempty"`
	DescriptionLong string     `json:"descriptionLongue,omitempty"`
	ParentID        *string    `json:"parentId,omitempty"`
	Level           int        `json:"level"`
	Path            []string   `json:"path,omitempty"`
	Order           int        `json:"order"`
	IsActive        bool       `json:"isActive"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	Keywords        []string   `json:"keywords,omitempty"`
	CreatedAt       *string    `json:"createdAt"`
	UpdatedAt       *string    `json:"updatedAt"`
	Children        []Category `json:"children,omitempty"`
}

// Brand is the wire form of a brand.
type Brand struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	LogoURL         string   `json:"logoUrl,omitempty"`
	WebsiteURL      string   `json:"websiteUrl,omitempty"`
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	IsActive        bool     `json:"isActive"`
	CreatedAt       *string  `json:"createdAt"`
	UpdatedAt       *string  `json:"updatedAt"`
}

// SpecEntry mirrors domain.SpecEntry on the wire, order preserved.
type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Badge is the wire form of a merchandising badge.
type Badge struct {
	Label    string `json:"label"`
	Position string `json:"position,omitempty"`
	Priority int    `json:"priority"`
	Color    string `json:"color,omitempty"`
}

// ProductSection is one rich description block, emitted in display order.
type ProductSection struct {
	Order       int    `json:"order"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image,omitempty"`
}

// Product is the wire form of a product.
type Product struct {
	ID                  string           `json:"id"`
	Slug                string           `json:"slug"`
	Title               string           `json:"title"`
	ShortDescription    string           `json:"shortDescription,omitempty"`
	Description         string           `json:"description,omitempty"`
	BrandID             string           `json:"brandId,omitempty"`
	BrandName           string           `json:"brandName,omitempty"`
	CategoryIDs         []string         `json:"categoryIds,omitempty"`
	PrimaryCategoryID   string           `json:"primaryCategoryId,omitempty"`
	PrimaryCategoryName string           `json:"primaryCategoryName,omitempty"`
	CategoryPath        []string         `json:"categoryPath,omitempty"`
	Price               float64          `json:"price"`
	OldPrice            *float64         `json:"oldPrice,omitempty"`
	CostPrice           *float64         `json:"costPrice,omitempty"`
	Images              []string         `json:"images,omitempty"`
	ImageAlts           []string         `json:"imageAlts,omitempty"`
	Stock               int              `json:"stock"`
	InStock             bool             `json:"inStock"`
	SKU                 string           `json:"sku,omitempty"`
	Barcode             string           `json:"barcode,omitempty"`
	Condition           string           `json:"condition,omitempty"`
	Specifications      []SpecEntry      `json:"specifications,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	Badges              []Badge          `json:"badges,omitempty"`
	ProductDescriptions []ProductSection `json:"productDescriptions,omitempty"`
	MetaTitle           string           `json:"metaTitle,omitempty"`
	MetaDescription     string           `json:"metaDescription,omitempty"`
	Keywords            []string         `json:"keywords,omitempty"`
	SalesCount          int              `json:"salesCount"`
	IsActive            bool             `json:"isActive"`
	IsNewArrival        bool             `json:"isNewArrival"`
	CreatedAt           *string          `json:"createdAt"`
	UpdatedAt           *string          `json:"updatedAt"`
}

// CategoryFromDomain serializes a single category without children.
func CategoryFromDomain(c *domain.Category) Category {
	out := Category{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		DescriptionLong: c.DescriptionLong,
		Level:           c.Level,
		Path:            c.Path,
		Order:           c.Order,
		IsActive:        c.IsActive,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		Keywords:        c.Keywords,
		CreatedAt:       timeutil.FormatISO(c.CreatedAt),
		UpdatedAt:       timeutil.FormatISO(c.UpdatedAt),
	}
	if c.ParentID != nil && *c.ParentID != "" {
		out.ParentID = c.ParentID
	}
	return out
}

// CategoryTreeFromDomain serializes a category node recursively. Child order
// mirrors input order; no re-sorting happens here.
func CategoryTreeFromDomain(n *domain.CategoryNode) Category {
	out := CategoryFromDomain(n.Category)
	if len(n.Children) > 0 {
		out.Children = make([]Category, 0, len(n.Children))
		for _, child := range n.Children {
			out.Children = append(out.Children, CategoryTreeFromDomain(child))
		}
	}
	return out
}

// CategoriesFromDomain serializes a flat category list in input order.
func CategoriesFromDomain(cs []*domain.Category) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryFromDomain(c))
	}
	return out
}

// BrandFromDomain serializes a brand.
func BrandFromDomain(b *domain.Brand) Brand {
	return Brand{
		ID:              b.ID,
		Name:            b.Name,
		Slug:            b.Slug,
		Description:     b.Description,
		LogoURL:         b.LogoURL,
		WebsiteURL:      b.WebsiteURL,
		MetaTitle:       b.MetaTitle,
		MetaDescription: b.MetaDescription,
		Keywords:        b.Keywords,
		IsActive:        b.IsActive,
		CreatedAt:       timeutil.FormatISO(b.CreatedAt),
		UpdatedAt:       timeutil.FormatISO(b.UpdatedAt),
	}
}

// BrandsFromDomain serializes a flat brand list in input order.
func BrandsFromDomain(bs []*domain.Brand) []Brand {
	out := make([]Brand, 0, len(bs))
	for _, b := range bs {
		out = append(out, BrandFromDomain(b))
	}
	return out
}

// ProductFromDomain serializes a product. Rich description sections are
// emitted by ascending Order, which is the display contract; everything else
// is copied verbatim.
func ProductFromDomain(p *domain.Product) Product {
	out := Product{
		ID:                  p.ID,
		Slug:                p.Slug,
		Title:               p.Title,
		ShortDescription:    p.ShortDescription,
		Description:         p.Description,
		BrandID:             p.BrandID,
		BrandName:           p.BrandName,
		CategoryIDs:         p.CategoryIDs,
		PrimaryCategoryID:   p.PrimaryCategoryID,
		PrimaryCategoryName: p.PrimaryCategoryName,
		CategoryPath:        p.CategoryPath,
		Price:               p.Price,
		OldPrice:            p.OldPrice,
		CostPrice:           p.CostPrice,
		Images:              p.Images,
		ImageAlts:           p.ImageAlts,
		Stock:               p.Stock,
		InStock:             p.InStock(),
		SKU:                 p.SKU,
		Barcode:             p.Barcode,
		Condition:           p.Condition,
		Tags:                p.Tags,
		MetaTitle:           p.MetaTitle,
		MetaDescription:     p.MetaDescription,
		Keywords:            p.Keywords,
		SalesCount:          p.SalesCount,
		IsActive:            p.IsActive,
		IsNewArrival:        p.IsNewArrival,
		CreatedAt:           timeutil.FormatISO(p.CreatedAt),
		UpdatedAt:           timeutil.FormatISO(p.UpdatedAt),
	}

	if len(p.Specifications) > 0 {
		out.Specifications = make([]SpecEntry, 0, len(p.Specifications))
		for _, s := range p.Specifications {
			out.Specifications = append(out.Specifications, SpecEntry(s))
		}
	}

	if len(p.Badges) > 0 {
		out.Badges = make([]Badge, 0, len(p.Badges))
		for _, b := range p.Badges {
			out.Badges = append(out.Badges, Badge(b))
		}
	}

	if len(p.Sections) > 0 {
		out.ProductDescriptions = make([]ProductSection, 0, len(p.Sections))
		for _, s := range p.Sections {
			out.ProductDescriptions = append(out.ProductDescriptions, ProductSection{
				Order:       s.Order,
				Title:       s.Title,
				Description: s.Description,
				ImageURL:    s.ImageURL,
			})
		}
		sort.SliceStable(out.ProductDescriptions, func(i, j int) bool {
			return out.ProductDescriptions[i].Order < out.ProductDescriptions[j].Order
		})
	}

	return out
}

// ProductsFromDomain serializes a product list in input order.
func ProductsFromDomain(ps []*domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProductFromDomain(p))
	}
	return out
}
