package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when the caller supplies no usable page size.
	DefaultPageSize = 24
)

// CatalogService is the read side of the storefront catalog: category
// hierarchy resolution, breadcrumbs, and filtered product pages.
type CatalogService interface {
	CategoryTree(ctx context.Context) ([]*domain.CategoryNode, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CategoryDetail(ctx context.Context, slug string) (*domain.Category, []Breadcrumb, error)
	ResolveAncestors(ctx context.Context, leaf *domain.Category) []*domain.Category
	ResolveDescendantIDs(ctx context.Context, categoryID string) []string
	ProductsPage(ctx context.Context, categoryIDs []string, page, pageSize int, filters domain.ProductFilters) (*domain.ProductPage, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, []Breadcrumb, error)
	Brands(ctx context.Context) ([]*domain.Brand, error)
	BrandBySlug(ctx context.Context, slug string) (*domain.Brand, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	products   repository.ProductRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		categories: categories,
		brands:     brands,
		products:   products,
		logger:     logger,
	}
}

// CategoryTree assembles the active categories into their tree, roots and
// children ordered by the display order field.
func (s *catalogService) CategoryTree(ctx context.Context) ([]*domain.CategoryNode, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category tree: %w", err)
	}

	nodes := make(map[string]*domain.CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &domain.CategoryNode{Category: c}
	}

	roots := []*domain.CategoryNode{}
	for _, c := range categories {
		node := nodes[c.ID]
		if c.Root() {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			// broken parent link: surface the subtree at the root rather
			// than dropping it
			s.logger.Warn("category has unresolvable parent",
				zap.String("category_id", c.ID),
				zap.String("parent_id", *c.ParentID),
			)
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortNodes(roots)
	for _, n := range nodes {
		sortNodes(n.Children)
	}

	return roots, nil
}

// CategoryBySlug is the bare lookup. Listing requests use it so that a
// product page does not pay for an ancestor walk it never renders.
func (s *catalogService) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.FindBySlug(ctx, slug)
}

// CategoryDetail resolves a category plus the breadcrumb trail for its page.
func (s *catalogService) CategoryDetail(ctx context.Context, slug string) (*domain.Category, []Breadcrumb, error) {
	category, err := s.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	chain := s.ResolveAncestors(ctx, category)
	return category, BuildBreadcrumbs(chain), nil
}

// ProductsPage returns one bounded, sorted page of the filtered catalog for
// the given category set. The page number is clamped to 1 and a page beyond
// the result set yields an empty item list with the correct total. Read
// failures propagate: this is the one place where a load error becomes
// visible to the caller.
func (s *catalogService) ProductsPage(ctx context.Context, categoryIDs []string, page, pageSize int, filters domain.ProductFilters) (*domain.ProductPage, error) {
	if len(categoryIDs) == 0 {
		return &domain.ProductPage{Items: []*domain.Product{}, TotalCount: 0}, nil
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// correlates with the transport access log entries for the same request
	reqID := chimiddleware.GetReqID(ctx)
	s.logger.Debug("catalog page requested",
		zap.String("req_id", reqID),
		zap.Int("categories", len(categoryIDs)),
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.String("sort", string(filters.Sort)),
	)

	products, err := s.products.ListActiveByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog page: %w", err)
	}

	filtered := products[:0:0]
	for _, p := range products {
		if filters.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, filters.Sort)

	total := len(filtered)
	offset := (page - 1) * pageSize

	items := []*domain.Product{}
	if offset < total {
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	} else if total > 0 {
		s.logger.Debug("requested page beyond available results",
			zap.String("req_id", reqID),
			zap.Int("page", page),
			zap.Int("total", total),
		)
	}

	return &domain.ProductPage{Items: items, TotalCount: total}, nil
}

// ProductBySlug resolves a product detail page. Breadcrumbs derive from the
// primary category's ancestor chain; a missing primary category degrades to
// an empty trail rather than failing the page.
func (s *catalogService) ProductBySlug(ctx context.Context, slug string) (*domain.Product, []Breadcrumb, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	var chain []*domain.Category
	if product.PrimaryCategoryID != "" {
		primary, err := s.categories.FindByID(ctx, product.PrimaryCategoryID)
		if err != nil {
			s.logger.Warn("primary category unresolvable for breadcrumbs",
				zap.String("product_id", product.ID),
				zap.String("primary_category_id", product.PrimaryCategoryID),
				zap.Error(err),
			)
		} else {
			chain = s.ResolveAncestors(ctx, primary)
		}
	}

	return product, BuildBreadcrumbs(chain), nil
}

// Brands lists the active brands.
func (s *catalogService) Brands(ctx context.Context) ([]*domain.Brand, error) {
	brands, err := s.brands.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// BrandBySlug retrieves one active brand.
func (s *catalogService) BrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	return s.brands.FindBySlug(ctx, slug)
}

func sortNodes(nodes []*domain.CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Category, nodes[j].Category
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
}

func sortProducts(products []*domain.Product, by domain.SortOption) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch by {
		case domain.SortPriceAsc:
			return a.Price < b.Price
		case domain.SortPriceDesc:
			return a.Price > b.Price
		case domain.SortPopular:
			return a.SalesCount > b.SalesCount
		case domain.SortNameAsc:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case domain.SortNameDesc:
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		default: // newest
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
