package transport

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/serialize"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductListQuery holds the parsed query string of the product listing endpoint
type ProductListQuery struct {
	Page                 int      `validate:"omitempty"`
	PageSize             int      `validate:"omitempty"`
	Sort                 string   `validate:"omitempty"`
	Brand                string   `validate:"omitempty"`
	Condition            string   `validate:"omitempty,oneof=new used refurbished"`
	MinPrice             *float64 `validate:"omitempty,gte=0"`
	MaxPrice             *float64 `validate:"omitempty,gte=0"`
	InStock              bool
	IncludeSubcategories bool
}

// CategoryDetailResponse is the payload of the category detail endpoint
type CategoryDetailResponse struct {
	Category    serialize.Category   `json:"category"`
	Breadcrumbs []service.Breadcrumb `json:"breadcrumbs"`
}

// ProductListResponse is a single page of the filtered catalog
type ProductListResponse struct {
	Items      []serialize.Product `json:"items"`
	TotalCount int                 `json:"totalCount"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
}

// ProductDetailResponse is the payload of the product detail endpoint
type ProductDetailResponse struct {
	Product     serialize.Product    `json:"product"`
	Breadcrumbs []service.Breadcrumb `json:"breadcrumbs"`
}

// CatalogHandler handles HTTP requests for the catalog read API
type CatalogHandler struct {
	catalog         service.CatalogService
	logger          *zap.Logger
	defaultPageSize int
	maxPageSize     int
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService, logger *zap.Logger, defaultPageSize, maxPageSize int) *CatalogHandler {
	if defaultPageSize < 1 {
		defaultPageSize = service.DefaultPageSize
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}
	return &CatalogHandler{
		catalog:         catalog,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.GetCategoryTree)
		r.Get("/{slug}", h.GetCategory)
		r.Get("/{slug}/products", h.GetCategoryProducts)
	})
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/{slug}", h.GetProduct)
	})
	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/", h.GetBrands)
		r.Get("/{slug}", h.GetBrand)
	})
}

// GetCategoryTree returns the active category hierarchy
func (h *CatalogHandler) GetCategoryTree(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.catalog.CategoryTree(r.Context())
	if err != nil {
		h.logger.Error("Failed to load category tree", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "catalog temporarily unavailable")
		return
	}

	out := make([]serialize.Category, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, serialize.CategoryTreeFromDomain(n))
	}

	middleware.RespondWithJSON(w, http.StatusOK, out)
}

// GetCategory returns one category with its breadcrumb trail
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing category slug")
		return
	}

	category, crumbs, err := h.catalog.CategoryDetail(r.Context(), slug)
	if err != nil {
		h.respondCatalogError(w, err, "category", slug)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CategoryDetailResponse{
		Category:    serialize.CategoryFromDomain(category),
		Breadcrumbs: crumbs,
	})
}

// GetCategoryProducts returns a filtered, sorted, paginated product page for
// a category, optionally spanning its whole subtree.
func (h *CatalogHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing category slug")
		return
	}

	query, err := h.parseListQuery(r)
	if err != nil {
		h.logger.Debug("Product listing query rejected", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// slug-only lookup: the listing response carries no breadcrumbs
	category, err := h.catalog.CategoryBySlug(r.Context(), slug)
	if err != nil {
		h.respondCatalogError(w, err, "category", slug)
		return
	}

	categoryIDs := []string{category.ID}
	if query.IncludeSubcategories {
		categoryIDs = h.catalog.ResolveDescendantIDs(r.Context(), category.ID)
	}

	filters := domain.ProductFilters{
		Sort:      domain.ParseSortOption(query.Sort),
		BrandID:   query.Brand,
		Condition: query.Condition,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		InStock:   query.InStock,
	}

	page, err := h.catalog.ProductsPage(r.Context(), categoryIDs, query.Page, query.PageSize, filters)
	if err != nil {
		h.logger.Error("Failed to load product page",
			zap.String("category_slug", slug),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusBadGateway, "catalog temporarily unavailable")
		return
	}

	totalPages := 0
	if page.TotalCount > 0 {
		totalPages = (page.TotalCount + query.PageSize - 1) / query.PageSize
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Items:      serialize.ProductsFromDomain(page.Items),
		TotalCount: page.TotalCount,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	})
}

// GetProduct returns one product with breadcrumbs from its primary category
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing product slug")
		return
	}

	product, crumbs, err := h.catalog.ProductBySlug(r.Context(), slug)
	if err != nil {
		h.respondCatalogError(w, err, "product", slug)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductDetailResponse{
		Product:     serialize.ProductFromDomain(product),
		Breadcrumbs: crumbs,
	})
}

// GetBrands lists the active brands
func (h *CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.Brands(r.Context())
	if err != nil {
		h.logger.Error("Failed to load brands", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "catalog temporarily unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, serialize.BrandsFromDomain(brands))
}

// GetBrand returns one brand by slug
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing brand slug")
		return
	}

	brand, err := h.catalog.BrandBySlug(r.Context(), slug)
	if err != nil {
		h.respondCatalogError(w, err, "brand", slug)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, serialize.BrandFromDomain(brand))
}

// parseListQuery binds and validates the listing query string. Page is
// clamped rather than rejected, and an unknown sort value later falls back
// to the default ordering, so only malformed numbers and out-of-range
// prices produce an error.
func (h *CatalogHandler) parseListQuery(r *http.Request) (*ProductListQuery, error) {
	q := r.URL.Query()

	query := &ProductListQuery{
		Page:                 1,
		PageSize:             h.defaultPageSize,
		Sort:                 q.Get("sort"),
		Brand:                q.Get("brand"),
		Condition:            q.Get("condition"),
		IncludeSubcategories: true,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("page must be an integer")
		}
		if page > 1 {
			query.Page = page
		}
	}

	if raw := q.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("pageSize must be an integer")
		}
		if size >= 1 {
			query.PageSize = size
		}
		if query.PageSize > h.maxPageSize {
			query.PageSize = h.maxPageSize
		}
	}

	if raw := q.Get("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("minPrice must be a number")
		}
		query.MinPrice = &min
	}

	if raw := q.Get("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("maxPrice must be a number")
		}
		query.MaxPrice = &max
	}

	if raw := q.Get("inStock"); raw != "" {
		query.InStock = raw == "true" || raw == "1"
	}

	if raw := q.Get("includeSubcategories"); raw != "" {
		query.IncludeSubcategories = raw != "false" && raw != "0"
	}

	if err := middleware.ValidateRequest(query); err != nil {
		return nil, err
	}

	return query, nil
}

func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, err error, kind, slug string) {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrBrandNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, kind+" not found")
	default:
		h.logger.Error("Catalog lookup failed",
			zap.String("kind", kind),
			zap.String("slug", slug),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusBadGateway, "catalog temporarily unavailable")
	}
}
