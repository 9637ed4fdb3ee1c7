package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// membershipChunkSize is the store's limit on array-contains-any operands.
const membershipChunkSize = 10

// ProductRepository defines the read interface for product documents.
type ProductRepository interface {
	// ListActiveByCategoryIDs returns every active product belonging to at
	// least one of the given categories. Order is unspecified; the caller
	// sorts and paginates.
	ListActiveByCategoryIDs(ctx context.Context, categoryIDs []string) ([]*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a Firestore-backed ProductRepository.
func NewProductRepository(client *firestore.Client) ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) col() *firestore.CollectionRef {
	return r.client.Collection("products")
}

// ListActiveByCategoryIDs issues one membership query per chunk of ten
// category ids and merges the results. A product in several requested
// categories appears once.
func (r *productRepository) ListActiveByCategoryIDs(ctx context.Context, categoryIDs []string) ([]*domain.Product, error) {
	if len(categoryIDs) == 0 {
		return []*domain.Product{}, nil
	}

	seen := map[string]bool{}
	products := []*domain.Product{}

	for start := 0; start < len(categoryIDs); start += membershipChunkSize {
		end := start + membershipChunkSize
		if end > len(categoryIDs) {
			end = len(categoryIDs)
		}
		chunk := categoryIDs[start:end]

		it := r.col().
			Where("isActive", "==", true).
			Where("categoryIds", "array-contains-any", chunk).
			Documents(ctx)

		for {
			doc, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				it.Stop()
				return nil, fmt.Errorf("failed to list products: %w", err)
			}
			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true
			products = append(products, docToProduct(doc.Ref.ID, doc.Data()))
		}
		it.Stop()
	}

	return products, nil
}

// FindBySlug retrieves an active product by slug.
func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	it := r.col().
		Where("slug", "==", slug).
		Where("isActive", "==", true).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by slug: %w", err)
	}

	return docToProduct(doc.Ref.ID, doc.Data()), nil
}

func docToProduct(id string, data map[string]interface{}) *domain.Product {
	p := &domain.Product{
		ID:                  id,
		Slug:                docString(data, "slug"),
		Title:               docString(data, "title"),
		ShortDescription:    docString(data, "shortDescription"),
		Description:         docString(data, "description"),
		BrandID:             docString(data, "brandId"),
		BrandName:           docString(data, "brandName"),
		CategoryIDs:         docStringSlice(data, "categoryIds"),
		PrimaryCategoryID:   docString(data, "primaryCategoryId"),
		PrimaryCategoryName: docString(data, "primaryCategoryName"),
		CategoryPath:        docStringSlice(data, "categoryPath"),
		Price:               docFloat(data, "price"),
		OldPrice:            docFloatPtr(data, "oldPrice"),
		CostPrice:           docFloatPtr(data, "costPrice"),
		Images:              docStringSlice(data, "images"),
		ImageAlts:           docStringSlice(data, "imageAlts"),
		Stock:               docInt(data, "stock"),
		SKU:                 docString(data, "sku"),
		Barcode:             docString(data, "barcode"),
		Condition:           docString(data, "condition"),
		Specifications:      docSpecEntries(data, "specifications"),
		Tags:                docStringSlice(data, "tags"),
		MetaTitle:           docString(data, "metaTitle"),
		MetaDescription:     docString(data, "metaDescription"),
		Keywords:            docStringSlice(data, "keywords"),
		SalesCount:          docInt(data, "salesCount"),
		IsActive:            docBool(data, "isActive", false),
		IsNewArrival:        docBool(data, "isNewArrival", false),
		CreatedAt:           docTime(data, "createdAt"),
		UpdatedAt:           docTime(data, "updatedAt"),
	}

	for _, b := range docMapSlice(data, "badges") {
		p.Badges = append(p.Badges, domain.Badge{
			Label:    docString(b, "label"),
			Position: docString(b, "position"),
			Priority: docInt(b, "priority"),
			Color:    docString(b, "color"),
		})
	}

	for _, s := range docMapSlice(data, "productDescriptions") {
		p.Sections = append(p.Sections, domain.ProductSection{
			Order:       docInt(s, "order"),
			Title:       docString(s, "title"),
			Description: docString(s, "description"),
			ImageURL:    docString(s, "image"),
		})
	}

	return p
}
