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
	ErrBrandNotFound = errors.New("brand not found")
)

// BrandRepository defines the read interface for brand documents.
type BrandRepository interface {
	ListActive(ctx context.Context) ([]*domain.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Brand, error)
}

type brandRepository struct {
	client *firestore.Client
}

// NewBrandRepository creates a Firestore-backed BrandRepository.
func NewBrandRepository(client *firestore.Client) BrandRepository {
	return &brandRepository{client: client}
}

func (r *brandRepository) col() *firestore.CollectionRef {
	return r.client.Collection("brands")
}

// ListActive retrieves every active brand, ordered by name.
func (r *brandRepository) ListActive(ctx context.Context) ([]*domain.Brand, error) {
	it := r.col().
		Where("isActive", "==", true).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer it.Stop()

	brands := []*domain.Brand{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list brands: %w", err)
		}
		brands = append(brands, docToBrand(doc.Ref.ID, doc.Data()))
	}

	return brands, nil
}

// FindBySlug retrieves an active brand by slug.
func (r *brandRepository) FindBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	it := r.col().
		Where("slug", "==", slug).
		Where("isActive", "==", true).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrBrandNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find brand by slug: %w", err)
	}

	return docToBrand(doc.Ref.ID, doc.Data()), nil
}

func docToBrand(id string, data map[string]interface{}) *domain.Brand {
	return &domain.Brand{
		ID:              id,
		Name:            docString(data, "name"),
		Slug:            docString(data, "slug"),
		Description:     docString(data, "description"),
		LogoURL:         docString(data, "logoUrl"),
		WebsiteURL:      docString(data, "websiteUrl"),
		MetaTitle:       docString(data, "metaTitle"),
		MetaDescription: docString(data, "metaDescription"),
		Keywords:        docStringSlice(data, "keywords"),
		IsActive:        docBool(data, "isActive", false),
		CreatedAt:       docTime(data, "createdAt"),
		UpdatedAt:       docTime(data, "updatedAt"),
	}
}
