package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the read interface for category documents.
// Inactive categories never leave this layer.
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

type categoryRepository struct {
	client *firestore.Client
}

// NewCategoryRepository creates a Firestore-backed CategoryRepository.
func NewCategoryRepository(client *firestore.Client) CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) col() *firestore.CollectionRef {
	return r.client.Collection("categories")
}

// ListActive retrieves every active category.
func (r *categoryRepository) ListActive(ctx context.Context) ([]*domain.Category, error) {
	it := r.col().Where("isActive", "==", true).Documents(ctx)
	defer it.Stop()

	categories := []*domain.Category{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		categories = append(categories, docToCategory(doc.Ref.ID, doc.Data()))
	}

	return categories, nil
}

// FindBySlug retrieves an active category by slug.
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	it := r.col().
		Where("slug", "==", slug).
		Where("isActive", "==", true).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}

	return docToCategory(doc.Ref.ID, doc.Data()), nil
}

// FindByID retrieves an active category by document id.
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	category := docToCategory(doc.Ref.ID, doc.Data())
	if !category.IsActive {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func docToCategory(id string, data map[string]interface{}) *domain.Category {
	return &domain.Category{
		ID:              id,
		Name:            docString(data, "name"),
		Slug:            docString(data, "slug"),
		Description:     docString(data, "description"),
		DescriptionLong: docString(data, "descriptionLongue"),
		ParentID:        docStringPtr(data, "parentId"),
		Level:           docInt(data, "level"),
		Path:            docStringSlice(data, "path"),
		Order:           docInt(data, "order"),
		IsActive:        docBool(data, "isActive", false),
		MetaTitle:       docString(data, "metaTitle"),
		MetaDescription: docString(data, "metaDescription"),
		Keywords:        docStringSlice(data, "keywords"),
		CreatedAt:       docTime(data, "createdAt"),
		UpdatedAt:       docTime(data, "updatedAt"),
	}
}
