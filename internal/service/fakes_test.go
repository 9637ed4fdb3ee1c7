package service

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// In-memory repository fakes. They mirror the real repositories' contract:
// inactive records never leave the data layer.

type fakeCategoryRepo struct {
	categories []*domain.Category
	err        error
	listCalls  int
}

func (f *fakeCategoryRepo) ListActive(ctx context.Context) ([]*domain.Category, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Category{}
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id && c.IsActive {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

type fakeBrandRepo struct {
	brands []*domain.Brand
	err    error
}

func (f *fakeBrandRepo) ListActive(ctx context.Context) ([]*domain.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Brand{}
	for _, b := range f.brands {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBrandRepo) FindBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.brands {
		if b.Slug == slug && b.IsActive {
			return b, nil
		}
	}
	return nil, repository.ErrBrandNotFound
}

type fakeProductRepo struct {
	products []*domain.Product
	err      error
}

func (f *fakeProductRepo) ListActiveByCategoryIDs(ctx context.Context, categoryIDs []string) ([]*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	requested := map[string]bool{}
	for _, id := range categoryIDs {
		requested[id] = true
	}
	out := []*domain.Product{}
	for _, p := range f.products {
		if !p.IsActive {
			continue
		}
		for _, cid := range p.CategoryIDs {
			if requested[cid] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.Slug == slug && p.IsActive {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}
