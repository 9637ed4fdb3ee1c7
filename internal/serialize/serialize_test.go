package serialize

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/timeutil"
)

func strPtr(s string) *string { return &s }

func TestCategoryFromDomainTimestamps(t *testing.T) {
	created := time.Unix(1700000000, 0).UTC()

	c := &domain.Category{
		ID:        "cat1",
		Name:      "Laptops",
		Slug:      "laptops",
		Level:     1,
		Path:      []string{"root", "cat1"},
		IsActive:  true,
		ParentID:  strPtr("root"),
		CreatedAt: created,
		UpdatedAt: timeutil.Epoch,
	}

	got := CategoryFromDomain(c)

	if got.CreatedAt == nil {
		t.Fatal("CreatedAt should render as a string")
	}
	parsed, err := timeutil.ParseISO(*got.CreatedAt)
	if err != nil || !parsed.Equal(created) {
		t.Errorf("CreatedAt round trip: got %v (%v), want %v", parsed, err, created)
	}
	if got.UpdatedAt != nil {
		t.Errorf("sentinel UpdatedAt should serialize as null, got %q", *got.UpdatedAt)
	}
	if got.ParentID == nil || *got.ParentID != "root" {
		t.Errorf("ParentID = %v, want root", got.ParentID)
	}
}

func TestCategoryParentIDOmittedAtRoot(t *testing.T) {
	root := &domain.Category{ID: "root", Name: "Home", Slug: "home", IsActive: true}

	raw, err := json.Marshal(CategoryFromDomain(root))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "parentId") {
		t.Errorf("root category should not carry parentId on the wire: %s", raw)
	}
}

func TestCategoryTreePreservesChildOrder(t *testing.T) {
	mk := func(id string) *domain.CategoryNode {
		return &domain.CategoryNode{Category: &domain.Category{ID: id, Name: id, Slug: id, IsActive: true}}
	}

	tree := mk("root")
	tree.Children = []*domain.CategoryNode{mk("b"), mk("a"), mk("c")}
	tree.Children[0].Children = []*domain.CategoryNode{mk("b2"), mk("b1")}

	got := CategoryTreeFromDomain(tree)

	wantTop := []string{"b", "a", "c"}
	if len(got.Children) != len(wantTop) {
		t.Fatalf("children count = %d, want %d", len(got.Children), len(wantTop))
	}
	for i, id := range wantTop {
		if got.Children[i].ID != id {
			t.Errorf("child[%d] = %s, want %s", i, got.Children[i].ID, id)
		}
	}
	if got.Children[0].Children[0].ID != "b2" || got.Children[0].Children[1].ID != "b1" {
		t.Error("nested child order was re-sorted")
	}
}

func TestProductFromDomain(t *testing.T) {
	old := 129.99
	created := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	p := &domain.Product{
		ID:                "p1",
		Slug:              "gaming-laptop",
		Title:             "Gaming Laptop",
		BrandID:           "b1",
		BrandName:         "Acme",
		CategoryIDs:       []string{"cat1", "cat2"},
		PrimaryCategoryID: "cat1",
		Price:             999.0,
		OldPrice:          &old,
		Stock:             3,
		Specifications: []domain.SpecEntry{
			{Label: "CPU", Value: "8-core"},
			{Label: "RAM", Value: "32 GB"},
		},
		Sections: []domain.ProductSection{
			{Order: 2, Title: "second"},
			{Order: 1, Title: "first"},
			{Order: 3, Title: "third"},
		},
		IsActive:  true,
		CreatedAt: created,
	}

	got := ProductFromDomain(p)

	if !got.InStock {
		t.Error("product with stock 3 should be in stock")
	}
	if got.CreatedAt == nil {
		t.Error("CreatedAt should be non-nil")
	}
	if got.UpdatedAt != nil {
		t.Error("absent UpdatedAt should serialize as null")
	}

	// specifications keep insertion order
	if got.Specifications[0].Label != "CPU" || got.Specifications[1].Label != "RAM" {
		t.Errorf("specification order changed: %+v", got.Specifications)
	}

	// rich sections come out by ascending order field
	wantTitles := []string{"first", "second", "third"}
	for i, w := range wantTitles {
		if got.ProductDescriptions[i].Title != w {
			t.Errorf("productDescriptions[%d] = %s, want %s", i, got.ProductDescriptions[i].Title, w)
		}
	}
}

func TestProductTimestampRoundTrip(t *testing.T) {
	orig := timeutil.Normalize(map[string]interface{}{
		"seconds":     int64(1700000000),
		"nanoseconds": int64(250000000),
	})

	got := ProductFromDomain(&domain.Product{ID: "p", Slug: "p", CreatedAt: orig})
	if got.CreatedAt == nil {
		t.Fatal("CreatedAt should be non-nil")
	}

	parsed, err := timeutil.ParseISO(*got.CreatedAt)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(orig) {
		t.Errorf("round trip drifted: got %v, want %v", parsed, orig)
	}
}
