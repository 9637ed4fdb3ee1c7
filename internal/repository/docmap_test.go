package repository

import (
	"testing"
	"time"

	"storefront/internal/timeutil"

	"github.com/google/uuid"
)

func TestDocToCategory(t *testing.T) {
	// document ids are store-generated opaque strings
	docID := uuid.NewString()
	parentID := uuid.NewString()

	data := map[string]interface{}{
		"name":     "Laptops",
		"slug":     "laptops",
		"parentId": parentID,
		"level":    int64(1),
		"path":     []interface{}{parentID, docID},
		"order":    int64(3),
		"isActive": true,
		"keywords": []interface{}{"laptop", "notebook"},
		// native driver form: already a time.Time after decode
		"createdAt": time.Unix(1700000000, 0).UTC(),
		// raw record form that never went through the driver's codec
		"updatedAt": map[string]interface{}{"seconds": int64(1700000100), "nanoseconds": int64(0)},
	}

	c := docToCategory(docID, data)

	if c.ID != docID || c.Name != "Laptops" || c.Slug != "laptops" {
		t.Errorf("identity fields wrong: %+v", c)
	}
	if c.ParentID == nil || *c.ParentID != parentID {
		t.Errorf("ParentID = %v, want %s", c.ParentID, parentID)
	}
	if c.Level != 1 || c.Order != 3 {
		t.Errorf("level/order wrong: %+v", c)
	}
	if len(c.Path) != 2 || c.Path[1] != docID {
		t.Errorf("path wrong: %v", c.Path)
	}
	if !c.CreatedAt.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Errorf("createdAt = %v", c.CreatedAt)
	}
	if !c.UpdatedAt.Equal(time.Unix(1700000100, 0).UTC()) {
		t.Errorf("updatedAt = %v", c.UpdatedAt)
	}
}

func TestDocToCategoryMissingFields(t *testing.T) {
	c := docToCategory("bare", map[string]interface{}{})

	if c.ID != "bare" {
		t.Errorf("ID = %s", c.ID)
	}
	if c.ParentID != nil {
		t.Errorf("absent parentId should decode to nil, got %v", *c.ParentID)
	}
	if c.IsActive {
		t.Error("absent isActive should decode to false")
	}
	if !timeutil.IsSentinel(c.CreatedAt) {
		t.Errorf("absent createdAt should be the sentinel, got %v", c.CreatedAt)
	}
}

func TestDocToProduct(t *testing.T) {
	data := map[string]interface{}{
		"slug":              "gaming-laptop",
		"title":             "Gaming Laptop",
		"brandId":           "b1",
		"categoryIds":       []interface{}{"cat1", "cat2"},
		"primaryCategoryId": "cat1",
		"price":             float64(999.5),
		"oldPrice":          float64(1099),
		"stock":             int64(4),
		"isActive":          true,
		"specifications": []interface{}{
			map[string]interface{}{"label": "CPU", "value": "8-core"},
			map[string]interface{}{"label": "RAM", "value": "32 GB"},
		},
		"badges": []interface{}{
			map[string]interface{}{"label": "New", "position": "top-left", "priority": int64(1), "color": "#ff0000"},
		},
		"productDescriptions": []interface{}{
			map[string]interface{}{"order": int64(2), "title": "Details"},
		},
	}

	docID := uuid.NewString()
	p := docToProduct(docID, data)

	if p.ID != docID {
		t.Errorf("ID = %s, want %s", p.ID, docID)
	}
	if p.Slug != "gaming-laptop" || p.Price != 999.5 || p.Stock != 4 {
		t.Errorf("scalar fields wrong: %+v", p)
	}
	if p.OldPrice == nil || *p.OldPrice != 1099 {
		t.Errorf("oldPrice = %v", p.OldPrice)
	}
	if p.CostPrice != nil {
		t.Errorf("absent costPrice should decode to nil")
	}
	if len(p.Specifications) != 2 || p.Specifications[0].Label != "CPU" {
		t.Errorf("specifications wrong: %+v", p.Specifications)
	}
	if len(p.Badges) != 1 || p.Badges[0].Priority != 1 {
		t.Errorf("badges wrong: %+v", p.Badges)
	}
	if len(p.Sections) != 1 || p.Sections[0].Order != 2 {
		t.Errorf("sections wrong: %+v", p.Sections)
	}
}

func TestDocSpecEntriesLegacyMapForm(t *testing.T) {
	data := map[string]interface{}{
		"specifications": map[string]interface{}{
			"RAM": "32 GB",
			"CPU": "8-core",
		},
	}

	entries := docSpecEntries(data, "specifications")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// legacy form has no stored order; label order is the documented fallback
	if entries[0].Label != "CPU" || entries[1].Label != "RAM" {
		t.Errorf("legacy entries not in label order: %+v", entries)
	}
}
