package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/refdata"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newReferenceRouter() chi.Router {
	r := chi.NewRouter()
	NewReferenceHandler(zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestGetShippingCities(t *testing.T) {
	router := newReferenceRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/shipping-cities", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var cities []refdata.ShippingCity
	if err := json.Unmarshal(w.Body.Bytes(), &cities); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(cities) != len(refdata.ShippingCities()) {
		t.Errorf("expected all shipping cities, got %d", len(cities))
	}
}

func TestGetPCBuilderCategories(t *testing.T) {
	router := newReferenceRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/pc-builder-categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var slots []refdata.PCBuilderCategory
	if err := json.Unmarshal(w.Body.Bytes(), &slots); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(slots) == 0 {
		t.Error("expected PC builder slots in response")
	}
}
