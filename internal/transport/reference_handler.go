package transport

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/refdata"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReferenceHandler serves the static storefront reference tables
type ReferenceHandler struct {
	logger *zap.Logger
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{logger: logger}
}

// RegisterRoutes registers all reference data routes
func (h *ReferenceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/reference", func(r chi.Router) {
		r.Get("/shipping-cities", h.GetShippingCities)
		r.Get("/pc-builder-categories", h.GetPCBuilderCategories)
	})
}

// GetShippingCities lists the deliverable cities with their shipping rates
func (h *ReferenceHandler) GetShippingCities(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, refdata.ShippingCities())
}

// GetPCBuilderCategories lists the component slots of the PC builder
func (h *ReferenceHandler) GetPCBuilderCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, refdata.PCBuilderCategories())
}
