package transport

import (
	"net/http"

	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AccountProfile is the authenticated caller's identity
type AccountProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AccountHandler handles HTTP requests for the signed-in account
type AccountHandler struct {
	logger *zap.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(logger *zap.Logger) *AccountHandler {
	return &AccountHandler{logger: logger}
}

// RegisterRoutes registers the account routes behind the auth middleware
func (h *AccountHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/account", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", h.GetProfile)
		})
	})
}

// GetProfile returns the profile of the authenticated user
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	email, _ := middleware.GetUserEmail(r.Context())

	h.logger.Debug("Profile requested", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, AccountProfile{ID: userID, Email: email})
}
