// AngelaMos | 2026
// handler.go

package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/givehub/internal/core"
	"github.com/angelamos/givehub/internal/donation"
	"github.com/angelamos/givehub/internal/middleware"
)

// Ledger is the slice of the donation service the profile view needs.
type Ledger interface {
	ListForUser(ctx context.Context, userID string) ([]donation.Donation, error)
}

type Handler struct {
	service *Service
	ledger  Ledger
}

func NewHandler(service *Service, ledger Ledger) *Handler {
	return &Handler{service: service, ledger: ledger}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/user/profile", h.GetProfile)
	})
}

// GetProfile returns the acting user's public projection with the ledger
// embedded, most recent donation first.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	u, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	donations, err := h.ledger.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ProfileResponse{
		UserResponse: ToUserResponse(u),
		Donations:    donation.ToResponseList(donations),
		TotalDonated: donation.SumSuccessful(donations),
	})
}
