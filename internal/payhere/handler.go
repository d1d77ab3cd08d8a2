// AngelaMos | 2026
// handler.go

package payhere

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/givehub/internal/core"
)

type HashRequest struct {
	OrderID  string  `json:"orderId"  validate:"required,max=64"`
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3,alpha"`
}

type HashResponse struct {
	Hash       string `json:"hash"`
	MerchantID string `json:"merchantId"`
}

type Handler struct {
	signer   *Signer
	validate *validator.Validate
}

func NewHandler(signer *Signer) *Handler {
	return &Handler{
		signer:   signer,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/generate-hash", h.GenerateHash)
	})
}

func (h *Handler) GenerateHash(w http.ResponseWriter, r *http.Request) {
	var req HashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	hash, err := h.signer.ComputeHash(req.OrderID, req.Amount, req.Currency)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, HashResponse{
		Hash:       hash,
		MerchantID: h.signer.MerchantID(),
	})
}
