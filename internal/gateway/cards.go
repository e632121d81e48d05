package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
)

const maxCardBody = 64 << 10

func (h *Handlers) resolveCard(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCardInput(w, r)
	if !ok {
		return
	}
	state, err := h.cart.Resolve(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// addToCart answers 200 for both outcomes; a gated click reports
// accepted=false with the card state.
func (h *Handlers) addToCart(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCardInput(w, r)
	if !ok {
		return
	}
	res, err := h.cart.AddToCart(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decodeCardInput(w http.ResponseWriter, r *http.Request) (*dto.CardInput, bool) {
	var in dto.CardInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCardBody))
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a card input object")
		return nil, false
	}
	return &in, true
}
