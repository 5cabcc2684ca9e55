package handler

import (
	"net/http"

	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

// StrengthHandler handles HTTP requests for strength classification.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleStrength handles POST /api/v1/strength requests. An empty password
// is valid input and rates weak.
func (h *StrengthHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Check(req))
}

// HandleRules handles GET /api/v1/rules requests.
func (h *StrengthHandler) HandleRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Rules())
}
