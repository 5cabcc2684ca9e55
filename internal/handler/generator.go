package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/vaultpass-engine/internal/crypto"
	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the configured defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePolicy handles GET /api/v1/policy requests.
func (h *GeneratorHandler) HandlePolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Policy())
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidArgument)
}
