package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// StrengthHandler handles HTTP requests for password strength checks.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleCheck handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.CheckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Check(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
