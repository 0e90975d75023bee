package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses the default length.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong)
}
