package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/lingosnap/translate-backend/internal/models"
)

// Every non-validation failure collapses to this body. The client cannot
// distinguish an empty model result from a network fault, on purpose.
const genericFailure = "Translation failed"

type translateService interface {
	Translate(ctx context.Context, req *models.TranslateRequest) (*models.TranslateResponse, error)
}

type TranslateHandler struct {
	logger  *log.Logger
	service translateService
}

func NewTranslateHandler(logger *log.Logger, service translateService) *TranslateHandler {
	return &TranslateHandler{
		logger:  logger,
		service: service,
	}
}

// Translate godoc
// @Summary Translate text or image
// @Description Translate plain text, or OCR+translate a base64 image, into targetLang. Image is sent as base64 string in JSON, with or without a data-URI prefix.
// @Tags translate
// @Accept json
// @Produce json
// @Param request body models.TranslateRequest true "Translate request"
// @Success 200 {object} models.TranslateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Printf("invalid JSON: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: genericFailure})
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Translate(r.Context(), &req)
	if err != nil {
		h.logger.Printf("translation error: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: genericFailure})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
