package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// ContactHandler обрабатывает запросы формы обратной связи
type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
	logger         *zap.Logger
}

// NewContactHandler создает новый handler для обратной связи
func NewContactHandler(contactUseCase *usecase.ContactUseCase, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// Submit обрабатывает POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	submission, err := h.contactUseCase.Submit(r.Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"submission": submission})
}

// ListSubmissions обрабатывает GET /admin/contact-submissions
func (h *ContactHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contactUseCase.ListSubmissions(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ContactSubmissionListResponse{Submissions: submissions})
}
