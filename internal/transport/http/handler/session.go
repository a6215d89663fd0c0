package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// SessionHandler обрабатывает запросы сессий посетителей
type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
	logger         *zap.Logger
}

// NewSessionHandler создает новый handler для сессий
func NewSessionHandler(sessionUseCase *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// Start обрабатывает POST /session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUseCase.StartSession(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.SessionResponse{Session: session})
}

// Get обрабатывает GET /session/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUseCase.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SessionResponse{Session: session})
}

// MarkHeroPlayed обрабатывает POST /session/{id}/hero-played
func (h *SessionHandler) MarkHeroPlayed(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUseCase.MarkHeroPlayed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SessionResponse{Session: session})
}

// End обрабатывает DELETE /session/{id}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionUseCase.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
