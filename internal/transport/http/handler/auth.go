package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// AuthHandler обрабатывает вход администратора
type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	logger      *zap.Logger
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(authUseCase *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Login обрабатывает POST /admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	token, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	})
}
