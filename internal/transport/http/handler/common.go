package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 20

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Заголовки уже отправлены, статус изменить нельзя
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}

	json.NewEncoder(w).Encode(response)
}

// decodeRequest читает JSON тело и проверяет его по тегам validate
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, "invalid request body")
		return false
	}

	if err := dto.Validate(req); err != nil {
		respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, err.Error())
		return false
	}

	return true
}

// handleUseCaseError обрабатывает ошибки из usecase слоя
func handleUseCaseError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		// Определяем HTTP статус код по коду ошибки
		status := getStatusCodeByErrorCode(domainErr.Code)
		respondError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// getStatusCodeByErrorCode возвращает HTTP статус код по коду доменной ошибки
func getStatusCodeByErrorCode(code string) int {
	switch code {
	case domainErrors.CodeAlreadySubscribed, domainErrors.CodeNoSubscribers:
		return http.StatusConflict
	case domainErrors.CodeNotFound, domainErrors.CodeSessionNotFound:
		return http.StatusNotFound
	case domainErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case domainErrors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
