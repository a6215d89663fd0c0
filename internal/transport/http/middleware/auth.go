package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/https-dhanesh/itesa-website/internal/auth"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
)

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type claimsKey struct{}

// AdminAuth проверяет JWT администратора
func AdminAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthorized, "missing or invalid authorization header")
				return
			}

			claims, err := verifier.Verify(strings.TrimPrefix(authHeader, prefix))
			if err != nil {
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext возвращает данные токена, сохраненные AdminAuth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
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
