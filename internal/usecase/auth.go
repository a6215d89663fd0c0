package usecase

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/auth"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

// AuthUseCase реализует вход администратора
type AuthUseCase struct {
	authenticator *auth.Authenticator
	logger        *zap.Logger
}

// NewAuthUseCase создает новый usecase для авторизации
func NewAuthUseCase(authenticator *auth.Authenticator, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Login проверяет учетные данные и выдает токен администратора
func (uc *AuthUseCase) Login(email, password string) (*auth.Token, error) {
	token, err := uc.authenticator.Login(email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			uc.logger.Warn("failed admin login attempt")
			return nil, domainErrors.NewDomainError(
				domainErrors.CodeUnauthorized,
				"invalid email or password",
				domainErrors.ErrUnauthorized,
			)
		}
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Info("admin logged in")
	return token, nil
}
