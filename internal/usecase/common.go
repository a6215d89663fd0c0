package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

// Notifier публикует уведомления о действиях на сайте
type Notifier interface {
	Publish(ctx context.Context, notificationType string, payload any) error
}

// optionalString возвращает nil для пустой строки
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// notFoundOr заменяет ErrNotFound репозитория доменной ошибкой
func notFoundOr(err error, message string) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.NotFound(message)
	}
	return err
}
