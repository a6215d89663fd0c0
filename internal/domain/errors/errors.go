package errors

import "errors"

var (
	ErrNotFound          = errors.New("NOT_FOUND")
	ErrUnauthorized      = errors.New("UNAUTHORIZED")
	ErrInvalidInput      = errors.New("INVALID_INPUT")
	ErrAlreadySubscribed = errors.New("ALREADY_SUBSCRIBED")
	ErrNoSubscribers     = errors.New("NO_SUBSCRIBERS")
	ErrSessionNotFound   = errors.New("SESSION_NOT_FOUND")
)

// Коды ошибок API
const (
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeAlreadySubscribed = "ALREADY_SUBSCRIBED"
	CodeNoSubscribers     = "NO_SUBSCRIBERS"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
)

// DomainError представляет доменную ошибку с кодом и сообщением
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound создает ошибку NOT_FOUND с сообщением
func NotFound(message string) *DomainError {
	return NewDomainError(CodeNotFound, message, ErrNotFound)
}

// InvalidInput создает ошибку INVALID_INPUT с сообщением
func InvalidInput(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message, ErrInvalidInput)
}
