package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Field   string
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewFieldError создаёт ошибку валидации конкретного поля.
func NewFieldError(code failure.ErrorCode, field, message string) *AppError {
	return &AppError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// AsAppError извлекает AppError из цепочки.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)

	return ok
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code, true
	}

	return "", false
}
