package domain

import (
	"errors"
	"strings"
)

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrNotReportOwner     = errors.New("report belongs to another employee")
	ErrInvalidCredentials = errors.New("invalid employee code or password")
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("admin rights required")
)

// FieldError - ошибка проверки одного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError возвращается сервисами, когда введённые данные не прошли проверку
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add добавляет ошибку поля
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil возвращает nil, если ошибок нет
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
