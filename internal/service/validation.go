package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/daily-report-api/internal/domain"
)

// newValidator возвращает валидатор, сообщающий имена полей из json-тегов
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// fieldMessages - сообщение по ключу "поле.тег" или просто "поле"
type fieldMessages map[string]string

func (m fieldMessages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return field + " is invalid"
}

// validateStruct переводит ошибки validator в *domain.ValidationError.
// В out добавляются ошибки из дополнительных (ручных) проверок.
func validateStruct(v *validator.Validate, s any, msgs fieldMessages, out *domain.ValidationError) error {
	err := v.Struct(s)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out.Add(fe.Field(), msgs.lookup(fe.Field(), fe.Tag()))
		}
	}
	return out.OrNil()
}
