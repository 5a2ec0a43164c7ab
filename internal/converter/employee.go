// Package converter копирует поля между сущностями хранилища и представлениями.
// Функции не изменяют входные значения; ToXView(nil) возвращает nil.
package converter

import (
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

// ToEmployeeModel создаёт сущность из представления
func ToEmployeeModel(v *dto.EmployeeView) *domain.Employee {
	if v == nil {
		return nil
	}
	return &domain.Employee{
		ID:         v.ID,
		Code:       v.Code,
		Name:       v.Name,
		Password:   v.Password,
		AdminFlag:  v.AdminFlag,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		DeleteFlag: v.DeleteFlag,
	}
}

// ToEmployeeView создаёт представление из сущности
func ToEmployeeView(e *domain.Employee) *dto.EmployeeView {
	if e == nil {
		return nil
	}
	return &dto.EmployeeView{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Password:   e.Password,
		AdminFlag:  e.AdminFlag,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
		DeleteFlag: e.DeleteFlag,
	}
}

// ToEmployeeViewList сохраняет порядок; пустой вход даёт пустой (не nil) срез
func ToEmployeeViewList(list []domain.Employee) []dto.EmployeeView {
	views := make([]dto.EmployeeView, 0, len(list))
	for i := range list {
		views = append(views, *ToEmployeeView(&list[i]))
	}
	return views
}

// CopyEmployeeViewToModel переносит все поля представления в уже загруженную сущность
func CopyEmployeeViewToModel(e *domain.Employee, v *dto.EmployeeView) {
	e.ID = v.ID
	e.Code = v.Code
	e.Name = v.Name
	e.Password = v.Password
	e.AdminFlag = v.AdminFlag
	e.CreatedAt = v.CreatedAt
	e.UpdatedAt = v.UpdatedAt
	e.DeleteFlag = v.DeleteFlag
}
