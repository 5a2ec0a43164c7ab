package dto

import (
	"github.com/daily-report-api/internal/domain"
)

// Page - метаданные постраничного вывода
type Page struct {
	Page   int   `json:"page"`
	Count  int64 `json:"count"`
	MaxRow int   `json:"max_row"`
}

// NewPage заполняет метаданные страницы с фиксированным размером
func NewPage(page int, count int64) Page {
	return Page{Page: page, Count: count, MaxRow: domain.RowPerPage}
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Token    string        `json:"token"`
	Employee *EmployeeView `json:"employee"`
	Message  string        `json:"message"`
}

// ReportListResponse - список отчётов
type ReportListResponse struct {
	Reports []ReportView `json:"reports"`
	Page
}

// ReportFormResponse - форма отчёта (новая, редактирование или повтор с ошибками)
type ReportFormResponse struct {
	Token  string              `json:"token"`
	Report *ReportView         `json:"report"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

// ReportDetailResponse - детальная страница отчёта
type ReportDetailResponse struct {
	Report    *ReportView `json:"report"`
	GoodCount int64       `json:"good_count_by_me"`
	Following bool        `json:"following_author"`
}

// GoodListResponse - сотрудники, отметившие отчёт
type GoodListResponse struct {
	Report *ReportView `json:"report"`
	Goods  []GoodView  `json:"goods"`
	Page
}

// TimelineResponse - лента подписок
type TimelineResponse struct {
	Employee *EmployeeView `json:"employee"`
	Follows  []FollowView  `json:"follows"`
	Timeline *TimelineView `json:"timeline"`
	Page
}

// FollowListResponse - список подписок сотрудника
type FollowListResponse struct {
	Follows []FollowView `json:"follows"`
}

// EmployeeListResponse - список сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeView `json:"employees"`
	Page
}

// EmployeeFormResponse - форма сотрудника
type EmployeeFormResponse struct {
	Token    string              `json:"token"`
	Employee *EmployeeView       `json:"employee"`
	Errors   []domain.FieldError `json:"errors,omitempty"`
}

// RedirectResponse - ответ-перенаправление с флеш-сообщением
type RedirectResponse struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
