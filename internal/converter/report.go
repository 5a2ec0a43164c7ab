package converter

import (
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

// ToReportModel создаёт сущность отчёта, включая вложенного автора
func ToReportModel(v *dto.ReportView) *domain.Report {
	if v == nil {
		return nil
	}
	r := &domain.Report{
		ID:         v.ID,
		ReportDate: v.ReportDate,
		Title:      v.Title,
		Content:    v.Content,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		ReportGood: v.ReportGood,
		Employee:   ToEmployeeModel(v.Employee),
	}
	if v.Employee != nil {
		r.EmployeeID = v.Employee.ID
	}
	return r
}

// ToReportView создаёт представление отчёта
func ToReportView(r *domain.Report) *dto.ReportView {
	if r == nil {
		return nil
	}
	v := &dto.ReportView{
		ID:         r.ID,
		Employee:   ToEmployeeView(r.Employee),
		ReportDate: r.ReportDate,
		Title:      r.Title,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		ReportGood: r.ReportGood,
	}
	// автор не подгружен - оставляем хотя бы идентификатор
	if v.Employee == nil && r.EmployeeID != 0 {
		v.Employee = &dto.EmployeeView{ID: r.EmployeeID}
	}
	return v
}

// ToReportViewList сохраняет порядок входного списка
func ToReportViewList(list []domain.Report) []dto.ReportView {
	views := make([]dto.ReportView, 0, len(list))
	for i := range list {
		views = append(views, *ToReportView(&list[i]))
	}
	return views
}

// CopyReportViewToModel переносит поля представления в отслеживаемую сущность
func CopyReportViewToModel(r *domain.Report, v *dto.ReportView) {
	r.ID = v.ID
	r.Employee = ToEmployeeModel(v.Employee)
	if v.Employee != nil {
		r.EmployeeID = v.Employee.ID
	}
	r.ReportDate = v.ReportDate
	r.Title = v.Title
	r.Content = v.Content
	r.CreatedAt = v.CreatedAt
	r.UpdatedAt = v.UpdatedAt
	r.ReportGood = v.ReportGood
}
