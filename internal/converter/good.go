package converter

import (
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

func ToGoodModel(v *dto.GoodView) *domain.Good {
	if v == nil {
		return nil
	}
	g := &domain.Good{
		ID:        v.ID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Employee:  ToEmployeeModel(v.Employee),
		Report:    ToReportModel(v.Report),
	}
	if v.Employee != nil {
		g.EmployeeID = v.Employee.ID
	}
	if v.Report != nil {
		g.ReportID = v.Report.ID
	}
	return g
}

func ToGoodView(g *domain.Good) *dto.GoodView {
	if g == nil {
		return nil
	}
	v := &dto.GoodView{
		ID:        g.ID,
		Employee:  ToEmployeeView(g.Employee),
		Report:    ToReportView(g.Report),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if v.Employee == nil && g.EmployeeID != 0 {
		v.Employee = &dto.EmployeeView{ID: g.EmployeeID}
	}
	if v.Report == nil && g.ReportID != 0 {
		v.Report = &dto.ReportView{ID: g.ReportID}
	}
	return v
}

func ToGoodViewList(list []domain.Good) []dto.GoodView {
	views := make([]dto.GoodView, 0, len(list))
	for i := range list {
		views = append(views, *ToGoodView(&list[i]))
	}
	return views
}

func CopyGoodViewToModel(g *domain.Good, v *dto.GoodView) {
	g.ID = v.ID
	g.Employee = ToEmployeeModel(v.Employee)
	if v.Employee != nil {
		g.EmployeeID = v.Employee.ID
	}
	g.Report = ToReportModel(v.Report)
	if v.Report != nil {
		g.ReportID = v.Report.ID
	}
	g.CreatedAt = v.CreatedAt
	g.UpdatedAt = v.UpdatedAt
}
