package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daily-report-api/internal/converter"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/repository"
)

// ReportService определяет интерфейс бизнес-логики для отчётов
type ReportService interface {
	GetAllPerPage(ctx context.Context, page int) ([]dto.ReportView, error)
	CountAll(ctx context.Context) (int64, error)
	GetMinePerPage(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error)
	CountAllMine(ctx context.Context, employeeID int64) (int64, error)
	FindOne(ctx context.Context, id int64) (*dto.ReportView, error)
	FindOwned(ctx context.Context, id, employeeID int64) (*dto.ReportView, error)
	Create(ctx context.Context, rv *dto.ReportView) (*dto.ReportView, error)
	Update(ctx context.Context, rv *dto.ReportView, editorID int64) (*dto.ReportView, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	tx         repository.TxManager
	validate   *validator.Validate
	now        func() time.Time
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(reportRepo repository.ReportRepository, tx repository.TxManager) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		tx:         tx,
		validate:   newValidator(),
		now:        time.Now,
	}
}

type reportInput struct {
	EmployeeID int64     `json:"employee" validate:"required"`
	ReportDate time.Time `json:"report_date" validate:"required"`
	Title      string    `json:"title" validate:"required,max=255"`
	Content    string    `json:"content" validate:"required"`
}

var reportMessages = fieldMessages{
	"employee":       domain.ErrMsgNoEmployee,
	"report_date":    domain.ErrMsgNoReportDate,
	"title.required": domain.ErrMsgNoTitle,
	"title.max":      domain.ErrMsgTooLong,
	"content":        domain.ErrMsgNoContent,
}

func (s *reportService) validateReport(rv *dto.ReportView) error {
	in := reportInput{
		ReportDate: rv.ReportDate,
		Title:      rv.Title,
		Content:    rv.Content,
	}
	if rv.Employee != nil {
		in.EmployeeID = rv.Employee.ID
	}
	return validateStruct(s.validate, &in, reportMessages, &domain.ValidationError{})
}

func (s *reportService) GetAllPerPage(ctx context.Context, page int) ([]dto.ReportView, error) {
	reports, err := s.reportRepo.ListPerPage(ctx, domain.Offset(page), domain.RowPerPage)
	if err != nil {
		return nil, err
	}
	return converter.ToReportViewList(reports), nil
}

func (s *reportService) CountAll(ctx context.Context) (int64, error) {
	return s.reportRepo.Count(ctx)
}

func (s *reportService) GetMinePerPage(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error) {
	reports, err := s.reportRepo.ListByEmployee(ctx, employeeID, domain.Offset(page), domain.RowPerPage)
	if err != nil {
		return nil, err
	}
	return converter.ToReportViewList(reports), nil
}

func (s *reportService) CountAllMine(ctx context.Context, employeeID int64) (int64, error) {
	return s.reportRepo.CountByEmployee(ctx, employeeID)
}

func (s *reportService) FindOne(ctx context.Context, id int64) (*dto.ReportView, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ToReportView(report), nil
}

// FindOwned возвращает отчёт только его автору
func (s *reportService) FindOwned(ctx context.Context, id, employeeID int64) (*dto.ReportView, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.EmployeeID != employeeID {
		return nil, domain.ErrNotReportOwner
	}
	return converter.ToReportView(report), nil
}

func (s *reportService) Create(ctx context.Context, rv *dto.ReportView) (*dto.ReportView, error) {
	rv.Title = strings.TrimSpace(rv.Title)
	rv.Content = strings.TrimSpace(rv.Content)
	if err := s.validateReport(rv); err != nil {
		return nil, err
	}

	now := s.now()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	rv.ReportGood = 0

	report := converter.ToReportModel(rv)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.reportRepo.Create(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	rv.ID = report.ID
	return rv, nil
}

// Update меняет дату, заголовок и содержание.
// Автор, время создания и счётчик отметок остаются как в БД.
func (s *reportService) Update(ctx context.Context, rv *dto.ReportView, editorID int64) (*dto.ReportView, error) {
	var updated *dto.ReportView
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		tracked, err := s.reportRepo.GetByID(ctx, rv.ID)
		if err != nil {
			return err
		}
		if tracked.EmployeeID != editorID {
			return domain.ErrNotReportOwner
		}

		current := converter.ToReportView(tracked)
		current.ReportDate = rv.ReportDate
		current.Title = strings.TrimSpace(rv.Title)
		current.Content = strings.TrimSpace(rv.Content)
		if err := s.validateReport(current); err != nil {
			return err
		}
		current.UpdatedAt = s.now()

		converter.CopyReportViewToModel(tracked, current)
		if err := s.reportRepo.Update(ctx, tracked); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
