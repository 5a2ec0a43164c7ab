package service

import (
	"context"
	"time"

	"github.com/daily-report-api/internal/converter"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/repository"
)

// GoodService определяет интерфейс бизнес-логики для отметок «нравится»
type GoodService interface {
	GetMinePerPage(ctx context.Context, reportID int64, page int) ([]dto.GoodView, error)
	CountAllMine(ctx context.Context, reportID int64) (int64, error)
	CountRepAndEmp(ctx context.Context, reportID, employeeID int64) (int64, error)
	Create(ctx context.Context, gv *dto.GoodView) error
	Like(ctx context.Context, reportID, employeeID int64) (*dto.ReportView, error)
}

type goodService struct {
	goodRepo   repository.GoodRepository
	reportRepo repository.ReportRepository
	tx         repository.TxManager
	now        func() time.Time
}

// NewGoodService создаёт новый экземпляр сервиса
func NewGoodService(goodRepo repository.GoodRepository, reportRepo repository.ReportRepository, tx repository.TxManager) GoodService {
	return &goodService{
		goodRepo:   goodRepo,
		reportRepo: reportRepo,
		tx:         tx,
		now:        time.Now,
	}
}

func (s *goodService) GetMinePerPage(ctx context.Context, reportID int64, page int) ([]dto.GoodView, error) {
	goods, err := s.goodRepo.ListByReport(ctx, reportID, domain.Offset(page), domain.RowPerPage)
	if err != nil {
		return nil, err
	}
	return converter.ToGoodViewList(goods), nil
}

func (s *goodService) CountAllMine(ctx context.Context, reportID int64) (int64, error) {
	return s.goodRepo.CountByReport(ctx, reportID)
}

func (s *goodService) CountRepAndEmp(ctx context.Context, reportID, employeeID int64) (int64, error) {
	return s.goodRepo.CountByReportAndEmployee(ctx, reportID, employeeID)
}

func (s *goodService) Create(ctx context.Context, gv *dto.GoodView) error {
	now := s.now()
	gv.CreatedAt = now
	gv.UpdatedAt = now

	good := converter.ToGoodModel(gv)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.goodRepo.Create(ctx, good)
	})
	if err != nil {
		return err
	}
	gv.ID = good.ID
	return nil
}

// Like увеличивает счётчик отчёта и записывает отметку в одной транзакции
func (s *goodService) Like(ctx context.Context, reportID, employeeID int64) (*dto.ReportView, error) {
	var liked *dto.ReportView
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.reportRepo.IncrementGood(ctx, reportID); err != nil {
			return err
		}

		report, err := s.reportRepo.GetByID(ctx, reportID)
		if err != nil {
			return err
		}
		liked = converter.ToReportView(report)

		return s.Create(ctx, &dto.GoodView{
			Employee: &dto.EmployeeView{ID: employeeID},
			Report:   liked,
		})
	})
	if err != nil {
		return nil, err
	}
	return liked, nil
}
