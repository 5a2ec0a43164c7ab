package service

import (
	"context"
	"time"

	"github.com/daily-report-api/internal/converter"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/repository"
)

// FollowService определяет интерфейс бизнес-логики для подписок и ленты
type FollowService interface {
	GetFollowAll(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error)
	CountFollowAll(ctx context.Context, employeeID int64) (int64, error)
	GetFollowed(ctx context.Context, employeeID int64) ([]dto.FollowView, error)
	CountByPair(ctx context.Context, followerID, followedID int64) (int64, error)
	Create(ctx context.Context, fv *dto.FollowView) error
	FollowReportAuthor(ctx context.Context, followerID, reportID int64) (*dto.FollowView, error)
	Timeline(ctx context.Context, employeeID int64, page int) (*dto.TimelineView, error)
}

type followService struct {
	followRepo repository.FollowRepository
	reportRepo repository.ReportRepository
	tx         repository.TxManager
	now        func() time.Time
}

// NewFollowService создаёт новый экземпляр сервиса
func NewFollowService(followRepo repository.FollowRepository, reportRepo repository.ReportRepository, tx repository.TxManager) FollowService {
	return &followService{
		followRepo: followRepo,
		reportRepo: reportRepo,
		tx:         tx,
		now:        time.Now,
	}
}

func (s *followService) GetFollowAll(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error) {
	reports, err := s.reportRepo.ListFollowed(ctx, employeeID, domain.Offset(page), domain.RowPerPage)
	if err != nil {
		return nil, err
	}
	return converter.ToReportViewList(reports), nil
}

func (s *followService) CountFollowAll(ctx context.Context, employeeID int64) (int64, error) {
	return s.reportRepo.CountFollowed(ctx, employeeID)
}

func (s *followService) GetFollowed(ctx context.Context, employeeID int64) ([]dto.FollowView, error) {
	follows, err := s.followRepo.ListFollowings(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return converter.ToFollowViewList(follows), nil
}

func (s *followService) CountByPair(ctx context.Context, followerID, followedID int64) (int64, error) {
	return s.followRepo.CountByPair(ctx, followerID, followedID)
}

func (s *followService) Create(ctx context.Context, fv *dto.FollowView) error {
	if fv.Follower != nil && fv.Followed != nil && fv.Follower.ID == fv.Followed.ID {
		return domain.ErrFollowSelf
	}

	now := s.now()
	fv.CreatedAt = now
	fv.UpdatedAt = now

	follow := converter.ToFollowModel(fv)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.followRepo.Create(ctx, follow)
	})
	if err != nil {
		return err
	}
	fv.ID = follow.ID
	return nil
}

// FollowReportAuthor подписывает сотрудника на автора отчёта
func (s *followService) FollowReportAuthor(ctx context.Context, followerID, reportID int64) (*dto.FollowView, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	fv := &dto.FollowView{
		Follower: &dto.EmployeeView{ID: followerID},
		Followed: converter.ToEmployeeView(report.Employee),
	}
	if fv.Followed == nil {
		fv.Followed = &dto.EmployeeView{ID: report.EmployeeID}
	}

	if err := s.Create(ctx, fv); err != nil {
		return nil, err
	}
	return fv, nil
}

// Timeline собирает отчёты подписок: общий постраничный список
// и по одной группе на каждого автора, на которого подписан сотрудник
func (s *followService) Timeline(ctx context.Context, employeeID int64, page int) (*dto.TimelineView, error) {
	reports, err := s.GetFollowAll(ctx, employeeID, page)
	if err != nil {
		return nil, err
	}
	count, err := s.CountFollowAll(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	follows, err := s.GetFollowed(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	groups := make([]dto.TimelineGroup, 0, len(follows))
	for _, f := range follows {
		if f.Followed == nil {
			continue
		}
		list, err := s.reportRepo.ListByEmployee(ctx, f.Followed.ID, domain.Offset(page), domain.RowPerPage)
		if err != nil {
			return nil, err
		}
		n, err := s.reportRepo.CountByEmployee(ctx, f.Followed.ID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, dto.TimelineGroup{
			Employee: f.Followed,
			Reports:  converter.ToReportViewList(list),
			Count:    n,
		})
	}

	return &dto.TimelineView{
		Reports: reports,
		Count:   count,
		Groups:  groups,
	}, nil
}
