package repository

import (
	"context"
	"errors"

	"github.com/daily-report-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportRepository определяет интерфейс для работы с отчётами
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	ListPerPage(ctx context.Context, offset, limit int) ([]domain.Report, error)
	Count(ctx context.Context) (int64, error)
	ListByEmployee(ctx context.Context, employeeID int64, offset, limit int) ([]domain.Report, error)
	CountByEmployee(ctx context.Context, employeeID int64) (int64, error)
	ListFollowed(ctx context.Context, followerID int64, offset, limit int) ([]domain.Report, error)
	CountFollowed(ctx context.Context, followerID int64) (int64, error)
	Update(ctx context.Context, report *domain.Report) error
	IncrementGood(ctx context.Context, id int64) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

var idDesc = clause.OrderByColumn{Column: clause.Column{Name: domain.RepColID}, Desc: true}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var report domain.Report
	err := conn(ctx, r.db).Preload("Employee").First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListPerPage(ctx context.Context, offset, limit int) ([]domain.Report, error) {
	var reports []domain.Report
	err := conn(ctx, r.db).
		Preload("Employee").
		Order(idDesc).
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Report{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) ListByEmployee(ctx context.Context, employeeID int64, offset, limit int) ([]domain.Report, error) {
	var reports []domain.Report
	err := conn(ctx, r.db).
		Preload("Employee").
		Where(domain.RepColEmployee+" = ?", employeeID).
		Order(idDesc).
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Report{}).
		Where(domain.RepColEmployee+" = ?", employeeID).
		Count(&count).Error
	return count, err
}

// followedSubquery отбирает авторов, на которых подписан followerID.
// Повторные подписки не размножают отчёты в выдаче.
func (r *reportRepository) followedSubquery(ctx context.Context, followerID int64) *gorm.DB {
	return conn(ctx, r.db).
		Model(&domain.Follow{}).
		Select(domain.FollowColFollowed).
		Where(domain.FollowColFollower+" = ?", followerID)
}

func (r *reportRepository) ListFollowed(ctx context.Context, followerID int64, offset, limit int) ([]domain.Report, error) {
	var reports []domain.Report
	err := conn(ctx, r.db).
		Preload("Employee").
		Where(domain.RepColEmployee+" IN (?)", r.followedSubquery(ctx, followerID)).
		Order(idDesc).
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) CountFollowed(ctx context.Context, followerID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Report{}).
		Where(domain.RepColEmployee+" IN (?)", r.followedSubquery(ctx, followerID)).
		Count(&count).Error
	return count, err
}

// Update не пишет reports_good: счётчик меняет только IncrementGood
func (r *reportRepository) Update(ctx context.Context, report *domain.Report) error {
	return conn(ctx, r.db).Omit(clause.Associations, domain.RepColGood).Save(report).Error
}

// IncrementGood увеличивает счётчик на стороне БД, без чтения старого значения
func (r *reportRepository) IncrementGood(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).
		Model(&domain.Report{}).
		Where(domain.RepColID+" = ?", id).
		UpdateColumn(domain.RepColGood, gorm.Expr(domain.RepColGood+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
