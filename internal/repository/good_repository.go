package repository

import (
	"context"

	"github.com/daily-report-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoodRepository определяет интерфейс для работы с отметками «нравится»
type GoodRepository interface {
	Create(ctx context.Context, good *domain.Good) error
	ListByReport(ctx context.Context, reportID int64, offset, limit int) ([]domain.Good, error)
	CountByReport(ctx context.Context, reportID int64) (int64, error)
	CountByReportAndEmployee(ctx context.Context, reportID, employeeID int64) (int64, error)
}

type goodRepository struct {
	db *gorm.DB
}

// NewGoodRepository создаёт новый экземпляр репозитория
func NewGoodRepository(db *gorm.DB) GoodRepository {
	return &goodRepository{db: db}
}

func (r *goodRepository) Create(ctx context.Context, good *domain.Good) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(good).Error
}

func (r *goodRepository) ListByReport(ctx context.Context, reportID int64, offset, limit int) ([]domain.Good, error) {
	var goods []domain.Good
	err := conn(ctx, r.db).
		Preload("Employee").
		Preload("Report").
		Where(domain.GoodColReport+" = ?", reportID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: domain.GoodColID}, Desc: true}).
		Offset(offset).
		Limit(limit).
		Find(&goods).Error
	return goods, err
}

func (r *goodRepository) CountByReport(ctx context.Context, reportID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Good{}).
		Where(domain.GoodColReport+" = ?", reportID).
		Count(&count).Error
	return count, err
}

func (r *goodRepository) CountByReportAndEmployee(ctx context.Context, reportID, employeeID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Good{}).
		Where(domain.GoodColReport+" = ? AND "+domain.GoodColEmployee+" = ?", reportID, employeeID).
		Count(&count).Error
	return count, err
}
