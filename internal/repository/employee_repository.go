package repository

import (
	"context"
	"errors"

	"github.com/daily-report-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	ListPerPage(ctx context.Context, offset, limit int) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	CountByCode(ctx context.Context, code string) (int64, error)
	Update(ctx context.Context, emp *domain.Employee) error
	SoftDelete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return conn(ctx, r.db).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// GetByCode ищет только неудалённых сотрудников
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).
		Where(domain.EmpColDeleteFlag+" = ?", domain.EmpDelFalse).
		Where(domain.EmpColCode+" = ?", code).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) ListPerPage(ctx context.Context, offset, limit int) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := conn(ctx, r.db).
		Order(clause.OrderByColumn{Column: clause.Column{Name: domain.EmpColID}, Desc: true}).
		Offset(offset).
		Limit(limit).
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

// CountByCode учитывает и удалённых сотрудников: код не переиспользуется
func (r *employeeRepository) CountByCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where(domain.EmpColCode+" = ?", code).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return conn(ctx, r.db).Save(emp).Error
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where(domain.EmpColID+" = ?", id).
		Update(domain.EmpColDeleteFlag, domain.EmpDelTrue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
