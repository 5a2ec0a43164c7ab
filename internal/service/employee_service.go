package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/converter"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	GetPerPage(ctx context.Context, page int) ([]dto.EmployeeView, error)
	CountAll(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, id int64) (*dto.EmployeeView, error)
	Authenticate(ctx context.Context, code, password string) (*dto.EmployeeView, error)
	CountByCode(ctx context.Context, code string) (int64, error)
	Create(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error)
	Update(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error)
	Destroy(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	tx       repository.TxManager
	validate *validator.Validate
	now      func() time.Time
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, tx repository.TxManager) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		tx:       tx,
		validate: newValidator(),
		now:      time.Now,
	}
}

// bcrypt принимает не больше 72 байт, а не символов
const maxPasswordBytes = 72

type employeeInput struct {
	Code     string `json:"code" validate:"required,max=255"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required_if=CheckPassword true"`
	Admin    int    `json:"admin_flag" validate:"oneof=0 1"`

	CheckPassword bool `json:"-"`
}

var employeeMessages = fieldMessages{
	"code.required": domain.ErrMsgNoCode,
	"code.max":      domain.ErrMsgTooLong,
	"name.required": domain.ErrMsgNoName,
	"name.max":      domain.ErrMsgTooLong,
	"password":      domain.ErrMsgNoPassword,
	"admin_flag":    domain.ErrMsgBadRole,
}

// validateEmployee проверяет поля и уникальность кода.
// Код проверяется по БД только при создании или при его смене.
func (s *employeeService) validateEmployee(ctx context.Context, ev *dto.EmployeeView, checkCode, checkPassword bool) error {
	in := employeeInput{
		Code:          strings.TrimSpace(ev.Code),
		Name:          strings.TrimSpace(ev.Name),
		Password:      ev.Password,
		Admin:         ev.AdminFlag,
		CheckPassword: checkPassword,
	}

	out := &domain.ValidationError{}
	if len(in.Password) > maxPasswordBytes {
		out.Add("password", domain.ErrMsgTooLong)
	}
	if checkCode && in.Code != "" {
		n, err := s.empRepo.CountByCode(ctx, in.Code)
		if err != nil {
			return err
		}
		if n > 0 {
			out.Add("code", domain.ErrMsgCodeExists)
		}
	}
	return validateStruct(s.validate, &in, employeeMessages, out)
}

func (s *employeeService) GetPerPage(ctx context.Context, page int) ([]dto.EmployeeView, error) {
	employees, err := s.empRepo.ListPerPage(ctx, domain.Offset(page), domain.RowPerPage)
	if err != nil {
		return nil, err
	}
	return converter.ToEmployeeViewList(employees), nil
}

func (s *employeeService) CountAll(ctx context.Context) (int64, error) {
	return s.empRepo.Count(ctx)
}

func (s *employeeService) FindOne(ctx context.Context, id int64) (*dto.EmployeeView, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ToEmployeeView(emp), nil
}

// Authenticate ищет неудалённого сотрудника по коду и сверяет пароль
func (s *employeeService) Authenticate(ctx context.Context, code, password string) (*dto.EmployeeView, error) {
	emp, err := s.empRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.CheckPassword(emp.Password, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return converter.ToEmployeeView(emp), nil
}

func (s *employeeService) CountByCode(ctx context.Context, code string) (int64, error) {
	return s.empRepo.CountByCode(ctx, code)
}

func (s *employeeService) Create(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error) {
	var created *dto.EmployeeView
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateEmployee(ctx, ev, true, true); err != nil {
			return err
		}

		hashed, err := auth.HashPassword(ev.Password)
		if err != nil {
			return err
		}

		now := s.now()
		view := *ev
		view.Code = strings.TrimSpace(ev.Code)
		view.Name = strings.TrimSpace(ev.Name)
		view.Password = hashed
		view.DeleteFlag = domain.EmpDelFalse
		view.CreatedAt = now
		view.UpdatedAt = now

		emp := converter.ToEmployeeModel(&view)
		if err := s.empRepo.Create(ctx, emp); err != nil {
			return err
		}
		view.ID = emp.ID
		created = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update меняет код, имя, роль и, если передан, пароль
func (s *employeeService) Update(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error) {
	var updated *dto.EmployeeView
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		tracked, err := s.empRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}

		current := converter.ToEmployeeView(tracked)
		codeChanged := strings.TrimSpace(ev.Code) != current.Code
		newPassword := ev.Password != ""
		if err := s.validateEmployee(ctx, ev, codeChanged, false); err != nil {
			return err
		}

		current.Code = strings.TrimSpace(ev.Code)
		current.Name = strings.TrimSpace(ev.Name)
		current.AdminFlag = ev.AdminFlag
		if newPassword {
			hashed, err := auth.HashPassword(ev.Password)
			if err != nil {
				return err
			}
			current.Password = hashed
		}
		current.UpdatedAt = s.now()

		converter.CopyEmployeeViewToModel(tracked, current)
		if err := s.empRepo.Update(ctx, tracked); err != nil {
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

// Destroy помечает сотрудника удалённым
func (s *employeeService) Destroy(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.empRepo.SoftDelete(ctx, id)
	})
}
