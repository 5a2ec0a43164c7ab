package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GetAllPerPage(ctx context.Context, page int) ([]dto.ReportView, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReportView), args.Error(1)
}

func (m *mockReportService) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReportService) GetMinePerPage(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error) {
	args := m.Called(ctx, employeeID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReportView), args.Error(1)
}

func (m *mockReportService) CountAllMine(ctx context.Context, employeeID int64) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReportService) FindOne(ctx context.Context, id int64) (*dto.ReportView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportView), args.Error(1)
}

func (m *mockReportService) FindOwned(ctx context.Context, id, employeeID int64) (*dto.ReportView, error) {
	args := m.Called(ctx, id, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportView), args.Error(1)
}

func (m *mockReportService) Create(ctx context.Context, rv *dto.ReportView) (*dto.ReportView, error) {
	args := m.Called(ctx, rv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportView), args.Error(1)
}

func (m *mockReportService) Update(ctx context.Context, rv *dto.ReportView, editorID int64) (*dto.ReportView, error) {
	args := m.Called(ctx, rv, editorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportView), args.Error(1)
}

type mockGoodService struct {
	mock.Mock
}

func (m *mockGoodService) GetMinePerPage(ctx context.Context, reportID int64, page int) ([]dto.GoodView, error) {
	args := m.Called(ctx, reportID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GoodView), args.Error(1)
}

func (m *mockGoodService) CountAllMine(ctx context.Context, reportID int64) (int64, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGoodService) CountRepAndEmp(ctx context.Context, reportID, employeeID int64) (int64, error) {
	args := m.Called(ctx, reportID, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGoodService) Create(ctx context.Context, gv *dto.GoodView) error {
	return m.Called(ctx, gv).Error(0)
}

func (m *mockGoodService) Like(ctx context.Context, reportID, employeeID int64) (*dto.ReportView, error) {
	args := m.Called(ctx, reportID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportView), args.Error(1)
}

type mockFollowService struct {
	mock.Mock
}

func (m *mockFollowService) GetFollowAll(ctx context.Context, employeeID int64, page int) ([]dto.ReportView, error) {
	args := m.Called(ctx, employeeID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReportView), args.Error(1)
}

func (m *mockFollowService) CountFollowAll(ctx context.Context, employeeID int64) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowService) GetFollowed(ctx context.Context, employeeID int64) ([]dto.FollowView, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FollowView), args.Error(1)
}

func (m *mockFollowService) CountByPair(ctx context.Context, followerID, followedID int64) (int64, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowService) Create(ctx context.Context, fv *dto.FollowView) error {
	return m.Called(ctx, fv).Error(0)
}

func (m *mockFollowService) FollowReportAuthor(ctx context.Context, followerID, reportID int64) (*dto.FollowView, error) {
	args := m.Called(ctx, followerID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FollowView), args.Error(1)
}

func (m *mockFollowService) Timeline(ctx context.Context, employeeID int64, page int) (*dto.TimelineView, error) {
	args := m.Called(ctx, employeeID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TimelineView), args.Error(1)
}

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) GetPerPage(ctx context.Context, page int) ([]dto.EmployeeView, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EmployeeView), args.Error(1)
}

func (m *mockEmployeeService) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeService) FindOne(ctx context.Context, id int64) (*dto.EmployeeView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeView), args.Error(1)
}

func (m *mockEmployeeService) Authenticate(ctx context.Context, code, password string) (*dto.EmployeeView, error) {
	args := m.Called(ctx, code, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeView), args.Error(1)
}

func (m *mockEmployeeService) CountByCode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeService) Create(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeView), args.Error(1)
}

func (m *mockEmployeeService) Update(ctx context.Context, ev *dto.EmployeeView) (*dto.EmployeeView, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeView), args.Error(1)
}

func (m *mockEmployeeService) Destroy(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// staticEmployees отвечает AuthRequired без обращения к сервису
type staticEmployees map[int64]*dto.EmployeeView

func (s staticEmployees) FindOne(_ context.Context, id int64) (*dto.EmployeeView, error) {
	if emp, ok := s[id]; ok {
		return emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}
