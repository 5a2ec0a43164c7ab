package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/repository"
	"github.com/daily-report-api/internal/service"
)

type services struct {
	db        *gorm.DB
	employees service.EmployeeService
	reports   service.ReportService
	goods     service.GoodService
	follows   service.FollowService
}

func setup(t *testing.T) *services {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.Employee{}, &domain.Report{}, &domain.Good{}, &domain.Follow{}))

	tx := repository.NewTxManager(db)
	empRepo := repository.NewEmployeeRepository(db)
	reportRepo := repository.NewReportRepository(db)
	goodRepo := repository.NewGoodRepository(db)
	followRepo := repository.NewFollowRepository(db)

	return &services{
		db:        db,
		employees: service.NewEmployeeService(empRepo, tx),
		reports:   service.NewReportService(reportRepo, tx),
		goods:     service.NewGoodService(goodRepo, reportRepo, tx),
		follows:   service.NewFollowService(followRepo, reportRepo, tx),
	}
}

func (s *services) employee(t *testing.T, code string) *dto.EmployeeView {
	t.Helper()
	ev, err := s.employees.Create(context.Background(), &dto.EmployeeView{
		Code:     code,
		Name:     "name-" + code,
		Password: "password",
	})
	require.NoError(t, err)
	return ev
}

func (s *services) report(t *testing.T, owner *dto.EmployeeView, title string) *dto.ReportView {
	t.Helper()
	rv, err := s.reports.Create(context.Background(), &dto.ReportView{
		Employee:   owner,
		ReportDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Title:      title,
		Content:    "content",
	})
	require.NoError(t, err)
	return rv
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestReportService_Create(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	owner := s.employee(t, "E7")

	before, err := s.reports.CountAll(ctx)
	require.NoError(t, err)

	created, err := s.reports.Create(ctx, &dto.ReportView{
		Employee:   owner,
		ReportDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Title:      "T",
		Content:    "C",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := s.reports.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.Employee.ID)
	assert.Equal(t, "2024-03-01", got.ReportDate.Format("2006-01-02"))
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.Zero(t, got.ReportGood)

	after, err := s.reports.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestReportService_StoresTrimmedText(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	owner := s.employee(t, "E1")

	created, err := s.reports.Create(ctx, &dto.ReportView{
		Employee:   owner,
		ReportDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Title:      "  title  ",
		Content:    "\ncontent\n",
	})
	require.NoError(t, err)

	got, err := s.reports.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", got.Title)
	assert.Equal(t, "content", got.Content)

	_, err = s.reports.Update(ctx, &dto.ReportView{
		ID:         created.ID,
		ReportDate: got.ReportDate,
		Title:      " edited ",
		Content:    " body ",
	}, owner.ID)
	require.NoError(t, err)

	got, err = s.reports.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Title)
	assert.Equal(t, "body", got.Content)
}

func TestReportService_CreateValidation(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	owner := s.employee(t, "E1")

	_, err := s.reports.Create(ctx, &dto.ReportView{Employee: owner, Title: "  ", Content: ""})
	assert.ElementsMatch(t, []string{"report_date", "title", "content"}, fieldNames(t, err))

	_, err = s.reports.Create(ctx, &dto.ReportView{ReportDate: time.Now(), Title: "T", Content: "C"})
	assert.Equal(t, []string{"employee"}, fieldNames(t, err))

	count, err := s.reports.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReportService_UpdateOwnerOnly(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a := s.employee(t, "A")
	b := s.employee(t, "B")
	r := s.report(t, a, "original")

	_, err := s.reports.FindOwned(ctx, r.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotReportOwner)

	_, err = s.reports.Update(ctx, &dto.ReportView{
		ID:         r.ID,
		ReportDate: time.Now(),
		Title:      "hijacked",
		Content:    "hijacked",
	}, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotReportOwner)

	got, err := s.reports.FindOne(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestReportService_UpdateKeepsCounter(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a := s.employee(t, "A")
	liker := s.employee(t, "L")
	r := s.report(t, a, "original")

	_, err := s.goods.Like(ctx, r.ID, liker.ID)
	require.NoError(t, err)

	updated, err := s.reports.Update(ctx, &dto.ReportView{
		ID:         r.ID,
		ReportDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		Title:      "changed",
		Content:    "changed content",
		ReportGood: 0,
	}, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReportGood)

	got, err := s.reports.FindOne(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, "2024-04-02", got.ReportDate.Format("2006-01-02"))
	assert.Equal(t, 1, got.ReportGood)
	assert.Equal(t, a.ID, got.Employee.ID)

	_, err = s.reports.Update(ctx, &dto.ReportView{ID: r.ID, ReportDate: time.Now()}, a.ID)
	assert.ElementsMatch(t, []string{"title", "content"}, fieldNames(t, err))

	_, err = s.reports.Update(ctx, &dto.ReportView{ID: 9999, Title: "x", Content: "x", ReportDate: time.Now()}, a.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestReportService_Mine(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	a := s.employee(t, "A")
	b := s.employee(t, "B")
	s.report(t, a, "a1")
	s.report(t, b, "b1")
	s.report(t, a, "a2")

	mine, err := s.reports.GetMinePerPage(ctx, a.ID, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a2", mine[0].Title)
	assert.Equal(t, "a1", mine[1].Title)

	count, err := s.reports.CountAllMine(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGoodService_Like(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	owner := s.employee(t, "O")
	liker := s.employee(t, "L")
	r := s.report(t, owner, "liked")

	liked, err := s.goods.Like(ctx, r.ID, liker.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ReportGood+1, liked.ReportGood)

	got, err := s.reports.FindOne(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ReportGood)

	likers, err := s.goods.GetMinePerPage(ctx, r.ID, 1)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, liker.ID, likers[0].Employee.ID)
	assert.Equal(t, liker.Code, likers[0].Employee.Code)

	count, err := s.goods.CountAllMine(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mine, err := s.goods.CountRepAndEmp(ctx, r.ID, liker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine)
}

func TestGoodService_LikeIsMultiplicative(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	owner := s.employee(t, "O")
	liker := s.employee(t, "L")
	r := s.report(t, owner, "liked")

	for i := 0; i < 2; i++ {
		_, err := s.goods.Like(ctx, r.ID, liker.ID)
		require.NoError(t, err)
	}

	got, err := s.reports.FindOne(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ReportGood)

	count, err := s.goods.CountRepAndEmp(ctx, r.ID, liker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGoodService_LikeMissingReport(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	liker := s.employee(t, "L")

	_, err := s.goods.Like(ctx, 9999, liker.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	count, err := s.goods.CountAllMine(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFollowService_Timeline(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	me := s.employee(t, "ME")
	first := s.employee(t, "F1")
	second := s.employee(t, "F2")
	stranger := s.employee(t, "S")

	var firstReports []*dto.ReportView
	for i := 0; i < 3; i++ {
		firstReports = append(firstReports, s.report(t, first, fmt.Sprintf("f1-%d", i)))
	}
	s.report(t, second, "f2-0")
	s.report(t, stranger, "s-0")

	_, err := s.follows.FollowReportAuthor(ctx, me.ID, firstReports[0].ID)
	require.NoError(t, err)
	require.NoError(t, s.follows.Create(ctx, &dto.FollowView{Follower: me, Followed: second}))

	tl, err := s.follows.Timeline(ctx, me.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), tl.Count)
	require.Len(t, tl.Reports, 4)
	for i := 1; i < len(tl.Reports); i++ {
		assert.Greater(t, tl.Reports[i-1].ID, tl.Reports[i].ID)
	}

	require.Len(t, tl.Groups, 2, "every followed employee gets a group")
	byEmployee := map[int64]dto.TimelineGroup{}
	for _, g := range tl.Groups {
		byEmployee[g.Employee.ID] = g
	}

	g1 := byEmployee[first.ID]
	assert.Equal(t, int64(3), g1.Count)
	require.Len(t, g1.Reports, 3)
	assert.Equal(t, firstReports[2].ID, g1.Reports[0].ID)
	assert.Equal(t, firstReports[0].ID, g1.Reports[2].ID)

	g2 := byEmployee[second.ID]
	assert.Equal(t, int64(1), g2.Count)
	assert.Len(t, g2.Reports, 1)
	assert.NotContains(t, byEmployee, stranger.ID)
}

func TestFollowService_DuplicateFollow(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	me := s.employee(t, "ME")
	author := s.employee(t, "A")
	r := s.report(t, author, "a-0")

	for i := 0; i < 2; i++ {
		_, err := s.follows.FollowReportAuthor(ctx, me.ID, r.ID)
		require.NoError(t, err)
	}

	pair, err := s.follows.CountByPair(ctx, me.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pair)

	followed, err := s.follows.GetFollowed(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, author.Code, followed[0].Followed.Code)

	tl, err := s.follows.Timeline(ctx, me.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tl.Count)
	assert.Len(t, tl.Groups, 1)
}

func TestFollowService_FollowSelf(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	me := s.employee(t, "ME")
	r := s.report(t, me, "mine")

	_, err := s.follows.FollowReportAuthor(ctx, me.ID, r.ID)
	assert.ErrorIs(t, err, domain.ErrFollowSelf)

	_, err = s.follows.FollowReportAuthor(ctx, me.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	pair, err := s.follows.CountByPair(ctx, me.ID, me.ID)
	require.NoError(t, err)
	assert.Zero(t, pair)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	s.employee(t, "E1")

	_, err := s.employees.Create(ctx, &dto.EmployeeView{})
	assert.ElementsMatch(t, []string{"code", "name", "password"}, fieldNames(t, err))

	_, err = s.employees.Create(ctx, &dto.EmployeeView{Code: "E1", Name: "dup", Password: "p"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, domain.ErrMsgCodeExists, verr.Fields[0].Message)

	count, err := s.employees.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEmployeeService_PasswordByteLimit(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	// 60 символов, 120 байт
	long := strings.Repeat("пароль", 10)
	_, err := s.employees.Create(ctx, &dto.EmployeeView{Code: "E1", Name: "n", Password: long})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "password", verr.Fields[0].Field)
	assert.Equal(t, domain.ErrMsgTooLong, verr.Fields[0].Message)

	emp := s.employee(t, "E2")
	_, err = s.employees.Update(ctx, &dto.EmployeeView{ID: emp.ID, Code: "E2", Name: "n", Password: long})
	assert.Equal(t, []string{"password"}, fieldNames(t, err))

	fits, err := s.employees.Create(ctx, &dto.EmployeeView{Code: "E3", Name: "n", Password: strings.Repeat("п", 36)})
	require.NoError(t, err)
	assert.NotZero(t, fits.ID)
}

func TestEmployeeService_Authenticate(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	emp := s.employee(t, "E1")
	assert.NotEqual(t, "password", emp.Password)

	got, err := s.employees.Authenticate(ctx, "E1", "password")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	_, err = s.employees.Authenticate(ctx, "E1", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.employees.Authenticate(ctx, "nobody", "password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, s.employees.Destroy(ctx, emp.ID))
	_, err = s.employees.Authenticate(ctx, "E1", "password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	n, err := s.employees.CountByCode(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEmployeeService_Update(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	emp := s.employee(t, "E1")
	s.employee(t, "E2")

	updated, err := s.employees.Update(ctx, &dto.EmployeeView{ID: emp.ID, Code: "E1", Name: "renamed", AdminFlag: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.True(t, updated.IsAdmin())
	assert.Equal(t, emp.Password, updated.Password, "empty password keeps the old hash")

	_, err = s.employees.Update(ctx, &dto.EmployeeView{ID: emp.ID, Code: "E2", Name: "renamed"})
	assert.Equal(t, []string{"code"}, fieldNames(t, err))

	_, err = s.employees.Update(ctx, &dto.EmployeeView{ID: emp.ID, Code: "E3", Name: "renamed", Password: "new-password"})
	require.NoError(t, err)

	_, err = s.employees.Authenticate(ctx, "E3", "new-password")
	require.NoError(t, err)

	ok, err := auth.CheckPassword(updated.Password, "password")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.employees.Update(ctx, &dto.EmployeeView{ID: 9999, Code: "X", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_ListAndDestroy(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	first := s.employee(t, "E1")
	second := s.employee(t, "E2")

	list, err := s.employees.GetPerPage(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, s.employees.Destroy(ctx, first.ID))
	got, err := s.employees.FindOne(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmpDelTrue, got.DeleteFlag)

	assert.ErrorIs(t, s.employees.Destroy(ctx, 9999), domain.ErrEmployeeNotFound)
}
