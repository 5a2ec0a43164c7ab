package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/csrf"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/middleware"
	"github.com/daily-report-api/internal/service"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	base
	reportService service.ReportService
	goodService   service.GoodService
	followService service.FollowService
	now           func() time.Time
}

func NewReportHandler(
	reportService service.ReportService,
	goodService service.GoodService,
	followService service.FollowService,
	tokens csrf.Store,
	logger *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		base:          base{tokens: tokens, logger: logger},
		reportService: reportService,
		goodService:   goodService,
		followService: followService,
		now:           time.Now,
	}
}

func (h *ReportHandler) today() time.Time {
	y, m, d := h.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// formToView переносит поля формы в представление.
// Неразборчивая дата остаётся нулевой и отклоняется проверкой в сервисе.
func (h *ReportHandler) formToView(form *dto.ReportForm, defaultToday bool) *dto.ReportView {
	rv := &dto.ReportView{
		Title:   form.Title,
		Content: form.Content,
	}
	date := strings.TrimSpace(form.ReportDate)
	switch {
	case date == "" && defaultToday:
		rv.ReportDate = h.today()
	case date != "":
		if parsed, err := time.Parse(dateLayout, date); err == nil {
			rv.ReportDate = parsed
		}
	}
	return rv
}

func (h *ReportHandler) List(c *gin.Context) {
	page := pageParam(c)
	reports, err := h.reportService.GetAllPerPage(c.Request.Context(), page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	count, err := h.reportService.CountAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReportListResponse{Reports: reports, Page: dto.NewPage(page, count)})
}

func (h *ReportHandler) Mine(c *gin.Context) {
	page := pageParam(c)
	login := middleware.LoginEmployee(c)
	reports, err := h.reportService.GetMinePerPage(c.Request.Context(), login.ID, page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	count, err := h.reportService.CountAllMine(c.Request.Context(), login.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReportListResponse{Reports: reports, Page: dto.NewPage(page, count)})
}

func (h *ReportHandler) New(c *gin.Context) {
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ReportFormResponse{
		Token: token,
		Report: &dto.ReportView{
			Employee:   middleware.LoginEmployee(c),
			ReportDate: h.today(),
		},
	})
}

func (h *ReportHandler) Create(c *gin.Context) {
	var form dto.ReportForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	rv := h.formToView(&form, true)
	rv.Employee = middleware.LoginEmployee(c)

	if _, err := h.reportService.Create(c.Request.Context(), rv); err != nil {
		h.renderFormError(c, rv, err)
		return
	}
	h.redirect(c, "/reports", domain.MsgRegistered)
}

func (h *ReportHandler) Show(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	login := middleware.LoginEmployee(c)

	report, err := h.reportService.FindOne(ctx, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	goods, err := h.goodService.CountRepAndEmp(ctx, id, login.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	var following bool
	if report.Employee != nil {
		n, err := h.followService.CountByPair(ctx, login.ID, report.Employee.ID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		following = n > 0
	}

	c.JSON(http.StatusOK, dto.ReportDetailResponse{Report: report, GoodCount: goods, Following: following})
}

func (h *ReportHandler) Edit(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	report, err := h.reportService.FindOwned(c.Request.Context(), id, middleware.LoginEmployee(c).ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ReportFormResponse{Token: token, Report: report})
}

func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	var form dto.ReportForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	rv := h.formToView(&form, false)
	rv.ID = id
	login := middleware.LoginEmployee(c)

	if _, err := h.reportService.Update(c.Request.Context(), rv, login.ID); err != nil {
		rv.Employee = login
		h.renderFormError(c, rv, err)
		return
	}
	h.redirect(c, "/reports", domain.MsgUpdated)
}

// renderFormError возвращает форму с ошибками, введёнными значениями и новым токеном
func (h *ReportHandler) renderFormError(c *gin.Context, rv *dto.ReportView, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		h.handleServiceError(c, err)
		return
	}
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusUnprocessableEntity, dto.ReportFormResponse{Token: token, Report: rv, Errors: verr.Fields})
}

func (h *ReportHandler) Good(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	var form dto.TokenForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	if _, err := h.goodService.Like(c.Request.Context(), id, middleware.LoginEmployee(c).ID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, "/reports", domain.MsgGood)
}

func (h *ReportHandler) Goods(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	page := pageParam(c)
	ctx := c.Request.Context()

	report, err := h.reportService.FindOne(ctx, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	goods, err := h.goodService.GetMinePerPage(ctx, id, page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	count, err := h.goodService.CountAllMine(ctx, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GoodListResponse{Report: report, Goods: goods, Page: dto.NewPage(page, count)})
}

func (h *ReportHandler) Follow(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	var form dto.TokenForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	if _, err := h.followService.FollowReportAuthor(c.Request.Context(), middleware.LoginEmployee(c).ID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, "/reports/"+strconv.FormatInt(id, 10), domain.MsgFollow)
}

func (h *ReportHandler) Timeline(c *gin.Context) {
	page := pageParam(c)
	ctx := c.Request.Context()
	login := middleware.LoginEmployee(c)

	follows, err := h.followService.GetFollowed(ctx, login.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	timeline, err := h.followService.Timeline(ctx, login.ID, page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TimelineResponse{
		Employee: login,
		Follows:  follows,
		Timeline: timeline,
		Page:     dto.NewPage(page, timeline.Count),
	})
}

func (h *ReportHandler) Follows(c *gin.Context) {
	follows, err := h.followService.GetFollowed(c.Request.Context(), middleware.LoginEmployee(c).ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FollowListResponse{Follows: follows})
}
