package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/csrf"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/service"
)

// EmployeeHandler - управление сотрудниками, доступно администраторам
type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, tokens csrf.Store, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base:       base{tokens: tokens, logger: logger},
		empService: empService,
	}
}

func formToEmployeeView(form *dto.EmployeeForm) *dto.EmployeeView {
	return &dto.EmployeeView{
		Code:      form.Code,
		Name:      form.Name,
		Password:  form.Password,
		AdminFlag: form.AdminFlag,
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	page := pageParam(c)
	employees, err := h.empService.GetPerPage(c.Request.Context(), page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	count, err := h.empService.CountAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeListResponse{Employees: employees, Page: dto.NewPage(page, count)})
}

func (h *EmployeeHandler) Show(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	emp, err := h.empService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) New(c *gin.Context) {
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeFormResponse{Token: token, Employee: &dto.EmployeeView{}})
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var form dto.EmployeeForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	ev := formToEmployeeView(&form)
	if _, err := h.empService.Create(c.Request.Context(), ev); err != nil {
		h.renderFormError(c, ev, err)
		return
	}
	h.redirect(c, "/employees", domain.MsgRegistered)
}

func (h *EmployeeHandler) Edit(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	emp, err := h.empService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeFormResponse{Token: token, Employee: emp})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}
	var form dto.EmployeeForm
	if !h.bindJSON(c, &form) {
		return
	}
	if !h.consumeToken(c, form.Token) {
		return
	}

	ev := formToEmployeeView(&form)
	ev.ID = id
	if _, err := h.empService.Update(c.Request.Context(), ev); err != nil {
		h.renderFormError(c, ev, err)
		return
	}
	h.redirect(c, "/employees", domain.MsgUpdated)
}

func (h *EmployeeHandler) Destroy(c *gin.Context) {
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

	if err := h.empService.Destroy(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, "/employees", domain.MsgDeleted)
}

func (h *EmployeeHandler) renderFormError(c *gin.Context, ev *dto.EmployeeView, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		h.handleServiceError(c, err)
		return
	}
	token, ok := h.issueToken(c)
	if !ok {
		return
	}
	ev.Password = ""
	c.JSON(http.StatusUnprocessableEntity, dto.EmployeeFormResponse{Token: token, Employee: ev, Errors: verr.Fields})
}
