package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/csrf"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/middleware"
)

const unknownError = "unknown error"

// base - общие помощники обработчиков: ответы, ошибки, одноразовые токены
type base struct {
	tokens csrf.Store
	logger *zap.Logger
}

// pageParam читает ?page=; отсутствующая или некорректная страница считается первой
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *base) extractID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(c, http.StatusBadRequest, "invalid id", "")
		return 0, false
	}
	return id, true
}

// issueToken выдаёт новый токен формы вошедшему сотруднику
func (h *base) issueToken(c *gin.Context) (string, bool) {
	token, err := h.tokens.Issue(c.Request.Context(), middleware.LoginEmployee(c).ID)
	if err != nil {
		h.handleServiceError(c, err)
		return "", false
	}
	return token, true
}

// consumeToken погашает токен формы. При несовпадении запись пропускается:
// ответ 204 без изменений.
func (h *base) consumeToken(c *gin.Context, token string) bool {
	login := middleware.LoginEmployee(c)
	err := h.tokens.Consume(c.Request.Context(), login.ID, token)
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrInvalidToken) {
		h.logger.Warn("form token mismatch, write skipped",
			zap.Int64("employee_id", login.ID),
			zap.String("path", c.Request.URL.Path),
		)
		c.Status(http.StatusNoContent)
		return false
	}
	h.handleServiceError(c, err)
	return false
}

func (h *base) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// redirect отвечает 303 с адресом перехода и флеш-сообщением
func (h *base) redirect(c *gin.Context, target, message string) {
	c.Header("Location", target)
	c.JSON(http.StatusSeeOther, dto.RedirectResponse{Message: message, Redirect: target})
}

func (h *base) handleServiceError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
	// отсутствующая запись и чужой отчёт неразличимы для клиента
	case errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrNotReportOwner):
		h.respondError(c, http.StatusNotFound, unknownError, "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.respondError(c, http.StatusUnauthorized, "invalid employee code or password", "")
	case errors.Is(err, domain.ErrForbidden):
		h.respondError(c, http.StatusForbidden, "forbidden", "")
	case errors.Is(err, domain.ErrFollowSelf):
		h.respondError(c, http.StatusBadRequest, "cannot follow yourself", "")
	default:
		h.logger.Error("internal error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		h.respondError(c, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *base) respondError(c *gin.Context, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	c.JSON(status, resp)
}
