package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/service"
)

type AuthHandler struct {
	base
	empService service.EmployeeService
	jwt        *auth.Service
}

func NewAuthHandler(empService service.EmployeeService, jwt *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		base:       base{logger: logger},
		empService: empService,
		jwt:        jwt,
	}
}

// Login выдаёт токен по коду сотрудника и паролю
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	emp, err := h.empService.Authenticate(c.Request.Context(), req.Code, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.jwt.GenerateToken(emp.ID, emp.IsAdmin())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.logger.Info("employee logged in", zap.Int64("employee_id", emp.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Employee: emp, Message: domain.MsgLoggedIn})
}
