package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

const loginEmployeeKey = "login_employee"

type loginEmployeeCtxKey struct{}

// EmployeeFinder загружает сотрудника по идентификатору из токена
type EmployeeFinder interface {
	FindOne(ctx context.Context, id int64) (*dto.EmployeeView, error)
}

// AuthRequired проверяет Bearer-токен и кладёт вошедшего сотрудника в контекст запроса
func AuthRequired(tokens *auth.Service, employees EmployeeFinder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		emp, err := employees.FindOne(c.Request.Context(), claims.EmployeeID)
		if err != nil {
			if !errors.Is(err, domain.ErrEmployeeNotFound) {
				logger.Error("load login employee", zap.Error(err), zap.Int64("employee_id", claims.EmployeeID))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}
		if emp.DeleteFlag == domain.EmpDelTrue {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(loginEmployeeKey, emp)
		c.Request = c.Request.WithContext(WithLoginEmployee(c.Request.Context(), emp))
		c.Next()
	}
}

// AdminOnly пропускает только администраторов. Ставится после AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !LoginEmployee(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// LoginEmployee возвращает вошедшего сотрудника или nil
func LoginEmployee(c *gin.Context) *dto.EmployeeView {
	if v, ok := c.Get(loginEmployeeKey); ok {
		if emp, ok := v.(*dto.EmployeeView); ok {
			return emp
		}
	}
	return LoginEmployeeFrom(c.Request.Context())
}

// WithLoginEmployee кладёт сотрудника в context.Context
func WithLoginEmployee(ctx context.Context, emp *dto.EmployeeView) context.Context {
	return context.WithValue(ctx, loginEmployeeCtxKey{}, emp)
}

// LoginEmployeeFrom достаёт сотрудника из context.Context
func LoginEmployeeFrom(ctx context.Context) *dto.EmployeeView {
	emp, _ := ctx.Value(loginEmployeeCtxKey{}).(*dto.EmployeeView)
	return emp
}
