// Package auth выдаёт токены входа и хеширует пароли сотрудников.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daily-report-api/internal/domain"
)

// Claims - данные о сотруднике внутри токена
type Claims struct {
	EmployeeID int64 `json:"employee_id"`
	Admin      bool  `json:"admin"`
	jwt.RegisteredClaims
}

// Service выпускает и проверяет токены входа
type Service struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewService создаёт сервис токенов
func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateToken выпускает токен для сотрудника
func (s *Service) GenerateToken(employeeID int64, admin bool) (string, error) {
	now := s.now()
	claims := Claims{
		EmployeeID: employeeID,
		Admin:      admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(employeeID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken разбирает токен; любая ошибка сводится к domain.ErrInvalidToken
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.EmployeeID == 0 {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
