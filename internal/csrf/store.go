// Package csrf хранит одноразовые токены форм.
// Токен выдаётся при показе формы и погашается при её отправке.
package csrf

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/daily-report-api/internal/domain"
)

// Store выдаёт и погашает токены, привязанные к сотруднику
type Store interface {
	Issue(ctx context.Context, employeeID int64) (string, error)
	// Consume возвращает domain.ErrInvalidToken, если токен неизвестен,
	// истёк, выдан другому сотруднику или уже использован
	Consume(ctx context.Context, employeeID int64, token string) error
}

func tokenKey(employeeID int64, token string) string {
	return fmt.Sprintf("csrf:%d:%s", employeeID, token)
}

// RedisStore хранит токены в Redis с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создаёт хранилище токенов поверх клиента Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, employeeID int64) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, tokenKey(employeeID, token), 1, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store csrf token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Consume(ctx context.Context, employeeID int64, token string) error {
	if token == "" {
		return domain.ErrInvalidToken
	}
	err := s.client.GetDel(ctx, tokenKey(employeeID, token)).Err()
	if errors.Is(err, redis.Nil) {
		return domain.ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("consume csrf token: %w", err)
	}
	return nil
}

// MemoryStore - хранилище в памяти процесса для локального запуска без Redis
type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]time.Time
}

// NewMemoryStore создаёт хранилище токенов в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Issue(_ context.Context, employeeID int64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.tokens {
		if now.After(exp) {
			delete(s.tokens, k)
		}
	}
	s.tokens[tokenKey(employeeID, token)] = now.Add(s.ttl)
	return token, nil
}

func (s *MemoryStore) Consume(_ context.Context, employeeID int64, token string) error {
	if token == "" {
		return domain.ErrInvalidToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := tokenKey(employeeID, token)
	exp, ok := s.tokens[key]
	if !ok {
		return domain.ErrInvalidToken
	}
	delete(s.tokens, key)
	if s.now().After(exp) {
		return domain.ErrInvalidToken
	}
	return nil
}
