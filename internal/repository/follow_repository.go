package repository

import (
	"context"

	"github.com/daily-report-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository определяет интерфейс для работы с подписками
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	ListFollowings(ctx context.Context, followerID int64) ([]domain.Follow, error)
	CountByPair(ctx context.Context, followerID, followedID int64) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository создаёт новый экземпляр репозитория
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create не проверяет повторы: каждая подписка - отдельное событие
func (r *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(follow).Error
}

// ListFollowings возвращает по одной (самой ранней) подписке на каждого автора
func (r *followRepository) ListFollowings(ctx context.Context, followerID int64) ([]domain.Follow, error) {
	first := conn(ctx, r.db).
		Model(&domain.Follow{}).
		Select("MIN(" + domain.FollowColID + ")").
		Where(domain.FollowColFollower+" = ?", followerID).
		Group(domain.FollowColFollowed)

	var follows []domain.Follow
	err := conn(ctx, r.db).
		Preload("Follower").
		Preload("Followed").
		Where(domain.FollowColID+" IN (?)", first).
		Order(clause.OrderByColumn{Column: clause.Column{Name: domain.FollowColID}, Desc: true}).
		Find(&follows).Error
	return follows, err
}

func (r *followRepository) CountByPair(ctx context.Context, followerID, followedID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Follow{}).
		Where(domain.FollowColFollower+" = ? AND "+domain.FollowColFollowed+" = ?", followerID, followedID).
		Count(&count).Error
	return count, err
}
