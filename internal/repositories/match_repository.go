package repositories

import (
	"context"
	"errors"

	"matchly_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMatchAlreadyExists = errors.New("match already exists")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error

	// Exists проверяет наличие направленного ребра from -> to.
	// Используется и для отсечения дублей, и для детекции взаимности
	// (обратным порядком аргументов).
	Exists(ctx context.Context, fromUserID, toUserID uint64) (bool, error)

	// CountReceived считает входящие лайки пользователя (истина в БД,
	// redis-счетчик поверх нее).
	CountReceived(ctx context.Context, userID uint64) (int64, error)
}

type MatchRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &MatchRepositoryImpl{db: db}
}

func (r *MatchRepositoryImpl) Create(ctx context.Context, match *models.Match) error {
	exists, err := r.Exists(ctx, match.FromUserID, match.ToUserID)
	if err != nil {
		return err
	}
	if exists {
		return ErrMatchAlreadyExists
	}

	return r.db.WithContext(ctx).Create(match).Error
}

func (r *MatchRepositoryImpl) Exists(ctx context.Context, fromUserID, toUserID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *MatchRepositoryImpl) CountReceived(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("to_user_id = ?", userID).
		Count(&count).Error
	return count, err
}
