package services

import (
	"context"
	"errors"
	"fmt"

	"matchly_backend/internal/cache"
	"matchly_backend/internal/dto"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/models"
	"matchly_backend/internal/notifications"
	"matchly_backend/internal/repositories"
	"matchly_backend/pkg/apperrors"
)

// LikesCounter - горячий счетчик полученных лайков (redis).
// Может отсутствовать: БД остается источником истины.
type LikesCounter interface {
	IncrLikesReceived(ctx context.Context, userID uint64) error
	GetLikesReceived(ctx context.Context, userID uint64) (int64, error)
	SetLikesReceived(ctx context.Context, userID uint64, count int64) error
}

type MatchService struct {
	matchRepo  repositories.MatchRepository
	userRepo   repositories.UserRepository
	dispatcher notifications.Dispatcher
	likes      LikesCounter
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	dispatcher notifications.Dispatcher,
	likes LikesCounter,
) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		likes:      likes,
	}
}

// Create записывает направленный лайк from -> to и проверяет взаимность.
//
// Взаимность вычисляется по наличию обратного ребра в момент создания;
// колонка matched всегда сохраняется как false. Транзакция не охватывает
// create + проверку обратного ребра: два почти одновременных встречных
// лайка могут не увидеть друг друга (известное окно, см. тесты), но
// уникальный индекс пары исключает дубли на уровне БД.
func (s *MatchService) Create(ctx context.Context, fromUser *models.User, toUserID uint64) (*dto.CreateMatchResult, error) {
	if fromUser.ID == toUserID {
		return nil, apperrors.ValidationError(map[string]string{"detail": "You cannot like yourself"})
	}

	toUser, err := s.userRepo.FindByID(ctx, toUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ValidationError(map[string]string{"to_user": "User does not exist"})
		}
		return nil, apperrors.InternalError(err)
	}

	match := &models.Match{
		FromUserID: fromUser.ID,
		ToUserID:   toUser.ID,
		Matched:    false,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchAlreadyExists) {
			return nil, apperrors.ValidationError(map[string]string{"detail": "You have already liked this user"})
		}
		return nil, apperrors.InternalError(err)
	}

	// Счетчик полученных лайков - best effort
	if s.likes != nil {
		if err := s.likes.IncrLikesReceived(ctx, toUser.ID); err != nil {
			logger.CtxWarn(ctx, "failed to bump likes counter", "error", err, "user_id", toUser.ID)
		}
	}

	result := &dto.CreateMatchResult{
		Edge: dto.MatchResponse{FromUser: fromUser.ID, ToUser: toUser.ID},
	}

	reverse, err := s.matchRepo.Exists(ctx, toUser.ID, fromUser.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !reverse {
		logger.CtxInfo(ctx, "like recorded", "from", fromUser.ID, "to", toUser.ID)
		return result, nil
	}

	// Пара образовалась: уведомляем обе стороны. Fire-and-forget -
	// исход доставки не влияет на ответ.
	s.notify(ctx, toUser.Email, fromUser.FirstName)
	s.notify(ctx, fromUser.Email, toUser.FirstName)

	logger.CtxInfo(ctx, "mutual match", "from", fromUser.ID, "to", toUser.ID)

	result.Mutual = true
	result.Partner = toUser.Email
	return result, nil
}

func (s *MatchService) notify(ctx context.Context, toEmail, matchName string) {
	if err := s.dispatcher.NotifyMatch(ctx, toEmail, matchName); err != nil {
		logger.CtxWarn(ctx, "failed to enqueue match notification", "error", err, "to", toEmail)
	}
}

// MutualMessage - текст отличимого ответа при образовании пары
func MutualMessage(partnerEmail string) string {
	return fmt.Sprintf("You have a match! Participant email: %s", partnerEmail)
}

// LikesReceived возвращает число полученных лайков: из кеша, с подкачкой
// из БД при промахе.
func (s *MatchService) LikesReceived(ctx context.Context, userID uint64) (int64, error) {
	if s.likes != nil {
		count, err := s.likes.GetLikesReceived(ctx, userID)
		if err == nil {
			return count, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.CtxWarn(ctx, "likes counter unavailable, falling back to db", "error", err)
		}
	}

	count, err := s.matchRepo.CountReceived(ctx, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	if s.likes != nil {
		if err := s.likes.SetLikesReceived(ctx, userID, count); err != nil {
			logger.CtxWarn(ctx, "failed to seed likes counter", "error", err, "user_id", userID)
		}
	}

	return count, nil
}
