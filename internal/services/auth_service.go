package services

import (
	"context"
	"errors"
	"net/http"

	"matchly_backend/internal/auth"
	"matchly_backend/internal/dto"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/repositories"
	"matchly_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	tokenTTL int // минуты
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, tokenTTLMinutes int) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTLMinutes,
	}
}

// Login проверяет учетные данные и выдает access-токен.
// Неверный email и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	invalidCredentials := apperrors.New(
		apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "failed login attempt", "email", req.Email)
		return nil, invalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokenTTL * 60,
	}, nil
}
