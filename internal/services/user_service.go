package services

import (
	"context"
	"fmt"
	"io"

	"matchly_backend/internal/auth"
	"matchly_backend/internal/dto"
	"matchly_backend/internal/geo"
	"matchly_backend/internal/imageprocessor"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/models"
	"matchly_backend/internal/repositories"
	"matchly_backend/internal/storage"
	"matchly_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// registrationRule - одно упорядоченное правило валидации регистрации.
// Возвращает nil при успехе, иначе пару "поле" -> "сообщение".
type registrationRule func(ctx context.Context, s *UserService, req *dto.RegisterUserRequest) (field, message string)

// registrationRules выполняются по порядку; первая ошибка завершает проверку.
var registrationRules = []registrationRule{
	rulePasswordsMatch,
	rulePasswordStrength,
	ruleGenderKnown,
	ruleEmailAvailable,
}

func rulePasswordsMatch(_ context.Context, _ *UserService, req *dto.RegisterUserRequest) (string, string) {
	if req.Password != req.Password2 {
		return "password", "Passwords do not match"
	}
	return "", ""
}

func rulePasswordStrength(_ context.Context, _ *UserService, req *dto.RegisterUserRequest) (string, string) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return "password", err.Error()
	}
	return "", ""
}

func ruleGenderKnown(_ context.Context, _ *UserService, req *dto.RegisterUserRequest) (string, string) {
	if !models.ValidGender(models.Gender(req.Gender)) {
		return "gender", "Unknown gender value"
	}
	return "", ""
}

func ruleEmailAvailable(ctx context.Context, s *UserService, req *dto.RegisterUserRequest) (string, string) {
	taken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return "email", "Failed to check email availability"
	}
	if taken {
		return "email", "A user with this email already exists"
	}
	return "", ""
}

type UserService struct {
	userRepo      repositories.UserRepository
	store         storage.Storage
	watermarker   *imageprocessor.Watermarker
	defaultAvatar string
}

func NewUserService(
	userRepo repositories.UserRepository,
	store storage.Storage,
	watermarker *imageprocessor.Watermarker,
	defaultAvatar string,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		store:         store,
		watermarker:   watermarker,
		defaultAvatar: defaultAvatar,
	}
}

// Register выполняет упорядоченные правила валидации, обрабатывает аватар
// (водяной знак либо дефолтный путь) и сохраняет пользователя.
// avatar == nil означает, что файл не был загружен.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterUserRequest, avatar io.Reader) (*dto.UserResponse, error) {
	for _, rule := range registrationRules {
		if field, message := rule(ctx, s, req); field != "" {
			return nil, apperrors.ValidationError(map[string]string{field: message})
		}
	}

	avatarPath := s.defaultAvatar
	if avatar != nil {
		path, err := s.storeAvatar(ctx, avatar)
		if err != nil {
			return nil, err
		}
		avatarPath = path
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       models.Gender(req.Gender),
		Avatar:       avatarPath,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ValidationError(map[string]string{"email": "A user with this email already exists"})
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return dto.NewUserResponse(user), nil
}

// storeAvatar накладывает водяной знак и сохраняет результат в storage.
// Ошибка обработки изображения возвращается клиенту как 400, а не 500.
func (s *UserService) storeAvatar(ctx context.Context, avatar io.Reader) (string, error) {
	stamped, err := s.watermarker.Apply(avatar)
	if err != nil {
		return "", apperrors.ProcessingError(err, "Failed to process avatar image")
	}

	path := fmt.Sprintf("avatars/%s.png", uuid.NewString())
	if err := s.store.Save(ctx, path, stamped, "image/png"); err != nil {
		return "", apperrors.InternalError(err)
	}

	return path, nil
}

// GetByID возвращает представление пользователя
func (s *UserService) GetByID(ctx context.Context, id uint64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// CheckIn перезаписывает сохраненное местоположение запрашивающего.
// Выделен в отдельный шаг: листинг с координатами сначала обновляет
// свою точку и только потом фильтрует.
func (s *UserService) CheckIn(ctx context.Context, requester *models.User, longitude, latitude float64) error {
	if err := s.userRepo.UpdateLocation(ctx, requester.ID, longitude, latitude); err != nil {
		return apperrors.InternalError(err)
	}

	requester.Longitude = &longitude
	requester.Latitude = &latitude

	logger.CtxDebug(ctx, "user checked in", "user_id", requester.ID,
		"longitude", longitude, "latitude", latitude)
	return nil
}

// List возвращает листинг пользователей.
//
// requester == nil означает неаутентифицированный запрос: ни check-in,
// ни фильтрация по радиусу не выполняются. Для аутентифицированного
// запрашивающего порядок фиксирован: сначала check-in (если переданы обе
// координаты), затем фильтрация по радиусу относительно его точки.
func (s *UserService) List(ctx context.Context, query *dto.ListUsersQuery, requester *models.User) ([]dto.UserListItem, error) {
	if requester != nil && query.Latitude != nil && query.Longitude != nil {
		if err := s.CheckIn(ctx, requester, *query.Longitude, *query.Latitude); err != nil {
			return nil, err
		}
	}

	users, err := s.userRepo.ListWithLocation(ctx, repositories.UserFilter{
		Gender:    query.Gender,
		FirstName: query.FirstName,
		LastName:  query.LastName,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var reference *geo.Point
	applyRadius := false
	if requester != nil && query.Radius != nil && *query.Radius > 0 && requester.HasLocation() {
		reference = &geo.Point{Longitude: *requester.Longitude, Latitude: *requester.Latitude}
		applyRadius = true
	}

	items := make([]dto.UserListItem, 0, len(users))
	for i := range users {
		u := &users[i]

		item := dto.UserListItem{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Gender:    string(u.Gender),
			Avatar:    u.Avatar,
			Location:  &geo.Point{Longitude: *u.Longitude, Latitude: *u.Latitude},
		}

		if applyRadius {
			distance := geo.DistanceKm(*reference, *item.Location)
			if distance > *query.Radius {
				continue
			}
			item.Distance = &distance
		}

		items = append(items, item)
	}

	return items, nil
}
