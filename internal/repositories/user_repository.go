package repositories

import (
	"context"
	"errors"

	"matchly_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter - фильтры равенства листинга (без учета регистра)
type UserFilter struct {
	Gender    string
	FirstName string
	LastName  string
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLocation(ctx context.Context, userID uint64, longitude, latitude float64) error

	// ListWithLocation возвращает активных пользователей с известным
	// местоположением, отфильтрованных по критериям равенства.
	ListWithLocation(ctx context.Context, filter UserFilter) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	// Check if user already exists
	var existing models.User
	err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateLocation перезаписывает сохраненное местоположение (check-in)
func (r *UserRepositoryImpl) UpdateLocation(ctx context.Context, userID uint64, longitude, latitude float64) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"longitude": longitude,
			"latitude":  latitude,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ListWithLocation(ctx context.Context, filter UserFilter) ([]models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("is_active = ?", true).
		Where("longitude IS NOT NULL AND latitude IS NOT NULL")

	// Фильтры равенства без учета регистра (LOWER вместо ILIKE,
	// чтобы вести себя одинаково на postgres и sqlite)
	if filter.Gender != "" {
		query = query.Where("LOWER(gender) = LOWER(?)", filter.Gender)
	}
	if filter.FirstName != "" {
		query = query.Where("LOWER(first_name) = LOWER(?)", filter.FirstName)
	}
	if filter.LastName != "" {
		query = query.Where("LOWER(last_name) = LOWER(?)", filter.LastName)
	}

	var users []models.User
	err := query.Order("id ASC").Find(&users).Error
	return users, err
}
