package dto

import (
	"matchly_backend/internal/geo"
	"matchly_backend/internal/models"
)

// RegisterUserRequest - тело регистрации (multipart-форма, файл аватара
// извлекается отдельно в хендлере).
type RegisterUserRequest struct {
	Email     string `form:"email" json:"email" validate:"required,email"`
	FirstName string `form:"first_name" json:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,max=30"`
	Gender    string `form:"gender" json:"gender" validate:"required,is-gender"`
	Password  string `form:"password" json:"password" validate:"required,min=8"`
	Password2 string `form:"password2" json:"password2" validate:"required"`
}

// UserResponse - представление пользователя без полей пароля
type UserResponse struct {
	ID        uint64     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Gender    string     `json:"gender"`
	Avatar    string     `json:"avatar"`
	Location  *geo.Point `json:"location"`
	IsActive  bool       `json:"is_active"`
}

// NewUserResponse собирает представление из модели
func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    string(u.Gender),
		Avatar:    u.Avatar,
		IsActive:  u.IsActive,
	}
	if u.HasLocation() {
		resp.Location = &geo.Point{Longitude: *u.Longitude, Latitude: *u.Latitude}
	}
	return resp
}

// ListUsersQuery - параметры листинга: фильтры равенства плюс
// координаты check-in и радиус в километрах.
// Фильтры сравниваются без учета регистра, поэтому gender здесь не
// прогоняется через is-gender: "w" - валидный фильтр, а неизвестное
// значение просто ничего не находит. Нулевой радиус трактуется как
// отсутствие радиуса.
type ListUsersQuery struct {
	Gender    string   `form:"gender"`
	FirstName string   `form:"first_name"`
	LastName  string   `form:"last_name"`
	Latitude  *float64 `form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" validate:"omitempty,min=-180,max=180"`
	Radius    *float64 `form:"radius" validate:"omitempty,gte=0"`
}

// UserListItem - элемент листинга. Distance присутствует только когда
// запрошен радиус и у запрашивающего есть точка отсчета.
type UserListItem struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Gender    string     `json:"gender"`
	Avatar    string     `json:"avatar"`
	Location  *geo.Point `json:"location"`
	Distance  *float64   `json:"distance,omitempty"`
}
