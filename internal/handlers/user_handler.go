package handlers

import (
	"io"
	"net/http"

	"matchly_backend/internal/dto"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/middleware"
	"matchly_backend/internal/services"
	"matchly_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя. Аватар (опционально) загружается в той же multipart-форме и получает водяной знак; без файла подставляется дефолтный аватар.
// @Tags clients
// @Accept multipart/form-data
// @Produce json
// @Param email formData string true "Email"
// @Param first_name formData string true "Имя"
// @Param last_name formData string true "Фамилия"
// @Param gender formData string true "Пол: M или W"
// @Param password formData string true "Пароль (минимум 8 символов)"
// @Param password2 formData string true "Повтор пароля"
// @Param avatar formData file false "Аватар (изображение)"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apperrors.AppError "Ошибка валидации или битое изображение"
// @Router /clients/create [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	avatar, cleanup, ok := h.openAvatar(c)
	if !ok {
		return
	}
	defer cleanup()

	resp, err := h.userService.Register(c.Request.Context(), &req, avatar)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// openAvatar достает файл аватара из multipart-формы.
// Отсутствие файла не является ошибкой: возвращается nil-reader.
func (h *UserHandler) openAvatar(c *gin.Context) (io.Reader, func(), bool) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, func() {}, true
		}
		logger.CtxWithError(c.Request.Context(), "Failed to read avatar form file", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid avatar upload"))
		return nil, nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to open avatar form file", err)
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, nil, false
	}

	return file, func() { _ = file.Close() }, true
}

// List godoc
// @Summary Листинг пользователей
// @Description Возвращает активных пользователей с известным местоположением. Фильтры равенства не требуют аутентификации. Переданные координаты обновляют точку аутентифицированного запрашивающего (check-in), после чего применяется фильтр по радиусу в километрах; в этом случае каждый элемент аннотируется дистанцией.
// @Tags clients
// @Produce json
// @Param gender query string false "Пол: M или W"
// @Param first_name query string false "Имя (точное совпадение)"
// @Param last_name query string false "Фамилия (точное совпадение)"
// @Param latitude query number false "Широта check-in"
// @Param longitude query number false "Долгота check-in"
// @Param radius query number false "Радиус в километрах"
// @Success 200 {array} dto.UserListItem
// @Failure 400 {object} apperrors.AppError "Некорректные параметры"
// @Security BearerAuth
// @Router /list [get]
func (h *UserHandler) List(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	// nil для анонимного запроса: радиус и check-in тогда не применяются
	requester := middleware.CurrentUser(c)

	items, err := h.userService.List(c.Request.Context(), &query, requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags clients
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.AppError
// @Security BearerAuth
// @Router /clients/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
