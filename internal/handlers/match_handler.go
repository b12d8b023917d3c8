package handlers

import (
	"net/http"

	"matchly_backend/internal/dto"
	"matchly_backend/internal/services"
	"matchly_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	*BaseHandler
	matchService *services.MatchService
}

func NewMatchHandler(base *BaseHandler, matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  base,
		matchService: matchService,
	}
}

// Create godoc
// @Summary Лайк другого пользователя
// @Description Создает направленный лайк от пользователя из пути к to_user из тела. При встречном лайке обе стороны получают уведомление, а ответ сигнализирует о паре.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "ID действующего пользователя (должен совпадать с сессией)"
// @Param match body dto.CreateMatchRequest true "Цель лайка"
// @Success 201 {object} dto.MatchResponse "Обычный лайк"
// @Failure 400 {object} apperrors.AppError "Самолайк, дубль или несуществующая цель"
// @Failure 401 {object} apperrors.AppError
// @Failure 403 {object} apperrors.AppError "ID в пути не совпадает с сессией"
// @Security BearerAuth
// @Router /clients/{id}/match [post]
func (h *MatchHandler) Create(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	pathID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Лайкать можно только от собственного имени
	if pathID != user.ID {
		h.HandleServiceError(c, apperrors.NewForbiddenError("You can only act on your own behalf"))
		return
	}

	var req dto.CreateMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.matchService.Create(c.Request.Context(), user, req.ToUser)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.Mutual {
		c.JSON(http.StatusCreated, dto.MutualMatchResponse{
			Match: services.MutualMessage(result.Partner),
		})
		return
	}

	c.JSON(http.StatusCreated, result.Edge)
}

// LikesCount godoc
// @Summary Счетчик полученных лайков
// @Tags matches
// @Produce json
// @Success 200 {object} dto.LikesCountResponse
// @Failure 401 {object} apperrors.AppError
// @Security BearerAuth
// @Router /clients/me/likes/count [get]
func (h *MatchHandler) LikesCount(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	count, err := h.matchService.LikesReceived(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikesCountResponse{Count: count})
}
