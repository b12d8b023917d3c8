package routes

import (
	"matchly_backend/internal/handlers"
	"matchly_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Middlewares - аутентификационные middleware, собранные в app
type Middlewares struct {
	Auth         gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	mw Middlewares,
	mediaDir string,
) {
	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", appHandlers.AuthHandler.Login)
		}

		// Листинг доступен и анонимно; координаты и радиус работают
		// только для аутентифицированного запрашивающего
		api.GET("/list", mw.OptionalAuth, appHandlers.UserHandler.List)

		clients := api.Group("/clients")
		{
			clients.POST("/create", appHandlers.UserHandler.Register)

			me := clients.Group("/me", mw.Auth)
			{
				me.GET("", appHandlers.UserHandler.Me)
				me.GET("/likes/count", appHandlers.MatchHandler.LikesCount)
			}

			clients.POST("/:id/match", mw.Auth, appHandlers.MatchHandler.Create)
		}
	}

	// Отдача медиафайлов (аватары, водяной знак)
	ginRouter.Static("/media", mediaDir)

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Info("Routes registered", "swagger", "/swagger/index.html")
}
