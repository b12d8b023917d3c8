package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"matchly_backend/internal/auth"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/models"
	"matchly_backend/internal/repositories"
	"matchly_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT. Загружает пользователя из БД
// и кладет его в контекст запроса.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			return
		}

		if !attachUser(c, userRepo, claims) {
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware пропускает запросы без заголовка Authorization
// как анонимные; предъявленный токен при этом обязан быть валидным.
func OptionalAuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := parseBearer(c, tokens)
		if !ok {
			return
		}

		if !attachUser(c, userRepo, claims) {
			return
		}

		c.Next()
	}
}

func parseBearer(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
		return nil, false
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := tokens.ParseToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return nil, false
	}

	return claims, true
}

func attachUser(c *gin.Context, userRepo repositories.UserRepository, claims *auth.Claims) bool {
	user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		// Токен валиден, но пользователя больше нет
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return false
	}

	if !user.IsActive {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		return false
	}

	ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(user.ID, 10))
	c.Request = c.Request.WithContext(ctx)

	c.Set(contextkeys.ClaimsKey, claims)
	c.Set(contextkeys.CurrentUserKey, user)
	return true
}

// CurrentUser достает аутентифицированного пользователя из контекста.
// Возвращает nil для анонимного запроса.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
