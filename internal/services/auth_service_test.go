package services

import (
	"context"
	"net/http"
	"testing"

	"matchly_backend/internal/auth"
	"matchly_backend/internal/dto"
	"matchly_backend/internal/models"
	"matchly_backend/internal/repositories"
	"matchly_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) (*AuthService, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", 60)
	return NewAuthService(repositories.NewUserRepository(db), tokens, 60), tokens
}

func seedAccount(t *testing.T, db *gorm.DB, email, password string, active bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email: email, FirstName: "Anna", LastName: "Petrova", Gender: "W",
		PasswordHash: hash,
	}
	seedUser(t, db, user)
	if !active {
		require.NoError(t, db.Model(user).Update("is_active", false).Error)
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc, tokens := newAuthService(t, db)
	user := seedAccount(t, db, "anna@example.com", "sup3r-secret", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "sup3r-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 60*60, resp.ExpiresIn)

	claims, err := tokens.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(t, db)
	seedAccount(t, db, "anna@example.com", "sup3r-secret", true)

	_, errWrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})
	_, errUnknownEmail := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "sup3r-secret",
	})

	for _, err := range []error{errWrongPassword, errUnknownEmail} {
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(t, db)
	seedAccount(t, db, "anna@example.com", "sup3r-secret", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "sup3r-secret",
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}
