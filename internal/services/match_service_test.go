package services

import (
	"context"
	"errors"
	"testing"

	"matchly_backend/internal/models"
	"matchly_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMatchService(t *testing.T, db *gorm.DB) (*MatchService, *fakeDispatcher, *fakeLikesCounter) {
	t.Helper()

	dispatcher := &fakeDispatcher{}
	likes := newFakeLikesCounter()
	svc := NewMatchService(
		repositories.NewMatchRepository(db),
		repositories.NewUserRepository(db),
		dispatcher,
		likes,
	)
	return svc, dispatcher, likes
}

func seedPair(t *testing.T, db *gorm.DB) (*models.User, *models.User) {
	t.Helper()

	anna := seedUser(t, db, &models.User{
		Email: "anna@example.com", FirstName: "Anna", LastName: "Petrova", Gender: "W",
	})
	boris := seedUser(t, db, &models.User{
		Email: "boris@example.com", FirstName: "Boris", LastName: "Petrov", Gender: "M",
	})
	return anna, boris
}

func TestCreateMatch_OneWayLike(t *testing.T) {
	db := newTestDB(t)
	svc, dispatcher, _ := newMatchService(t, db)
	anna, boris := seedPair(t, db)

	result, err := svc.Create(context.Background(), anna, boris.ID)
	require.NoError(t, err)

	assert.False(t, result.Mutual)
	assert.Equal(t, anna.ID, result.Edge.FromUser)
	assert.Equal(t, boris.ID, result.Edge.ToUser)
	assert.Empty(t, dispatcher.sent())

	var stored models.Match
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, anna.ID, stored.FromUserID)
	assert.Equal(t, boris.ID, stored.ToUserID)
	assert.False(t, stored.Matched)
}

func TestCreateMatch_MutualNotifiesBothSides(t *testing.T) {
	db := newTestDB(t)
	svc, dispatcher, _ := newMatchService(t, db)
	anna, boris := seedPair(t, db)

	_, err := svc.Create(context.Background(), anna, boris.ID)
	require.NoError(t, err)

	result, err := svc.Create(context.Background(), boris, anna.ID)
	require.NoError(t, err)

	assert.True(t, result.Mutual)
	assert.Equal(t, anna.Email, result.Partner)

	sent := dispatcher.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, notifiedPair{ToEmail: anna.Email, MatchName: boris.FirstName}, sent[0])
	assert.Equal(t, notifiedPair{ToEmail: boris.Email, MatchName: anna.FirstName}, sent[1])

	// Оба ребра сохранены, колонка matched не взводится
	var matches []models.Match
	require.NoError(t, db.Find(&matches).Error)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.False(t, m.Matched)
	}
}

func TestCreateMatch_SelfLikeRejected(t *testing.T) {
	db := newTestDB(t)
	svc, dispatcher, _ := newMatchService(t, db)
	anna, _ := seedPair(t, db)

	_, err := svc.Create(context.Background(), anna, anna.ID)
	requireValidationDetail(t, err, "detail")
	assert.Empty(t, dispatcher.sent())

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMatch_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc, dispatcher, _ := newMatchService(t, db)
	anna, boris := seedPair(t, db)

	_, err := svc.Create(context.Background(), anna, boris.ID)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), anna, boris.ID)
	requireValidationDetail(t, err, "detail")
	assert.Empty(t, dispatcher.sent())

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateMatch_UnknownTargetRejected(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newMatchService(t, db)
	anna, _ := seedPair(t, db)

	_, err := svc.Create(context.Background(), anna, 99999)
	requireValidationDetail(t, err, "to_user")
}

func TestCreateMatch_DispatcherFailureDoesNotBreakResponse(t *testing.T) {
	db := newTestDB(t)
	svc, dispatcher, _ := newMatchService(t, db)
	anna, boris := seedPair(t, db)

	_, err := svc.Create(context.Background(), anna, boris.ID)
	require.NoError(t, err)

	dispatcher.err = errors.New("broker is down")

	result, err := svc.Create(context.Background(), boris, anna.ID)
	require.NoError(t, err)
	assert.True(t, result.Mutual)
}

func TestLikesReceived_SeedsCounterFromDB(t *testing.T) {
	db := newTestDB(t)
	svc, _, likes := newMatchService(t, db)
	anna, boris := seedPair(t, db)
	clara := seedUser(t, db, &models.User{
		Email: "clara@example.com", FirstName: "Clara", LastName: "Ivanova", Gender: "W",
	})

	_, err := svc.Create(context.Background(), boris, anna.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), clara, anna.ID)
	require.NoError(t, err)

	// Холодный счетчик: первое чтение идет в БД и прогревает кеш
	count, err := svc.LikesReceived(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	cached, err := likes.GetLikesReceived(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cached)
}

func TestLikesReceived_WarmCounterTracksIncrements(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newMatchService(t, db)
	anna, boris := seedPair(t, db)

	// Прогрев
	count, err := svc.LikesReceived(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.Create(context.Background(), boris, anna.ID)
	require.NoError(t, err)

	count, err = svc.LikesReceived(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikesReceived_NoCounterFallsBackToDB(t *testing.T) {
	db := newTestDB(t)
	anna, boris := seedPair(t, db)

	svc := NewMatchService(
		repositories.NewMatchRepository(db),
		repositories.NewUserRepository(db),
		&fakeDispatcher{},
		nil,
	)

	_, err := svc.Create(context.Background(), boris, anna.ID)
	require.NoError(t, err)

	count, err := svc.LikesReceived(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
