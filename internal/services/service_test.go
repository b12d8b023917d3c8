package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"matchly_backend/internal/cache"
	"matchly_backend/internal/imageprocessor"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Init("test")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Match{}))
	return db
}

// makePNG возвращает однотонный PNG заданного размера
func makePNG(t *testing.T, width, height int, fill color.Color) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func newTestWatermarker(t *testing.T) *imageprocessor.Watermarker {
	t.Helper()

	wm, err := imageprocessor.NewWatermarker(makePNG(t, 64, 64, color.RGBA{R: 255, A: 255}))
	require.NoError(t, err)
	return wm
}

// fakeStorage держит файлы в памяти
type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "/media/" + path, nil
}

func (s *fakeStorage) paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for p := range s.files {
		out = append(out, p)
	}
	return out
}

type notifiedPair struct {
	ToEmail   string
	MatchName string
}

// fakeDispatcher записывает отправленные уведомления
type fakeDispatcher struct {
	mu     sync.Mutex
	events []notifiedPair
	err    error
}

func (d *fakeDispatcher) NotifyMatch(_ context.Context, toEmail, matchName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, notifiedPair{ToEmail: toEmail, MatchName: matchName})
	return nil
}

func (d *fakeDispatcher) sent() []notifiedPair {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notifiedPair(nil), d.events...)
}

// fakeLikesCounter повторяет семантику redis-счетчика: инкремент
// холодного счетчика - noop, чтение холодного - промах.
type fakeLikesCounter struct {
	mu     sync.Mutex
	counts map[uint64]int64
}

func newFakeLikesCounter() *fakeLikesCounter {
	return &fakeLikesCounter{counts: map[uint64]int64{}}
}

func (c *fakeLikesCounter) IncrLikesReceived(_ context.Context, userID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.counts[userID]; ok {
		c.counts[userID]++
	}
	return nil
}

func (c *fakeLikesCounter) GetLikesReceived(_ context.Context, userID uint64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[userID]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return count, nil
}

func (c *fakeLikesCounter) SetLikesReceived(_ context.Context, userID uint64, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[userID] = count
	return nil
}

func ptr(v float64) *float64 { return &v }

func seedUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.PasswordHash == "" {
		user.PasswordHash = "x"
	}
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatarPath
	}
	user.IsActive = true
	require.NoError(t, db.Create(user).Error)
	return user
}
