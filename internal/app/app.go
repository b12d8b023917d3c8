package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matchly_backend/internal/auth"
	"matchly_backend/internal/cache"
	"matchly_backend/internal/config"
	"matchly_backend/internal/email"
	"matchly_backend/internal/handlers"
	"matchly_backend/internal/imageprocessor"
	"matchly_backend/internal/logger"
	"matchly_backend/internal/middleware"
	"matchly_backend/internal/models"
	"matchly_backend/internal/notifications"
	"matchly_backend/internal/repositories"
	"matchly_backend/internal/routes"
	"matchly_backend/internal/services"
	"matchly_backend/internal/storage"
	"matchly_backend/internal/validator"
	"matchly_backend/pkg/mq"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.Match{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа сервер не запускаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", store.BasePath())

	watermarker := loadWatermarker(store, cfg)
	ensureDefaultAvatar(store, cfg)

	sender := initEmailSender(cfg)
	dispatcher := initDispatcher(cfg, sender)
	likes := initLikesCounter(cfg)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	// Репозитории и сервисы
	userRepo := repositories.NewUserRepository(gormDB)
	matchRepo := repositories.NewMatchRepository(gormDB)

	authService := services.NewAuthService(userRepo, tokens, cfg.JWT.TTL)
	userService := services.NewUserService(userRepo, store, watermarker, cfg.Media.DefaultAvatar)
	matchService := services.NewMatchService(matchRepo, userRepo, dispatcher, likes)

	// Хэндлеры
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:  handlers.NewAuthHandler(baseHandler, authService),
		UserHandler:  handlers.NewUserHandler(baseHandler, userService),
		MatchHandler: handlers.NewMatchHandler(baseHandler, matchService),
	}

	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers, routes.Middlewares{
		Auth:         middleware.AuthMiddleware(tokens, userRepo),
		OptionalAuth: middleware.OptionalAuthMiddleware(tokens, userRepo),
	}, store.BasePath())

	return ginRouter
}

// loadWatermarker читает изображение водяного знака из storage.
// Без него нельзя обрабатывать загружаемые аватары.
func loadWatermarker(store storage.Storage, cfg *config.Config) *imageprocessor.Watermarker {
	ctx := context.Background()

	reader, err := store.Get(ctx, cfg.Media.WatermarkPath)
	if err != nil {
		logger.Fatal("Watermark image is missing from storage, place it and restart",
			"path", cfg.Media.WatermarkPath, "error", err)
	}
	defer reader.Close()

	watermarker, err := imageprocessor.NewWatermarker(reader)
	if err != nil {
		logger.Fatal("Failed to decode watermark image", "path", cfg.Media.WatermarkPath, "error", err)
	}
	return watermarker
}

func ensureDefaultAvatar(store storage.Storage, cfg *config.Config) {
	exists, err := store.Exists(context.Background(), cfg.Media.DefaultAvatar)
	if err != nil || !exists {
		logger.Warn("Default avatar file is missing from storage, /media links will 404",
			"path", cfg.Media.DefaultAvatar)
	}
}

func initEmailSender(cfg *config.Config) email.Sender {
	sender, err := email.NewSMTPSender(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("--- SMTP не сконфигурирован. Используется MOCK-отправитель. ---", "error", err)
		return &MockEmailSender{}
	}
	return sender
}

// initDispatcher выбирает транспорт уведомлений: RabbitMQ с почтовым
// воркером либо прямая отправка без брокера.
func initDispatcher(cfg *config.Config, sender email.Sender) notifications.Dispatcher {
	if cfg.MQ.URL == "" {
		logger.Warn("RabbitMQ is not configured, sending match emails directly")
		return notifications.NewDirectDispatcher(sender)
	}

	mqClient, err := mq.Connect(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "error", err)
	}
	if err := mqClient.DeclareExchange(cfg.MQ.Exchange, mq.ExchangeTypeDirect); err != nil {
		logger.Fatal("Failed to declare exchange", "error", err)
	}
	if _, err := mqClient.DeclareQueue(cfg.MQ.Queue, cfg.MQ.Exchange, mq.RoutingKeyMatchCreated); err != nil {
		logger.Fatal("Failed to declare queue", "error", err)
	}

	worker := notifications.NewMailWorker(mqClient, sender, cfg.MQ.Queue)
	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start mail worker", "error", err)
	}
	logger.Info("RabbitMQ connected, mail worker started", "queue", cfg.MQ.Queue)

	return notifications.NewEmitter(mqClient, cfg.MQ.Exchange)
}

// initLikesCounter подключает redis-счетчик лайков.
// Отсутствие redis не фатально: счетчик читается из БД.
func initLikesCounter(cfg *config.Config) services.LikesCounter {
	if cfg.Redis.Addr == "" {
		logger.Warn("Redis is not configured, likes counter will hit the database")
		return nil
	}

	redisCache := cache.NewRedisCache(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, likes counter will hit the database", "error", err)
		return nil
	}

	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return redisCache
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		FirstName:    "Admin",
		LastName:     "Admin",
		Gender:       models.GenderMen,
		Avatar:       models.DefaultAvatarPath,
		IsActive:     true,
		IsAdmin:      true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin created", "email", adminEmail)
	return nil
}
