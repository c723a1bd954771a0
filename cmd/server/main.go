package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/booking"
	catalogapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/catalog"
	contentapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/content"
	memberapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/member"
	uploadapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/upload"
	verificationapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/verification"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/config"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/logger"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/notify"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/session"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/sms"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/storage"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/handler"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/middleware"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Academy Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	verificationRepo := persistence.NewGormPhoneVerificationRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	timetableRepo := persistence.NewGormTimetableRepository(db.DB)
	teacherRepo := persistence.NewGormTeacherRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	popupRepo := persistence.NewGormPopupRepository(db.DB)
	briefingRepo := persistence.NewGormBriefingRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	subscriberRepo := persistence.NewGormSubscriberRepository(db.DB)

	// Session store: Redis in production, in-memory for single-node setups
	var sessionStore session.Store
	switch cfg.Session.Store {
	case "redis":
		sessionStore, err = session.NewRedisStore(session.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis session store", zap.Error(err))
		}
		log.Info("Using Redis session store", zap.String("host", cfg.Redis.Host))
	default:
		sessionStore = session.NewInMemoryStore()
		log.Info("Using in-memory session store")
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Error("Error closing session store", zap.Error(err))
		}
	}()
	sessionManager := session.NewManager(sessionStore, cfg.Session.TTL)

	// Spreadsheet notification sink: reservations and subscriber opt-ins
	// are appended to the academy's sheet, best effort
	var sink notify.Sink
	if cfg.Notify.SheetsWebhookURL != "" {
		sink = notify.NewSheetsSink(cfg.Notify.SheetsWebhookURL, cfg.Notify.Timeout)
		log.Info("Spreadsheet notifications enabled")
	} else {
		sink = notify.NewLogSink(log)
		log.Info("Spreadsheet webhook not configured, logging notifications instead")
	}
	dispatcher := notify.NewDispatcher(sink, log, cfg.Notify.BufferSize, cfg.Notify.Timeout)
	defer dispatcher.Close()

	// Object storage for uploaded images
	var objectStorage uploadapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Warn("Could not ensure storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
	} else {
		objectStorage = storage.NewMemoryObjectStorage()
		log.Warn("Object storage not configured, uploads are kept in memory")
	}

	// SMS delivery is log-only until an aggregator contract is in place
	smsSender := sms.NewLogSender(log)

	// Initialize application services
	authService := memberapp.NewAuthService(memberRepo, sessionManager, log)
	verificationService := verificationapp.NewService(verificationRepo, smsSender, log)
	bookingService := bookingapp.NewService(reservationRepo, timetableRepo, memberRepo, dispatcher, log)
	catalogService := catalogapp.NewService(timetableRepo, teacherRepo, log)
	contentService := contentapp.NewService(bannerRepo, popupRepo, briefingRepo, reviewRepo, subscriberRepo, dispatcher, log)
	uploadService := uploadapp.NewService(objectStorage, cfg.Storage.MaxUploadSize, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, security headers, CORS, body limit, global rate limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/healthz"))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Stricter throttle for credential and verification-code endpoints
	var authRateLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRateLimit = middleware.RateLimit(authLimiter)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService, cfg.Cookie, cfg.Session.TTL),
		Phone:       handler.NewPhoneHandler(verificationService),
		Reservation: handler.NewReservationHandler(bookingService),
		Timetable:   handler.NewTimetableHandler(catalogService),
		Teacher:     handler.NewTeacherHandler(catalogService),
		Banner:      handler.NewBannerHandler(contentService),
		Popup:       handler.NewPopupHandler(contentService),
		Briefing:    handler.NewBriefingHandler(contentService),
		Review:      handler.NewReviewHandler(contentService),
		Subscriber:  handler.NewSubscriberHandler(contentService),
		Upload:      handler.NewUploadHandler(uploadService),
		System:      handler.NewSystemHandler(db),
	}

	router.Setup(engine, handlers, router.Options{
		Session:       middleware.Session(sessionManager, memberRepo, cfg.Cookie.Name, log),
		AuthRateLimit: authRateLimit,
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
