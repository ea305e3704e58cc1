package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/config"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"
	"courseadmin/internal/infrastructure/repository"
	"courseadmin/internal/infrastructure/security"
	"courseadmin/internal/middleware"
	transport "courseadmin/internal/transport/http"
)

func OpenDB(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Section{},
		&domain.Video{},
		&domain.StudentCourse{},
	)
}

func setupLogger(cfg config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if !cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Run wires the whole service together and blocks until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	logger := setupLogger(cfg)
	ctx, cancel := signal.NotifyContext(logger.WithContext(context.Background()), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info().Str("env", cfg.Environment).Msg("starting")
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Cache and rate limiting degrade gracefully without Redis.
		logger.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		rdb = nil
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db, cache.NewCourseCache(rdb))
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenManager(cfg.JWTSecret)

	handlers := transport.Handlers{
		Auth:     transport.NewAuthHandler(usecase.NewAuthUseCase(userRepo, hasher, tokens), cfg.IsProduction()),
		Courses:  transport.NewCourseHandler(usecase.NewCourseUseCase(courseRepo)),
		Students: transport.NewStudentHandler(usecase.NewEnrollmentUseCase(enrollmentRepo)),
	}

	router := transport.NewRouter(
		handlers,
		middleware.SessionGate(tokens),
		middleware.NewRateLimiter(rdb),
		cfg.Origins(),
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server failed")
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
