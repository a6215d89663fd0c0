package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/auth"
	"github.com/https-dhanesh/itesa-website/internal/calendar"
	"github.com/https-dhanesh/itesa-website/internal/config"
	"github.com/https-dhanesh/itesa-website/internal/content"
	"github.com/https-dhanesh/itesa-website/internal/logger"
	"github.com/https-dhanesh/itesa-website/internal/metrics"
	"github.com/https-dhanesh/itesa-website/internal/notify"
	"github.com/https-dhanesh/itesa-website/internal/repository/postgres"
	redisRepo "github.com/https-dhanesh/itesa-website/internal/repository/redis"
	httpTransport "github.com/https-dhanesh/itesa-website/internal/transport/http"
	"github.com/https-dhanesh/itesa-website/internal/transport/http/handler"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer lg.Sync()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("application stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx := context.Background()

	// Подключаемся к базе данных
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Проверяем подключение
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	lg.Info("connected to database")

	// Применяем миграции
	if err := runMigrations(cfg.MigrationsPath, cfg.GetDSN()); err != nil {
		return err
	}

	lg.Info("migrations applied")

	// Подключаемся к Redis
	redisOpts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	redisClient := goredis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	lg.Info("connected to redis")

	site, err := content.Load(cfg.SiteContentPath)
	if err != nil {
		return err
	}

	m := metrics.New()

	// Инициализируем репозитории
	eventRepo := postgres.NewEventRepository(pool)
	teamRepo := postgres.NewTeamMemberRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	subscriberRepo := postgres.NewSubscriberRepository(pool)
	newsletterRepo := postgres.NewNewsletterRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)
	txManager := postgres.NewTransactionManager(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	publisher := notify.NewPublisher(redisClient, cfg.NotifyChannel)
	authenticator := auth.NewAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTTTL)

	// Инициализируем use cases
	eventUseCase := usecase.NewEventUseCase(eventRepo, cfg.EventDuration, cfg.EventLocation(), lg)
	teamUseCase := usecase.NewTeamUseCase(teamRepo, m, lg)
	contactUseCase := usecase.NewContactUseCase(contactRepo, publisher, m, lg)
	newsletterUseCase := usecase.NewNewsletterUseCase(subscriberRepo, newsletterRepo, txManager, publisher, m, lg)
	statsUseCase := usecase.NewStatisticsUseCase(statsRepo, eventRepo, cfg.EventDuration)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, cfg.SessionTTL, lg)
	authUseCase := usecase.NewAuthUseCase(authenticator, lg)

	// Инициализируем handlers
	feed := calendar.Feed{Name: site.Name + " Events", Duration: cfg.EventDuration}
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": pool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, lg)

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		EventHandler:      handler.NewEventHandler(eventUseCase, feed, lg),
		TeamHandler:       handler.NewTeamHandler(teamUseCase, lg),
		ContactHandler:    handler.NewContactHandler(contactUseCase, lg),
		NewsletterHandler: handler.NewNewsletterHandler(newsletterUseCase, lg),
		StatisticsHandler: handler.NewStatisticsHandler(statsUseCase, lg),
		AuthHandler:       handler.NewAuthHandler(authUseCase, lg),
		SessionHandler:    handler.NewSessionHandler(sessionUseCase, lg),
		SiteHandler:       handler.NewSiteHandler(site),
		HealthHandler:     healthHandler,
		TokenVerifier:     authenticator,
		Metrics:           m,
		Logger:            lg,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
	})

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)

	// Запускаем сервер в отдельной горутине
	go func() {
		lg.Info("starting HTTP server", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		lg.Info("shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	lg.Info("server exited")
	return nil
}

// Применяем миграции базы данных
func runMigrations(sourceURL, dsn string) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
