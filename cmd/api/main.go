package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/config"
	"github.com/daily-report-api/internal/csrf"
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
	"github.com/daily-report-api/internal/handler"
	"github.com/daily-report-api/internal/middleware"
	"github.com/daily-report-api/internal/repository"
	"github.com/daily-report-api/internal/service"
	"github.com/daily-report-api/migrations"
)

func main() {
	// Инициализация логгера
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()
	gin.SetMode(gin.ReleaseMode)

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := migrate(db, sqlDB, cfg.Database.Driver); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Хранилище токенов форм
	tokens, closeTokens := newTokenStore(cfg, logger)
	defer closeTokens()

	// Инициализация репозиториев
	tx := repository.NewTxManager(db)
	empRepo := repository.NewEmployeeRepository(db)
	reportRepo := repository.NewReportRepository(db)
	goodRepo := repository.NewGoodRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Инициализация сервисов
	empService := service.NewEmployeeService(empRepo, tx)
	reportService := service.NewReportService(reportRepo, tx)
	goodService := service.NewGoodService(goodRepo, reportRepo, tx)
	followService := service.NewFollowService(followRepo, reportRepo, tx)

	if err := bootstrapAdmin(context.Background(), empService, cfg.Admin, logger); err != nil {
		logger.Fatal("failed to create administrator", zap.Error(err))
	}

	jwtService := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	// Инициализация хендлеров
	authHandler := handler.NewAuthHandler(empService, jwtService, logger)
	reportHandler := handler.NewReportHandler(reportService, goodService, followService, tokens, logger)
	empHandler := handler.NewEmployeeHandler(empService, tokens, logger)

	// Настройка роутера
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	router := handler.NewRouter(authHandler, reportHandler, empHandler, jwtService, empService, limiter, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", zap.Error(err))
		}
		close(done)
	}()

	logger.Info("server is starting", zap.String("port", cfg.Server.Port), zap.String("db_driver", cfg.Database.Driver))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("could not listen on port", zap.String("port", cfg.Server.Port), zap.Error(err))
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}

	var db *gorm.DB
	var err error

	for range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

// migrate применяет SQL-миграции goose для PostgreSQL.
// Для локального sqlite схема строится из моделей.
func migrate(db *gorm.DB, sqlDB *sql.DB, driver string) error {
	if driver == "sqlite" {
		return db.AutoMigrate(&domain.Employee{}, &domain.Report{}, &domain.Good{}, &domain.Follow{})
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// newTokenStore использует Redis; без REDIS_ADDR токены живут в памяти процесса
func newTokenStore(cfg *config.Config, logger *zap.Logger) (csrf.Store, func()) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR is empty, form tokens are kept in memory")
		return csrf.NewMemoryStore(cfg.Auth.CSRFTTL), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	return csrf.NewRedisStore(client, cfg.Auth.CSRFTTL), func() { client.Close() }
}

func bootstrapAdmin(ctx context.Context, employees service.EmployeeService, cfg config.AdminConfig, logger *zap.Logger) error {
	if cfg.Code == "" {
		return nil
	}
	n, err := employees.CountByCode(ctx, cfg.Code)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	admin, err := employees.Create(ctx, &dto.EmployeeView{
		Code:      cfg.Code,
		Name:      cfg.Name,
		Password:  cfg.Password,
		AdminFlag: domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	logger.Info("administrator created", zap.Int64("employee_id", admin.ID), zap.String("code", admin.Code))
	return nil
}
