package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/config"
	"github.com/jcpachecoh/cbtw-recruitment/internal/db"
	"github.com/jcpachecoh/cbtw-recruitment/internal/email"
	apihttp "github.com/jcpachecoh/cbtw-recruitment/internal/http"
	"github.com/jcpachecoh/cbtw-recruitment/internal/repository"
	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.RunMigrations(ctx, cfg); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	candidateRepo := repository.NewPgCandidateRepository(pool)
	interviewRepo := repository.NewPgInterviewRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var resetLimiter service.ResetRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			resetLimiter = service.NewRedisResetRateLimiter(redisClient, 10*time.Minute, 3)
		}
		cancel()
	}

	sessionSvc := service.NewSessionService(cfg.SessionSecret)
	authSvc := service.NewAuthService(logger, userRepo, emailSender, resetLimiter, cfg.PublicBaseURL)
	userSvc := service.NewUserService(logger, userRepo)
	candidateSvc := service.NewCandidateService(logger, candidateRepo, userRepo)
	interviewSvc := service.NewInterviewService(logger, interviewRepo, candidateRepo)

	authHandler := apihttp.NewAuthHandler(logger, authSvc, sessionSvc, cfg.IsProduction(), !cfg.IsProduction())
	userHandler := apihttp.NewUserHandler(logger, userSvc)
	candidateHandler := apihttp.NewCandidateHandler(logger, candidateSvc)
	interviewHandler := apihttp.NewInterviewHandler(logger, interviewSvc)
	router := apihttp.NewRouter(logger, sessionSvc, authHandler, userHandler, candidateHandler, interviewHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
