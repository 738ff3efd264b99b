package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitmarket/personal-app/internal/api"
	"fitmarket/personal-app/internal/config"
	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository/kvstore"
	"fitmarket/personal-app/internal/service"
	"fitmarket/personal-app/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()
	logger.Info("starting personal-app server")

	// --- Local Store ---
	store, err := kv.OpenBolt(cfg.Store.Path)
	if err != nil {
		logger.Fatal("could not open local store", zap.String("path", cfg.Store.Path), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close local store", zap.Error(err))
		}
	}()
	logger.Info("local store opened", zap.String("path", cfg.Store.Path))

	// --- Backup Storage (optional) ---
	var objects storage.ObjectStorage
	if cfg.S3.BucketName != "" {
		objects, err = storage.NewS3Storage(cfg.S3, logger)
		if err != nil {
			logger.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		logger.Info("no backup bucket configured, backups disabled")
	}

	// --- Repositories ---
	personalRepo := kvstore.NewPersonalRepository(store, logger)
	alunoRepo := kvstore.NewAlunoRepository(store, logger)
	servicoRepo := kvstore.NewServicoRepository(store, logger)
	contratoRepo := kvstore.NewContratoRepository(store, logger)

	// --- Services ---
	authService := service.NewAuthService(personalRepo, alunoRepo, cfg.JWT.Secret, cfg.JWT.Expiration, logger)
	suggester := service.NewPasswordSuggester(cfg.PasswordGen.URL, cfg.PasswordGen.Timeout, logger)
	personalService := service.NewPersonalService(personalRepo, logger)
	alunoService := service.NewAlunoService(alunoRepo, logger)
	servicoService := service.NewServicoService(servicoRepo, logger)
	contratoService := service.NewContratoService(contratoRepo, servicoRepo, logger)
	backupService := service.NewBackupService(store, objects, logger)

	// --- Router ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, suggester, personalService, alunoService,
		servicoService, contratoService, backupService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("server starting", zap.String("address", cfg.Server.Address))

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen and serve error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
