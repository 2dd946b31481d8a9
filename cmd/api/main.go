package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/hr-toolkit/internal/config"
	"alfredoptarigan/hr-toolkit/internal/handlers"
	"alfredoptarigan/hr-toolkit/internal/logger"
	"alfredoptarigan/hr-toolkit/internal/server"
	"alfredoptarigan/hr-toolkit/internal/services"
)

func main() {
	cfg, err := config.Load(config.New(), os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, logger.Stdout)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	l.Info("config loaded", zap.String("env", cfg.Server.Env), zap.String("model", cfg.Gemini.Model))

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		l.Fatal("failed to create upload directory", zap.Error(err))
	}

	ctx := context.Background()

	gemini, err := services.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, l)
	if err != nil {
		l.Fatal("failed to initialize Gemini client", zap.Error(err))
	}

	lexicon := services.NewLexicon()
	screener := services.NewResumeScreener(lexicon, services.NewTextExtractor(), gemini, l)
	feedback := services.NewFeedbackAnalyzer(gemini, l)
	fetcher := services.NewJobFetcher(cfg.Fetch.Timeout)

	app := server.New(server.Options{
		BodyLimit: int(cfg.Storage.MaxFileSize) + 1<<20,
		AccessLog: cfg.Server.Env != "production",
		Resume:    handlers.NewResumeHandler(screener, storageService, fetcher, cfg.Storage.MaxFileSize, l),
		Feedback:  handlers.NewFeedbackHandler(feedback),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		l.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			l.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	l.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		l.Fatal("failed to start server", zap.Error(err))
	}
}
