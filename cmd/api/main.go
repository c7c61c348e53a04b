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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/job-tracker/internal/boards"
	"github.com/justsurfingit/job-tracker/internal/config"
	"github.com/justsurfingit/job-tracker/internal/database"
	"github.com/justsurfingit/job-tracker/internal/handlers"
	"github.com/justsurfingit/job-tracker/internal/logger"
	"github.com/justsurfingit/job-tracker/internal/metrics"
	"github.com/justsurfingit/job-tracker/internal/middleware"
	"github.com/justsurfingit/job-tracker/internal/services"
	"github.com/justsurfingit/job-tracker/internal/store"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Application Store
	repo, err := openRepository(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open application store", zap.Error(err))
	}
	if apps, err := repo.List(ctx); err == nil {
		metrics.SetApplications(len(apps))
	}

	// 3. Initialize Core Services (Dependencies)
	llmService := services.NewLLMService(newCompleter(ctx, cfg, zlog), zlog)
	appService := services.NewApplicationService(repo, llmService, zlog)
	newsService := services.NewNewsService(cfg.NewsBaseURL, cfg.NewsHTTPTimeout, zlog)

	jobBoards, err := boards.Load(cfg.JobBoardsFile)
	if err != nil {
		zlog.Fatal("failed to load job boards", zap.Error(err))
	}

	aiLimiter := middleware.NewRateLimiter(cfg.AIRateLimitRPS, cfg.AIRateLimitBurst, zlog)
	aiLimiter.StartCleanup(10*time.Minute, ctx.Done())

	// 4. Setup Router & Routes
	gin.SetMode(cfg.GinMode)
	r := handlers.NewRouter(handlers.RouterConfig{
		Applications:    handlers.NewApplicationHandler(appService, newsService, zlog),
		AI:              handlers.NewAIHandler(llmService, zlog),
		News:            handlers.NewNewsHandler(newsService, zlog),
		JobBoards:       handlers.NewJobBoardHandler(jobBoards),
		AILimiter:       aiLimiter.Handler(),
		AllowOrigins:    cfg.CORSAllowOrigins,
		AllowAllOrigins: cfg.AllowAllOrigins(),
		Logger:          zlog,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openRepository(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (store.Repository, error) {
	if cfg.StoreDriver != "postgres" {
		zlog.Info("using in-memory application store")
		return store.NewMemoryStore(store.SeedApplications()), nil
	}

	db, err := database.Connect(cfg.DatabaseDSN, zlog)
	if err != nil {
		return nil, err
	}
	repo := database.NewApplicationRepository(db)
	if err := repo.Seed(ctx, store.SeedApplications()); err != nil {
		return nil, err
	}
	return repo, nil
}

// newCompleter falls back to an unavailable model so the rest of the API keeps
// serving when Gemini is not configured.
func newCompleter(ctx context.Context, cfg *config.Config, zlog *zap.Logger) services.Completer {
	completer, err := services.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err == nil {
		return completer
	}
	if errors.Is(err, services.ErrGeminiKeyMissing) {
		zlog.Warn("GEMINI_API_KEY is not set, AI features are disabled")
	} else {
		zlog.Error("failed to create Gemini client, AI features are disabled", zap.Error(err))
	}
	return services.UnavailableCompleter{Reason: err.Error()}
}
