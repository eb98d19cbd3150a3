package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/dyslexiaid/dyslexiaid-go/internal/config"
	"github.com/dyslexiaid/dyslexiaid-go/internal/handler"
	"github.com/dyslexiaid/dyslexiaid-go/internal/middleware"
	"github.com/dyslexiaid/dyslexiaid-go/internal/repository"
	"github.com/dyslexiaid/dyslexiaid-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.Migrate(pool); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(pool)
	resultRepo := repository.NewResultRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	resultService := service.NewResultService(resultRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.JWTExpiry, cfg.Env == "production")
	resultHandler := handler.NewResultHandler(resultService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is running!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/user/id", handler.HandleUserID)
		r.Post("/api/test-results/submit", resultHandler.HandleSubmit)
		r.Get("/api/test-results", resultHandler.HandleList)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
