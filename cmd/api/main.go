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
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/handler"
	"github.com/vaultpass/passcheck-go/internal/middleware"
	"github.com/vaultpass/passcheck-go/internal/repository"
	"github.com/vaultpass/passcheck-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := crypto.NewSecureGenerator()
	if err != nil {
		slog.Error("password generator unavailable", "error", err)
		os.Exit(1)
	}

	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService())
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(gen, cfg.GenerateLength))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/strength", strengthHandler.HandleCheck)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	// Account routes need the database; the checker works without it.
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, auth routes disabled", "error", err)
	} else if err := repository.Migrate(ctx, db); err != nil {
		slog.Warn("database migration failed, auth routes disabled", "error", err)
		db.Close()
	} else {
		defer db.Close()

		tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
		authService := service.NewAuthService(
			repository.NewUserRepository(db),
			crypto.NewHasher(crypto.DefaultHashParams()),
			tokens,
			cfg.MinPasswordScore,
		)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "min_password_score", cfg.MinPasswordScore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
