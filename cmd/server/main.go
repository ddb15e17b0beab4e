package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"food-ordering-backend/internal/auth"
	"food-ordering-backend/internal/config"
	"food-ordering-backend/internal/handlers"
	"food-ordering-backend/internal/middleware"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
	"food-ordering-backend/internal/service"
	"food-ordering-backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Connect to Postgres and prepare the schema
	pool, err := repository.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	log.Info("database connected", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	foodRepo := repository.NewPostgresFoodRepository(pool)
	orderRepo := repository.NewPostgresOrderRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMins)*time.Minute)
	foodService := service.NewFoodService(foodRepo)
	orderService := service.NewOrderService(orderRepo)
	userService := service.NewUserService(userRepo, tokens)

	// Seed the menu and bootstrap the admin account
	seeded, err := repository.SeedMenu(ctx, foodRepo)
	if err != nil {
		log.Error("failed to seed menu", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		log.Info("menu seeded", "items", seeded)
	}

	created, err := userService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Error("failed to ensure admin account", "error", err)
		os.Exit(1)
	}
	if created {
		log.Info("bootstrap admin account created", "username", cfg.Admin.Username)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	foodHandler := handlers.NewFoodHandler(foodService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	authHandler := handlers.NewAuthHandler(userService, log)

	adminOnly := middleware.RequireRole(tokens, models.RoleAdmin)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Auth endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(adminOnly).Post("/create-admin", authHandler.CreateAdmin)
	})

	// Menu endpoints: reads are public, mutations are admin-only
	r.Route("/foods", func(r chi.Router) {
		r.Get("/", foodHandler.ListFoods)
		r.Get("/{foodId}", foodHandler.GetFood)
		r.Get("/{foodId}/can-delete", foodHandler.CanDeleteFood)
		r.With(adminOnly).Post("/", foodHandler.CreateFood)
		r.With(adminOnly).Put("/{foodId}", foodHandler.UpdateFood)
		r.With(adminOnly).Delete("/{foodId}", foodHandler.DeleteFood)
	})

	// Order endpoints: checkout and tracking are public, the rest is admin-only
	r.Route("/orders", func(r chi.Router) {
		r.Post("/checkout", orderHandler.Checkout)
		r.Get("/{orderId}", orderHandler.GetOrder)
		r.With(adminOnly).Get("/", orderHandler.ListOrders)
		r.With(adminOnly).Put("/{orderId}", orderHandler.UpdateOrder)
		r.With(adminOnly).Delete("/{orderId}", orderHandler.DeleteOrder)
	})

	// User listing (admin only)
	r.With(adminOnly).Get("/users", authHandler.ListUsers)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
