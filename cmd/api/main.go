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

	"github.com/campusreg/campusreg-go/internal/bootstrap"
	"github.com/campusreg/campusreg-go/internal/config"
	"github.com/campusreg/campusreg-go/internal/handler"
	"github.com/campusreg/campusreg-go/internal/middleware"
	"github.com/campusreg/campusreg-go/internal/repository"
	"github.com/campusreg/campusreg-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx := context.Background()
	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	if err := bootstrap.LoadCourses(ctx, courseRepo, cfg.CourseDataPath); err != nil {
		slog.Error("course bootstrap failed", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)
	courseService := service.NewCourseService(courseRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.JWTSecret, handler.CookieConfig{
		Secure: cfg.CookieSecure,
		MaxAge: int(cfg.CookieMaxAge.Seconds()),
	})
	userHandler := handler.NewUserHandler(authService, enrollmentService)
	courseHandler := handler.NewCourseHandler(courseService, enrollmentService)
	clientLogHandler := handler.NewClientLogHandler()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// Public routes. Everything not listed here sits behind the session guard.
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/api/courses", courseHandler.HandleListCourses)
	r.Get("/api/validateJwt", authHandler.HandleValidateSession)
	r.Post("/api/logout", authHandler.HandleLogout)
	r.Post("/api/client-logs", clientLogHandler.HandleClientLog)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/signup", authHandler.HandleSignup)
		r.Post("/api/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret))
		r.Post("/api/enroll", courseHandler.HandleEnroll)
		r.Get("/api/userDetails", userHandler.HandleUserDetails)
		r.Get("/api/userCourses", userHandler.HandleUserCourses)
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
