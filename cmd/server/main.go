package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/spliteasy/spliteasy/internal/auth"
	"github.com/spliteasy/spliteasy/internal/config"
	"github.com/spliteasy/spliteasy/internal/middleware"
	"github.com/spliteasy/spliteasy/internal/server"
	"github.com/spliteasy/spliteasy/internal/service"
	"github.com/spliteasy/spliteasy/internal/storage/sqlite"
	"github.com/spliteasy/spliteasy/pkg/logging"
)

func main() {
	// A local .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(
		service.NewAuthService(authenticator, jwtManager),
		service.NewUserService(store),
		service.NewGroupService(store),
		service.NewExpenseService(store),
		jwtManager,
	)

	routes := srv.Routes()
	handler := middleware.Metrics(routes,
		middleware.Logging(
			middleware.CORS(routes),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s/api", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
