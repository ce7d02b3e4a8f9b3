package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaiNageswarS/doubt-solver-api/appconfig"
	"github.com/SaiNageswarS/doubt-solver-api/controller"
	"github.com/SaiNageswarS/doubt-solver-api/mcp"
	"github.com/SaiNageswarS/doubt-solver-api/middleware"
	"github.com/SaiNageswarS/doubt-solver-api/solver"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	cfg, err := appconfig.Load(appconfig.DefaultConfigPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if !cfg.HasAPIKey() {
		logger.Error("Warning: " + appconfig.EnvGroqAPIKey + " environment variable not set")
	}

	boot, err := newBootServer(cfg)
	if err != nil {
		logger.Fatal("Dependency Injection Failed", zap.Error(err))
	}

	logger.Info("Doubt solver starting",
		zap.String("httpPort", cfg.HTTPPort),
		zap.String("model", cfg.Model))

	ctx := getCancellableContext()
	boot.Serve(ctx)
}

func newBootServer(cfg *appconfig.AppConfig) (*server.BootServer, error) {
	return server.New().
		GRPCPort(cfg.GRPCPort).
		HTTPPort(cfg.HTTPPort).
		CORS(middleware.CORSPolicy()).
		Provide(cfg).
		ProvideFunc(solver.ProvideQuestionSolver).
		AddRestController(controller.ProvideSolveController).
		AddRestController(controller.ProvideHealthController).
		AddRestController(controller.ProvidePageController).
		WithMCP(mcp.Implementation(), nil).
		WithMCPMiddleware(middleware.MCPMiddleware).
		AddMCPConfigurator(mcp.ProvideSolveTool).
		Build()
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
