// Package server implements the server subcommand: config, database,
// dependency wiring and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"plansvc/internal/application/plan/services"
	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/infrastructure/auth"
	"plansvc/internal/infrastructure/config"
	"plansvc/internal/infrastructure/database"
	"plansvc/internal/infrastructure/persistence/models"
	"plansvc/internal/infrastructure/repository"
	"plansvc/internal/interfaces/http/handlers"
	"plansvc/internal/interfaces/http/middleware"
	"plansvc/internal/interfaces/http/routes"
	"plansvc/internal/shared/db"
	"plansvc/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Get().AutoMigrate(
		&models.PlanModel{},
		&models.PlanIntermedioModel{},
		&models.PlanPremiumModel{},
		&models.DescriptionFeatureModel{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log := logger.NewLogger()

	planRepo := repository.NewPlanRepository(database.Get(), log)
	intermedioRepo := repository.NewIntermedioRepository(database.Get(), log)
	premiumRepo := repository.NewPremiumRepository(database.Get(), log)
	featureRepo := repository.NewFeatureRepository(database.Get(), log)
	txManager := db.NewTransactionManager(database.Get())

	assembler := services.NewAssembler(intermedioRepo, premiumRepo, featureRepo, log)

	tieredHandler := handlers.NewTieredPlanHandler(
		usecases.NewCreateTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, txManager, log),
		usecases.NewUpdateTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, txManager, log),
		usecases.NewDeleteTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, featureRepo, txManager, log),
		usecases.NewGetCompositePlanUseCase(planRepo, assembler, log),
		usecases.NewListCompositePlansUseCase(planRepo, assembler, log),
		log,
	)
	tableHandler := handlers.NewPlanTableHandler(
		usecases.NewPlanTableUseCase(planRepo, log),
		usecases.NewIntermedioTableUseCase(intermedioRepo, log),
		usecases.NewPremiumTableUseCase(premiumRepo, log),
		log,
	)
	featureHandler := handlers.NewFeatureHandler(
		usecases.NewCreateFeatureUseCase(featureRepo, log),
		usecases.NewUpdateFeatureUseCase(featureRepo, log),
		usecases.NewDeleteFeatureUseCase(featureRepo, log),
		usecases.NewGetFeatureUseCase(featureRepo, log),
		usecases.NewListFeaturesUseCase(featureRepo, log),
		usecases.NewListFeatureDescriptionsUseCase(featureRepo, log),
		log,
	)

	authority := auth.NewAuthorityClient(&cfg.Authority, log)
	authMiddleware := middleware.NewAuthMiddleware(authority, log)

	engine := gin.New()
	engine.Use(gin.Recovery())

	routes.Register(engine, authMiddleware, routes.Handlers{
		Tiered:  tieredHandler,
		Tables:  tableHandler,
		Feature: featureHandler,
		Health:  handlers.NewHealthHandler(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
