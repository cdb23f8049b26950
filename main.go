package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking_control/internal/api"
	"parking_control/internal/config"
	"parking_control/internal/logger"
	"parking_control/internal/repository"
	"parking_control/internal/repository/memory"
	"parking_control/internal/repository/postgresql"
	"parking_control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "parking-control"

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Parking spot registry REST service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the parking spot table and its unique keys",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context(), envFile)
			},
		},
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(envFile string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

func migrate(ctx context.Context, envFile string) error {
	cfg, log, err := setup(envFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Store != config.StorePostgres {
		log.Info("store needs no migration", zap.String("store", cfg.Store))
		return nil
	}

	db, err := postgresql.NewDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := postgresql.Migrate(ctx, db)
	if err != nil {
		return err
	}
	log.Info("schema applied", zap.Strings("files", applied))
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.ParkingSpotRepository, *sql.DB, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewMemParkingSpotRepository(), nil, nil
	}

	db, err := postgresql.NewDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("database connected",
		zap.String("driver", cfg.DBDriver),
		zap.String("host", cfg.DBHost),
		zap.String("db", cfg.DBName))
	return postgresql.NewPgParkingSpotRepository(db), db, nil
}

func serve(ctx context.Context, envFile string) error {
	cfg, log, err := setup(envFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	spotRepo, db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	spotService := service.NewParkingSpotService(spotRepo, log)
	router := api.SetupRouter(spotService, log)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shut down: %w", err)
	}
	log.Info("server stopped")
	return nil
}
