package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/server"
	"github.com/anmicius0/assembly-validator/internal/service"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"github.com/anmicius0/assembly-validator/internal/versioninfo"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.LoadFrom(flags.configFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if err := utils.Init(appConfig.LogFile); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			defer utils.Sync()
			utils.Logger.Info("Configuration loaded successfully",
				zap.String("descriptor_pattern", appConfig.DescriptorPattern),
				zap.String("version_field", appConfig.VersionField),
				zap.Bool("auth_enabled", appConfig.AuthEnabled()))

			if os.Getenv(gin.EnvGinMode) == "" {
				gin.SetMode(gin.ReleaseMode)
			}

			validator := newValidator(appConfig, utils.WithComponent("validator"))
			router := server.NewRouter(appConfig, validator)
			return startServer(cmd.Context(), router, appConfig)
		},
	}
}

// newValidator builds the validation pipeline from configuration.
func newValidator(appConfig *config.Config, logger *zap.Logger) *service.Validator {
	return service.NewValidator(
		versioninfo.NewInspector(appConfig.VersionField),
		utils.NewServiceLogger(logger),
		appConfig.DescriptorPattern,
	)
}

// startServer binds the HTTP server and handles graceful shutdown signals.
func startServer(ctx context.Context, router http.Handler, appConfig *config.Config) error {
	portStr := strconv.Itoa(appConfig.Port)
	addr := fmt.Sprintf("%s:%s", appConfig.APIHost, portStr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-stopped:
			return
		case sig := <-sigChan:
			utils.Logger.Info("Shutdown signal received", zap.String(utils.FieldSignal, sig.String()))
		case <-ctx.Done():
			utils.Logger.Info("Shutdown requested", zap.Error(ctx.Err()))
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.APIHost),
		zap.String(utils.FieldPort, portStr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Logger.Error("Server failed to start", zap.Error(err))
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	utils.Logger.Info("Server stopped")
	return nil
}
