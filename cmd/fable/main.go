package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fablemock/fable/internal/config"
	"github.com/fablemock/fable/internal/observability"
	"github.com/fablemock/fable/internal/server"
)

const version = "0.1.0"

func main() {
	var (
		configPath string
		addr       string
	)

	rootCmd := &cobra.Command{
		Use:   "fable",
		Short: "Mock OpenAI Responses API server for local client testing",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath, addr)
		},
	}
	serveCmd.Flags().StringVar(&configPath, "config", "", "Config file path (optional)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fable %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(configPath, addrOverride string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	logger, err := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	tracing, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    "fable",
		ServiceVersion: version,
		Environment:    cfg.Tracing.Environment,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	var audit *observability.AuditLogger
	if cfg.Audit.Enabled {
		audit, err = observability.NewAuditLogger(&observability.AuditConfig{
			Enabled:    true,
			OutputPath: cfg.Audit.OutputPath,
		})
		if err != nil {
			return fmt.Errorf("init audit logger: %w", err)
		}
	}

	srv := server.New(cfg.Server, logger, audit)

	shutdown := server.NewShutdownHandler(&server.ShutdownConfig{
		Timeout: cfg.Server.ShutdownTimeout,
		Logger:  logger,
	})
	started := time.Now()
	shutdown.RegisterHook("http-server", 10, srv.Shutdown)
	shutdown.RegisterHook("tracing", 80, tracing.Shutdown)
	if audit != nil {
		shutdown.RegisterHook("audit-logger", 95, func(ctx context.Context) error {
			audit.LogServerStop(time.Since(started))
			return audit.Close()
		})
	}
	shutdown.Start()

	if audit != nil {
		audit.LogServerStart(cfg.Server.Addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
		// Server closed underneath us (graceful shutdown in flight);
		// let the remaining hooks finish.
		shutdown.Shutdown()
	case <-shutdown.Done():
	}
	shutdown.Wait()

	logger.Info("shutdown complete", zap.String("addr", cfg.Server.Addr))
	return nil
}
