//go:generate go install github.com/valyala/quicktemplate/qtc@v1.7.0
//go:generate qtc -dir=views

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/config"
	"github.com/Bios-Marcel/donatehub/server"
	"github.com/Bios-Marcel/donatehub/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "donatehub",
	Short: "DonateHub web frontend",
	Long: `DonateHub connects donors with NGOs for goods donations and volunteering.

This binary serves the web pages and talks to the DonateHub REST backend.
The per browser session state is kept in a local bolt database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapConfig := zap.NewProductionConfig()
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		zapConfig.Level = level
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect the stored browser sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored browser sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.Open(cfg.Session.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := store.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, browser := range sessions {
			name := browser.DisplayName()
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(out, "%s\t%s\tlogged_in=%t\t%s\n", browser.Token, browser.Mode, browser.IsLoggedIn, name)
		}
		fmt.Fprintf(out, "%d session(s)\n", len(sessions))
		return nil
	},
}

var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Log out every browser by dropping all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.Open(cfg.Session.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Purge()
		if err != nil {
			return err
		}
		logger.Info("sessions purged", zap.Int("count", count))
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d session(s)\n", count)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("cant write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

func serve(ctx context.Context) error {
	store, err := session.Open(cfg.Session.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	timeout, err := cfg.BackendTimeout()
	if err != nil {
		return err
	}
	client := backend.New(cfg.Backend.BaseURL, &http.Client{Timeout: timeout}, logger.Named("backend"))

	frontend, err := server.New(cfg, store, client, logger.Named("server"))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           frontend.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("listen", cfg.Listen),
			zap.String("backend", client.BaseURL()),
			zap.String("database", cfg.Session.DatabasePath))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "donatehub.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsPurgeCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(serveCmd, sessionsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
