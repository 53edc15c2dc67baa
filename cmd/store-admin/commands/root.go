package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/backoffice-labs/store-admin/cmd/store-admin/tui"
	"github.com/backoffice-labs/store-admin/internal/client"
	"github.com/backoffice-labs/store-admin/internal/config"
	service "github.com/backoffice-labs/store-admin/internal/services"
	"github.com/backoffice-labs/store-admin/internal/telemetry"
)

var (
	// Global flags
	configPath string
	apiURL     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "store-admin",
	Short: "Store Admin - Terminal back office for the store API",
	Long: `Store Admin is a terminal back office for the store API.

It manages categories, products, customers and orders over the REST API,
with inline forms, paginated tables and order editing that only sends the
calls a change actually requires.`,
	Version: "1.2.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (defaults to CONFIG_PATH, then environment only)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the store API (overrides config)")
}

func runApp() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	logger, closeLog, err := newLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	store := client.NewStore(client.New(&cfg.API, logger))

	app := tui.NewApp(tui.Services{
		Categories: service.NewCategoryService(store.Categories),
		Products:   service.NewProductService(store.Products),
		Customers:  service.NewCustomerService(store.Customers),
		Orders:     service.NewOrderService(store.Orders),
		Lookup:     service.NewLookupService(store.Categories, store.Customers, store.Products),
	})

	logger.Info("starting store admin", slog.String("api_url", cfg.API.BaseURL))

	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}

// newLogger opens the JSON log sink. The alternate screen owns the
// terminal, so logs always go to a file.
func newLogger(cfg *config.Logging) (*slog.Logger, func(), error) {
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger, func() { _ = f.Close() }, nil
}
