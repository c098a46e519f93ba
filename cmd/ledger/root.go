package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/infra/dependency"
)

type appKey struct{}

// app is what every subcommand works against once the store is open.
type app struct {
	store   *dependency.Store
	uc      *dependency.UseCases
	clock   adapter.Clock
	ownerID uuid.UUID
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Pocket expense ledger",
		Long: `ledger logs expenses, tracks streaks and achievements, and reports
budgets and spending insights from a local store.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/ledger/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	cmd.PersistentFlags().String("store", config.StoreDriverSQLite, "record store (sqlite, redis, postgres)")
	cmd.PersistentFlags().String("sqlite-path", "", "SQLite file (default: $HOME/.config/ledger/ledger.db)")
	cmd.PersistentFlags().String("redis-url", "redis://localhost:6379/0", "Redis URL for the redis store")
	cmd.PersistentFlags().String("timezone", "Local", "IANA zone used for day boundaries")

	_ = v.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("store.driver", cmd.PersistentFlags().Lookup("store"))
	_ = v.BindPFlag("store.sqlite_path", cmd.PersistentFlags().Lookup("sqlite-path"))
	_ = v.BindPFlag("redis.url", cmd.PersistentFlags().Lookup("redis-url"))
	_ = v.BindPFlag("ledger.timezone", cmd.PersistentFlags().Lookup("timezone"))

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := initConfig(v, cfgFile); err != nil {
			return err
		}
		if err := setupLogging(v, cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("failed to setup logging: %w", err)
		}

		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context(), cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		return nil
	}

	cmd.AddCommand(logCmd())
	cmd.AddCommand(historyCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(analyticsCmd())
	cmd.AddCommand(breakdownCmd())
	cmd.AddCommand(insightsCmd())
	cmd.AddCommand(themeCmd())
	cmd.AddCommand(achievementsCmd())
	cmd.AddCommand(showcaseCmd())
	cmd.AddCommand(budgetCmd())
	cmd.AddCommand(limitCmd())
	cmd.AddCommand(categoryCmd())
	cmd.AddCommand(cardCmd())

	return cmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ledger"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func setupLogging(v *viper.Viper, w io.Writer) error {
	var level slog.Level
	switch v.GetString("logging.level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", v.GetString("logging.level"))
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch v.GetString("logging.format") {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format: %s", v.GetString("logging.format"))
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// loadConfig reads the service settings from v, so the config file and
// LEDGER_* variables can set any key, then pins the CLI to the guest ledger.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg := config.FromViper(v)
	cfg.Ledger.GuestMode = true
	cfg.Metrics.Enabled = false

	cfg.Store.SQLitePath = v.GetString("store.sqlite_path")
	if cfg.Store.SQLitePath == "" && cfg.Store.Driver == config.StoreDriverSQLite {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir := filepath.Join(home, ".config", "ledger")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		cfg.Store.SQLitePath = filepath.Join(dir, "ledger.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openApp(ctx context.Context, cfg *config.Config, out io.Writer) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	clock := adapter.NewSystemClock(loc)
	store, err := dependency.OpenStore(ctx, cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	slog.Debug("Opened record store", "driver", cfg.Store.Driver)

	return &app{
		store:   store,
		uc:      dependency.NewUseCases(store.Repositories, clock, adapter.NopEventRecorder{}),
		clock:   clock,
		ownerID: entity.GuestOwnerID,
		out:     out,
	}, nil
}

// withApp adapts fn to a RunE that closes the store when fn returns.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, ok := cmd.Context().Value(appKey{}).(*app)
		if !ok {
			return fmt.Errorf("ledger store is not open")
		}
		defer func() {
			if err := a.store.Close(); err != nil {
				slog.Error("Failed to close record store", "error", err)
			}
		}()
		return fn(cmd, args, a)
	}
}
