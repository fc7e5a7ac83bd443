package cli

import (
	"fmt"
	"log/slog"
	"tour-booking-service/internal/config"
	"tour-booking-service/internal/logging"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the configuration loaded before any
// subcommand runs.
type RootOptions struct {
	EnvFile string

	Config *config.Config
	Logger *slog.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tour-booking",
		Short: "Tour booking backend",
		Long:  "Catalog, payment confirmation and order confirmation e-mails for the tour booking site.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(opts)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded into the environment if present")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewPollCommand(opts))
	cmd.AddCommand(NewNotifyCommand(opts))

	return cmd
}

func loadConfig(opts *RootOptions) error {
	// load .env into os.Environ
	if err := godotenv.Load(opts.EnvFile); err != nil {
		slog.Debug("no env file loaded", "path", opts.EnvFile)
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	opts.Config = cfg
	opts.Logger = logging.New(cfg.Log).With("env", cfg.Environment.Name)
	slog.SetDefault(opts.Logger)
	return nil
}
