package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hbnb/internal/config"
	"hbnb/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}
	var logLevel string

	root := &cobra.Command{
		Use:          "hbnb",
		Short:        "In-memory hbnb API server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional
			_ = godotenv.Load()

			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = logLevel
			}
			if err := logger.Init(loaded.AppEnv, loaded.LogLevel); err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	serve := serveCmd(cfg)
	root.AddCommand(serve, validateFixtureCmd())
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}
