package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hbnb/internal/app"
	"hbnb/internal/config"
	"hbnb/internal/seed"
)

func serveCmd(cfg *config.Config) *cobra.Command {
	var (
		addr     string
		seedFile string
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			if seedFile != "" {
				cfg.SeedFile = seedFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.New(cfg)
			if cfg.SeedFile != "" {
				if err := seedFrom(ctx, a, cfg.SeedFile); err != nil {
					return err
				}
			}

			if err := a.Run(ctx); err != nil {
				log.Error().Err(err).Msg("server stopped")
				return err
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	c.Flags().StringVar(&seedFile, "seed", "", "YAML fixture to load at startup (overrides SEED_FILE)")
	return c
}

func seedFrom(ctx context.Context, a *app.App, path string) error {
	fx, err := seed.Load(path)
	if err != nil {
		return err
	}
	sum, err := seed.Apply(log.Logger.WithContext(ctx), a.Facade(), fx)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Int("users", sum.Users).
		Int("places", sum.Places).
		Msg("seed loaded")
	return nil
}
