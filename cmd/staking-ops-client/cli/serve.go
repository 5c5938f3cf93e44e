package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/babylonchain/staking-ops-client/internal/api"
	"github.com/babylonchain/staking-ops-client/internal/observability/healthcheck"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve read-only account, fee and wallet queries over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, svc, err := loadServices(ctx)
			if err != nil {
				return err
			}
			if !cfg.Server.IsSet() {
				return errors.New("the config file has no server section")
			}

			if err := healthcheck.StartHealthCheckCron(ctx, svc, cfg.Server.HealthCheckInterval); err != nil {
				return err
			}

			server, err := api.New(ctx, cfg, svc)
			if err != nil {
				return err
			}
			if err := server.Start(ctx); err != nil {
				log.Error().Err(err).Msg("error while serving staking ops gateway")
				return err
			}
			return nil
		},
	}
}
