package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/babylonchain/staking-ops-client/internal/observability/healthcheck"
	"github.com/babylonchain/staking-ops-client/internal/services"
)

func newHealthCmd() *cobra.Command {
	var (
		watch    bool
		interval int
	)
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the wallet database and the ledger node are reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, svc *services.Services) (any, error) {
				if err := svc.DoHealthCheck(ctx); err != nil {
					return nil, err
				}
				if !watch {
					return map[string]string{"status": "ok"}, nil
				}

				// keep checking until interrupted, a failed check terminates the process
				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				healthcheck.SetLogger(log.Ctx(ctx).With().Logger())
				if err := healthcheck.StartHealthCheckCron(ctx, svc, interval); err != nil {
					return nil, err
				}
				<-ctx.Done()
				return map[string]string{"status": "stopped"}, nil
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "keep checking periodically until interrupted")
	cmd.Flags().IntVar(&interval, "interval", 60, "seconds between checks in watch mode")
	return cmd
}
