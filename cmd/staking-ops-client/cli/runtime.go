package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/babylonchain/staking-ops-client/internal/config"
	"github.com/babylonchain/staking-ops-client/internal/db/model"
	"github.com/babylonchain/staking-ops-client/internal/observability/metrics"
	"github.com/babylonchain/staking-ops-client/internal/observability/tracing"
	"github.com/babylonchain/staking-ops-client/internal/services"
	"github.com/babylonchain/staking-ops-client/internal/wallet"
)

type action func(ctx context.Context, svc *services.Services) (any, error)

// run executes fn under a fresh trace, logs its completion with the
// recorded spans and prints the result as JSON.
func run(cmd *cobra.Command, fn action) error {
	ctx := tracing.AttachTracingIntoContext(cmd.Context())
	logger := log.With().
		Str("command", cmd.CommandPath()).
		Interface("traceId", ctx.Value(tracing.TraceIdKey)).
		Logger()
	ctx = logger.WithContext(ctx)

	_, svc, err := loadServices(ctx)
	if err != nil {
		return err
	}

	startTime := time.Now()
	logger.Debug().Msg("command started")
	result, err := fn(ctx, svc)

	logEvent := logger.Info()
	if err != nil {
		logEvent = logger.Error().Err(err)
	}
	if tracingInfo := tracing.TracingInfoFromContext(ctx); tracingInfo != nil {
		logEvent = logEvent.Interface("tracingInfo", tracingInfo)
	}
	logEvent.Int64("duration", time.Since(startTime).Milliseconds()).Msg("command completed")

	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func loadServices(ctx context.Context) (*config.Config, *services.Services, error) {
	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("error while loading config file %s: %w", GetConfigPath(), err)
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		zerolog.SetGlobalLevel(level)
	}

	// the metrics server lives as long as the command
	if cfg.Metrics.Enabled {
		metrics.Init(cfg.Metrics.GetMetricsPort())
	}

	if err := model.Setup(ctx, &cfg.Db); err != nil {
		return nil, nil, fmt.Errorf("error while setting up wallet db model: %w", err)
	}
	svc, err := services.New(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error while setting up staking services layer: %w", err)
	}
	return cfg, svc, nil
}

// walletKey returns the wallet name and the key derived from its passphrase.
func walletKey() (string, wallet.EncKey, error) {
	name, err := GetWalletName()
	if err != nil {
		return "", wallet.EncKey{}, err
	}
	return name, wallet.DeriveEncKey(name, GetPassphrase()), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
