package healthcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger zerolog.Logger = log.Logger

// terminate is replaced in tests
var terminate = func() {
	logger.Fatal().Msg("Terminating due to health check failure.")
	os.Exit(1)
}

type HealthChecker interface {
	DoHealthCheck(ctx context.Context) error
}

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// StartHealthCheckCron checks the dependencies every cronTime seconds and
// terminates the process on the first failure. It stops with ctx.
func StartHealthCheckCron(ctx context.Context, checker HealthChecker, cronTime int) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTime == 0 {
		cronTime = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTime)

	_, err := c.AddFunc(cronSpec, func() {
		healthCheck(ctx, checker)
	})

	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Stopping Health Check Cron")
		c.Stop()
	}()

	return nil
}

func healthCheck(ctx context.Context, checker HealthChecker) {
	if err := checker.DoHealthCheck(ctx); err != nil {
		logger.Error().Err(err).Msg("One or more dependencies are not healthy.")
		terminate()
		return
	}
	logger.Debug().Msg("Health check passed")
}
