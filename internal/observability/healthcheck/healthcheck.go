package healthcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/queue"
)

var logger zerolog.Logger = log.Logger

// terminate is swapped out in tests.
var terminate = terminateService

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// ChainPinger reports whether the chain node answers.
type ChainPinger interface {
	Ping(ctx context.Context) error
}

func StartHealthCheckCron(ctx context.Context, queues *queue.Queues, chain ChainPinger, cronTime int) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTime == 0 {
		cronTime = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTime)

	_, err := c.AddFunc(cronSpec, func() {
		runHealthCheck(ctx, queues, chain)
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

// runHealthCheck terminates the service on a broken queue connection. An
// unreachable chain node is only reported, requests fail with 502 meanwhile.
func runHealthCheck(ctx context.Context, queues *queue.Queues, chain ChainPinger) {
	if err := queues.IsConnectionHealthy(); err != nil {
		logger.Error().Err(err).Msg("One or more queue connections are not healthy.")
		terminate()
		return
	}
	if chain == nil {
		return
	}
	if err := chain.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("Chain node is not reachable.")
	}
}

func terminateService() {
	logger.Fatal().Msg("Terminating service due to health check failure.")
	os.Exit(1)
}
