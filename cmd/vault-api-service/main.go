package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/cmd/vault-api-service/cli"
	"github.com/erc7540/vault-api-service/cmd/vault-api-service/scripts"
	"github.com/erc7540/vault-api-service/internal/api"
	"github.com/erc7540/vault-api-service/internal/clients"
	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/db"
	"github.com/erc7540/vault-api-service/internal/db/model"
	"github.com/erc7540/vault-api-service/internal/observability/healthcheck"
	"github.com/erc7540/vault-api-service/internal/observability/metrics"
	"github.com/erc7540/vault-api-service/internal/queue"
	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/services"
	"github.com/erc7540/vault-api-service/internal/wallet"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault db model")
	}
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault db client")
	}

	clients, err := clients.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up chain clients")
	}

	session, err := wallet.NewSession(&cfg.Chain, clients.Chain)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up wallet session")
	}
	if cfg.Chain.PrivateKey != "" {
		if err := session.Connect(ctx); err != nil {
			// the wallet can still be connected later through the api
			log.Warn().Err(err).Msg("failed to connect wallet on startup")
		}
	}
	if err := session.StartChainWatcher(ctx, cfg.Chain.ChainWatchInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting chain watcher")
	}

	queueClient, err := queueclient.NewQueueClient(
		cfg.Queue.QueueUser, cfg.Queue.QueuePassword, cfg.Queue.Url, cfg.Queue.RequestEventsQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating request events queue client")
	}

	services, err := services.New(ctx, cfg, dbClient, clients, session, queueClient)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault services layer")
	}
	defer services.Close()

	queues := queue.New(cfg.Queue, queueClient, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, queues, dbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()
	defer queues.StopReceivingMessages()

	if err := healthcheck.StartHealthCheckCron(ctx, queues, clients.Chain, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting vault api service")
	}
}
