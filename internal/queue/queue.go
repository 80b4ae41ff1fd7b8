package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/observability/metrics"
	"github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/queue/handlers"
	"github.com/erc7540/vault-api-service/internal/services"
)

// UnprocessableSink parks messages that cannot be handled.
type UnprocessableSink func(ctx context.Context, messageBody, receipt string) error

type Queues struct {
	RequestEventsQueueClient client.QueueClient
	Handlers                 *handlers.QueueHandler
	saveUnprocessable        UnprocessableSink
	processingTimeout        time.Duration
	maxRetryAttempts         int32
}

func New(cfg config.QueueConfig, queueClient client.QueueClient, service *services.Services) *Queues {
	return &Queues{
		RequestEventsQueueClient: queueClient,
		Handlers:                 handlers.NewQueueHandler(service),
		saveUnprocessable:        service.SaveUnprocessableMessages,
		processingTimeout:        time.Duration(cfg.QueueProcessingTimeout) * time.Second,
		maxRetryAttempts:         cfg.MsgMaxRetryAttempts,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	startQueueMessageProcessing(
		q.RequestEventsQueueClient, q.Handlers.RequestEventHandler, q.saveUnprocessable,
		log.Logger, q.processingTimeout, q.maxRetryAttempts,
	)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.RequestEventsQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.RequestEventsQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
}

func (q *Queues) IsConnectionHealthy() error {
	return q.RequestEventsQueueClient.Ping()
}

func startQueueMessageProcessing(
	queueClient client.QueueClient, handler handlers.MessageHandler, saveUnprocessable UnprocessableSink,
	logger zerolog.Logger, timeout time.Duration, maxRetryAttempts int32,
) {
	queueName := queueClient.GetQueueName()
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueName).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			processMessage(queueClient, handler, saveUnprocessable, logger, timeout, maxRetryAttempts, message)
		}
	}()
}

func processMessage(
	queueClient client.QueueClient, handler handlers.MessageHandler, saveUnprocessable UnprocessableSink,
	logger zerolog.Logger, timeout time.Duration, maxRetryAttempts int32, message client.QueueMessage,
) {
	queueName := queueClient.GetQueueName()
	// For each message, create a new context with a deadline or timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logger.WithContext(ctx)

	stopTimer := metrics.StartQueueMessageTimer(queueName)
	handlerErr := handler(ctx, message.Body)
	if handlerErr == nil {
		stopTimer(nil)
		if delErr := queueClient.DeleteMessage(message.Receipt); delErr != nil {
			logger.Error().Err(delErr).Str("queueName", queueName).Msg("error while deleting message from queue")
		}
		return
	}
	stopTimer(handlerErr)
	logger.Error().Err(handlerErr).Str("queueName", queueName).
		Int32("retryAttempts", message.GetRetryAttempts()).
		Msg("error while processing message from queue")

	// client errors will not go away by retrying
	if handlerErr.StatusCode < http.StatusInternalServerError || message.GetRetryAttempts() >= maxRetryAttempts {
		saveErr := saveUnprocessable(ctx, message.Body, message.Receipt)
		if saveErr == nil {
			if delErr := queueClient.DeleteMessage(message.Receipt); delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueName).Msg("error while deleting message from queue")
			}
			return
		}
		logger.Error().Err(saveErr).Str("queueName", queueName).Msg("error while saving unprocessable message")
	}

	if reQueueErr := queueClient.ReQueueMessage(ctx, message); reQueueErr != nil {
		logger.Error().Err(reQueueErr).Str("queueName", queueName).Msg("error while requeuing message")
	}
}
