package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/db"
	"github.com/erc7540/vault-api-service/internal/queue"
	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
)

type GenericEvent struct {
	EventType queueclient.EventType `json:"event_type"`
}

// ReplayUnprocessableMessages puts every parked message back on its queue and
// removes it from the database.
func ReplayUnprocessableMessages(ctx context.Context, queues *queue.Queues, dbClient db.DBClient) error {
	unprocessableMessages, err := dbClient.FindUnprocessableMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve unprocessable messages: %w", err)
	}

	messageCount := len(unprocessableMessages)
	log.Info().Int("count", messageCount).Msg("found unprocessable messages")
	if messageCount == 0 {
		return nil
	}

	for _, msg := range unprocessableMessages {
		var genericEvent GenericEvent
		if err := json.Unmarshal([]byte(msg.MessageBody), &genericEvent); err != nil {
			log.Error().Err(err).Str("id", msg.Id.Hex()).Msg("failed to unmarshal event message")
			return errors.New("failed to unmarshal event message")
		}

		if err := processEventMessage(ctx, queues, genericEvent, msg.MessageBody); err != nil {
			return fmt.Errorf("failed to process message %s: %w", msg.Id.Hex(), err)
		}

		if err := dbClient.DeleteUnprocessableMessage(ctx, msg.Id); err != nil {
			if db.IsNotFoundError(err) {
				log.Warn().Str("id", msg.Id.Hex()).Msg("unprocessable message already deleted")
				continue
			}
			return fmt.Errorf("failed to delete unprocessable message %s: %w", msg.Id.Hex(), err)
		}
	}

	log.Info().Msg("Reprocessing of unprocessable messages completed.")
	return nil
}

// processEventMessage processes the event message based on its EventType.
func processEventMessage(ctx context.Context, queues *queue.Queues, event GenericEvent, messageBody string) error {
	switch event.EventType {
	case queueclient.RequestSubmittedEventType, queueclient.RequestFinalizedEventType:
		return queues.RequestEventsQueueClient.SendMessage(ctx, messageBody)
	default:
		return fmt.Errorf("unknown event type: %v", event.EventType)
	}
}
