package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
)

// RequestEventHandler journals the transaction hashes of a request lifecycle
// event. Duplicate messages overwrite the entry with the same values.
func (h *QueueHandler) RequestEventHandler(ctx context.Context, messageBody string) *types.Error {
	var event queueclient.RequestEvent
	if err := json.Unmarshal([]byte(messageBody), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into RequestEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}
	return h.Services.SaveRequestEvent(ctx, event)
}
