package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
)

// publishRequestEvent emits a lifecycle event. The write it describes is
// already mined, so a publishing failure is only logged.
func (s *Services) publishRequestEvent(ctx context.Context, event queueclient.RequestEvent) {
	if s.EventPublisher == nil {
		return
	}
	body, err := event.Marshal()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to marshal request event")
		return
	}
	if err := s.EventPublisher.SendMessage(ctx, body); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("requestId", event.RequestId).
			Str("queueName", s.EventPublisher.GetQueueName()).
			Msg("failed to publish request event")
	}
}

func validateRequestEvent(event queueclient.RequestEvent) error {
	if !utils.IsValidAddress(event.VaultAddress) {
		return fmt.Errorf("invalid vault address: %q", event.VaultAddress)
	}
	if _, err := types.FromStringToRequestType(event.RequestType); err != nil {
		return err
	}
	if !utils.IsValidRequestId(event.RequestId) {
		return fmt.Errorf("invalid request id: %q", event.RequestId)
	}
	if !utils.IsValidAddress(event.Controller) {
		return fmt.Errorf("invalid controller: %q", event.Controller)
	}
	for _, hash := range []string{event.TxHash, event.ApprovalTxHash, event.FinalizeTxHash} {
		if hash != "" && !utils.IsValidTxHash(hash) {
			return fmt.Errorf("invalid tx hash: %q", hash)
		}
	}
	return nil
}

// SaveRequestEvent records the hashes carried by a lifecycle event in the
// request journal. Replaying an event is harmless. Malformed events yield a
// 400 error so the consumer can park them.
func (s *Services) SaveRequestEvent(ctx context.Context, event queueclient.RequestEvent) *types.Error {
	if err := validateRequestEvent(event); err != nil {
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	var err error
	switch event.EventType {
	case queueclient.RequestSubmittedEventType:
		if event.TxHash == "" {
			return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "submitted event without tx hash")
		}
		err = s.DbClient.SaveRequestSubmission(
			ctx, event.VaultAddress, event.RequestType, event.RequestId, event.Controller,
			event.TxHash, event.ApprovalTxHash,
		)
	case queueclient.RequestFinalizedEventType:
		if event.FinalizeTxHash == "" {
			return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "finalized event without tx hash")
		}
		err = s.DbClient.SaveRequestFinalization(
			ctx, event.VaultAddress, event.RequestType, event.RequestId, event.Controller, event.FinalizeTxHash,
		)
	default:
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, fmt.Sprintf("unknown event type: %d", event.EventType),
		)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("requestId", event.RequestId).Msg("failed to save request journal entry")
		return types.NewInternalServiceError(err)
	}
	return nil
}
