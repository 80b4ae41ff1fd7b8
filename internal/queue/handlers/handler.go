package handlers

import (
	"context"

	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
)

// RequestEventService is the part of the service layer the queue handlers need.
type RequestEventService interface {
	SaveRequestEvent(ctx context.Context, event queueclient.RequestEvent) *types.Error
}

type QueueHandler struct {
	Services RequestEventService
}

type MessageHandler func(ctx context.Context, messageBody string) *types.Error

func NewQueueHandler(services RequestEventService) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}
