package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
)

type recordingService struct {
	events []queueclient.RequestEvent
	err    *types.Error
}

func (r *recordingService) SaveRequestEvent(_ context.Context, event queueclient.RequestEvent) *types.Error {
	r.events = append(r.events, event)
	return r.err
}

func TestRequestEventHandler(t *testing.T) {
	svc := &recordingService{}
	h := NewQueueHandler(svc)
	event := queueclient.NewRequestFinalizedEvent(
		"0x5FbDB2315678afecb367f032d93F642f64180aa3", "redeem", "3",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"0x2222222222222222222222222222222222222222222222222222222222222222",
	)
	body, err := event.Marshal()
	require.NoError(t, err)

	assert.Nil(t, h.RequestEventHandler(context.Background(), body))
	require.Len(t, svc.events, 1)
	assert.Equal(t, event, svc.events[0])
}

func TestRequestEventHandlerMalformedBody(t *testing.T) {
	svc := &recordingService{}
	h := NewQueueHandler(svc)

	err := h.RequestEventHandler(context.Background(), "{not json")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Empty(t, svc.events)
}

func TestRequestEventHandlerPropagatesServiceError(t *testing.T) {
	svc := &recordingService{err: types.NewInternalServiceError(assert.AnError)}
	h := NewQueueHandler(svc)

	err := h.RequestEventHandler(context.Background(), `{"event_type":1}`)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}
