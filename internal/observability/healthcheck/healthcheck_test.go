package healthcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/erc7540/vault-api-service/internal/queue"
	testmock "github.com/erc7540/vault-api-service/tests/mocks"
)

func stubTerminate(t *testing.T) *bool {
	called := false
	terminate = func() { called = true }
	t.Cleanup(func() { terminate = terminateService })
	return &called
}

func TestRunHealthCheckTerminatesOnQueueFailure(t *testing.T) {
	terminated := stubTerminate(t)
	queueClient := new(testmock.QueueClient)
	queueClient.On("Ping").Return(errors.New("connection closed"))
	chain := new(testmock.ChainClientInterface)

	runHealthCheck(context.Background(), &queue.Queues{RequestEventsQueueClient: queueClient}, chain)

	assert.True(t, *terminated)
	chain.AssertNotCalled(t, "Ping", mock.Anything)
}

func TestRunHealthCheckToleratesChainFailure(t *testing.T) {
	terminated := stubTerminate(t)
	queueClient := new(testmock.QueueClient)
	queueClient.On("Ping").Return(nil)
	chain := new(testmock.ChainClientInterface)
	chain.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))

	runHealthCheck(context.Background(), &queue.Queues{RequestEventsQueueClient: queueClient}, chain)

	assert.False(t, *terminated)
	chain.AssertCalled(t, "Ping", mock.Anything)
}
