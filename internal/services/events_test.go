package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
)

const testTxHash = "0x2222222222222222222222222222222222222222222222222222222222222222"

func TestSaveRequestEvent(t *testing.T) {
	env := setupServices(t, false)
	vault := testVault.VaultAddress.Hex()
	env.db.On("SaveRequestSubmission", mock.Anything, vault, "deposit", "4", testAccount, testTxHash, "").Return(nil)
	env.db.On("SaveRequestFinalization", mock.Anything, vault, "redeem", "4", testAccount, testTxHash).Return(assert.AnError)
	ctx := context.Background()

	err := env.services.SaveRequestEvent(ctx, queueclient.NewRequestSubmittedEvent(vault, "deposit", "4", testAccount, testTxHash, ""))
	assert.Nil(t, err)
	env.db.AssertCalled(t, "SaveRequestSubmission", mock.Anything, vault, "deposit", "4", testAccount, testTxHash, "")

	err = env.services.SaveRequestEvent(ctx, queueclient.NewRequestFinalizedEvent(vault, "redeem", "4", testAccount, testTxHash))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestSaveRequestEventRejectsMalformedEvents(t *testing.T) {
	env := setupServices(t, false)
	vault := testVault.VaultAddress.Hex()
	ctx := context.Background()

	malformed := []queueclient.RequestEvent{
		queueclient.NewRequestSubmittedEvent("0xnope", "deposit", "4", testAccount, testTxHash, ""),
		queueclient.NewRequestSubmittedEvent(vault, "withdraw", "4", testAccount, testTxHash, ""),
		queueclient.NewRequestSubmittedEvent(vault, "deposit", "-4", testAccount, testTxHash, ""),
		queueclient.NewRequestSubmittedEvent(vault, "deposit", "4", testAccount, "", ""),
		queueclient.NewRequestFinalizedEvent(vault, "deposit", "4", testAccount, "0x12"),
		{EventType: 9, VaultAddress: vault, RequestType: "deposit", RequestId: "4", Controller: testAccount},
	}
	for _, event := range malformed {
		err := env.services.SaveRequestEvent(ctx, event)
		require.NotNil(t, err, "%+v", event)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	}
	env.db.AssertNotCalled(t, "SaveRequestSubmission",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
