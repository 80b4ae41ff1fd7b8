package services

import (
	"context"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/types"
)

var (
	approveHash = common.HexToHash("0xa1")
	requestHash = common.HexToHash("0xb2")
)

func mockSubmission(env *testEnv, raw *big.Int) {
	account := common.HexToAddress(testAccount)
	env.chain.On("GetBalance", mock.Anything, testVault.Asset, account).Return(big.NewInt(1_000_000_000), nil)
	env.chain.On("GetNextRequestId", mock.Anything, types.DepositRequest, testVault.VaultAddress).Return(big.NewInt(5), nil)
	env.chain.On("GetTimeLockPeriod", mock.Anything, testVault.VaultAddress).Return(big.NewInt(3600), nil)
	env.chain.On("Approve", mock.Anything, mock.Anything, testVault.Asset, testVault.VaultAddress, bigEq(raw)).
		Return(&chain.TxResult{Hash: approveHash}, nil)
	env.chain.On("SubmitRequest", mock.Anything, mock.Anything, types.DepositRequest, testVault.VaultAddress,
		bigEq(raw), account, account).
		Return(&chain.TxResult{Hash: requestHash}, nil)
}

func TestSubmitRequestReconciles(t *testing.T) {
	env := setupServices(t, true)
	raw := big.NewInt(25_000_000)
	mockSubmission(env, raw)
	account := common.HexToAddress(testAccount)
	existing := record(types.DepositRequest, 3, big.NewInt(1), 500, false, false)
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, account).
		Return([]chain.RequestRecord{existing}, nil).Once()
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, account).
		Return([]chain.RequestRecord{existing}, nil).Once()
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, account).
		Return([]chain.RequestRecord{existing, record(types.DepositRequest, 5, raw, 0, false, false)}, nil)

	result, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "25")
	require.Nil(t, err)
	assert.True(t, result.Reconciled)
	assert.Equal(t, "5", result.Request.RequestId)
	assert.Equal(t, "25", result.Request.Amount)
	assert.Equal(t, types.Pending, result.Request.Status)
	assert.Equal(t, requestHash.Hex(), result.TxHash)
	assert.Equal(t, approveHash.Hex(), result.Request.ApprovalTxHash)

	env.chain.AssertCalled(t, "Approve", mock.Anything, mock.Anything, testVault.Asset, testVault.VaultAddress, bigEq(raw))
	env.publisher.AssertCalled(t, "SendMessage", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, `"request_id":"5"`)
	}))
}

func TestSubmitRequestPollTimeoutReturnsProvisionalRequest(t *testing.T) {
	env := setupServices(t, true)
	raw := big.NewInt(1_000_000)
	mockSubmission(env, raw)
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, mock.Anything).
		Return(nil, nil)

	result, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "1")
	require.Nil(t, err)
	assert.False(t, result.Reconciled)
	assert.Empty(t, result.Request.RequestId)
	assert.Equal(t, types.Pending, result.Request.Status)
	assert.Equal(t, requestHash.Hex(), result.Request.TxHash)
	assert.Equal(t, fixedNow.UnixMilli(), result.Request.Timestamp)
	assert.Equal(t, fixedNow.Add(time.Hour).UnixMilli(), result.Request.EndTimestamp)
	assert.Equal(t, int64(3600), result.Request.RemainingSeconds)
	assert.Equal(t, "1 hours", result.Request.RemainingDisplay)
	assert.NotEqual(t, approvalSoonMessage, result.Request.StatusMessage)
	assert.Contains(t, result.Request.StatusMessage, "1 hours")
	env.publisher.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestSubmitRequestUsesSigningAccount(t *testing.T) {
	env := setupServices(t, true)
	const switchedKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	switched := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	// the account changes after the wallet check but before the write starts
	var once sync.Once
	for _, call := range env.chain.ExpectedCalls {
		if call.Method == "GetTokenMetadata" {
			call.Run(func(mock.Arguments) {
				once.Do(func() { assert.NoError(t, env.session.SwitchAccount(switchedKey)) })
			})
		}
	}
	raw := big.NewInt(2_000_000)
	env.chain.On("GetBalance", mock.Anything, testVault.Asset, switched).Return(big.NewInt(1_000_000_000), nil)
	env.chain.On("GetNextRequestId", mock.Anything, types.DepositRequest, testVault.VaultAddress).Return(big.NewInt(1), nil)
	env.chain.On("GetTimeLockPeriod", mock.Anything, testVault.VaultAddress).Return(big.NewInt(60), nil)
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, switched).Return(nil, nil)
	env.chain.On("Approve", mock.Anything, mock.MatchedBy(func(opts *bind.TransactOpts) bool {
		return opts.From == switched
	}), testVault.Asset, testVault.VaultAddress, bigEq(raw)).Return(&chain.TxResult{Hash: approveHash}, nil)
	env.chain.On("SubmitRequest", mock.Anything, mock.Anything, types.DepositRequest, testVault.VaultAddress,
		bigEq(raw), switched, switched).
		Return(&chain.TxResult{Hash: requestHash}, nil)

	result, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "2")
	require.Nil(t, err)
	assert.Equal(t, switched.Hex(), result.Request.Controller)
	env.chain.AssertCalled(t, "SubmitRequest", mock.Anything, mock.Anything, types.DepositRequest, testVault.VaultAddress,
		bigEq(raw), switched, switched)
}

func TestSubmitRequestRejectsHugeExponent(t *testing.T) {
	env := setupServices(t, true)

	_, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "1e10000000")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
	env.chain.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRequestRequiresWallet(t *testing.T) {
	env := setupServices(t, false)

	_, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "1")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusPreconditionFailed, err.StatusCode)
	assert.Equal(t, types.WalletNotConnected, err.ErrorCode)
}

func TestSubmitRequestValidation(t *testing.T) {
	env := setupServices(t, true)
	account := common.HexToAddress(testAccount)
	env.chain.On("GetBalance", mock.Anything, testVault.Share, account).Return(big.NewInt(1e17), nil)
	ctx := context.Background()

	for _, amount := range []string{"", "abc", "-1", "0"} {
		_, err := env.services.SubmitRequest(ctx, "1", "deposit", amount)
		require.NotNil(t, err, amount)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode, amount)
	}

	_, err := env.services.SubmitRequest(ctx, "1", "withdraw", "1")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	_, err = env.services.SubmitRequest(ctx, "1", "deposit", "0.0000001")
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)

	_, err = env.services.SubmitRequest(ctx, "1", "redeem", "1")
	require.NotNil(t, err)
	assert.Equal(t, types.InsufficientBalance, err.ErrorCode)
	env.chain.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRequestRevert(t *testing.T) {
	env := setupServices(t, true)
	account := common.HexToAddress(testAccount)
	env.chain.On("GetBalance", mock.Anything, testVault.Asset, account).Return(big.NewInt(1_000_000_000), nil)
	env.chain.On("GetNextRequestId", mock.Anything, types.DepositRequest, testVault.VaultAddress).Return(big.NewInt(1), nil)
	env.chain.On("GetTimeLockPeriod", mock.Anything, testVault.VaultAddress).Return(big.NewInt(3600), nil)
	env.chain.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, account).Return(nil, nil)
	env.chain.On("Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&chain.TxResult{Hash: approveHash}, nil)
	env.chain.On("SubmitRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).
		Return(nil, types.NewErrorWithMsg(http.StatusUnprocessableEntity, types.TransactionReverted, "execution reverted"))

	_, err := env.services.SubmitRequest(context.Background(), "1", "deposit", "1")
	require.NotNil(t, err)
	assert.Equal(t, types.TransactionReverted, err.ErrorCode)
}
