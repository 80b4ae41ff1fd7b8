package services

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/db/model"
	"github.com/erc7540/vault-api-service/internal/types"
)

func flagRecord(kind types.RequestType, id int64, processed, claimable bool) chain.RequestRecord {
	return chain.RequestRecord{
		Kind:        kind,
		RequestId:   big.NewInt(id),
		Amount:      big.NewInt(1500000),
		Controller:  common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		RequestedAt: big.NewInt(1700000000),
		Duration:    big.NewInt(3661),
		Processed:   processed,
		Claimable:   claimable,
	}
}

func TestReconcileStatusTable(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		processed, claimable bool
		status               types.RequestStatus
	}{
		{processed: true, claimable: true, status: types.Finalized},
		{processed: true, claimable: false, status: types.Finalized},
		{processed: false, claimable: true, status: types.Approved},
		{processed: false, claimable: false, status: types.Pending},
	}
	for _, kind := range []types.RequestType{types.DepositRequest, types.RedeemRequest} {
		for _, tt := range tests {
			r := reconcileRequest(flagRecord(kind, 1, tt.processed, tt.claimable), 6, now)
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.status == types.Approved, r.CanFinalize)
			assert.NotEqual(t, types.Rejected, r.Status)
			assert.Equal(t, kind, r.Type)
		}
	}
}

func TestReconcileFields(t *testing.T) {
	now := time.Unix(1700000000, 0)
	r := reconcileRequest(flagRecord(types.DepositRequest, 9, false, false), 6, now)

	assert.Equal(t, "9", r.RequestId)
	assert.Equal(t, "1.5", r.Amount)
	assert.Equal(t, int64(1700000000000), r.Timestamp)
	assert.Equal(t, int64(1700003661000), r.EndTimestamp)
	assert.Equal(t, int64(3661), r.RemainingSeconds)
	assert.Equal(t, "1 hours 1 mins", r.RemainingDisplay)
	assert.Equal(t,
		"Please wait for about 1 hours 1 mins. After that, the admin will be able to process your request.",
		r.StatusMessage)
}

func TestReconcileElapsedCountdown(t *testing.T) {
	later := time.Unix(1700000000+100000, 0)
	r := reconcileRequest(flagRecord(types.RedeemRequest, 1, false, false), 18, later)
	assert.Equal(t, int64(0), r.RemainingSeconds)
	assert.Equal(t, "0m", r.RemainingDisplay)
	assert.Equal(t, approvalSoonMessage, r.StatusMessage)

	approved := reconcileRequest(flagRecord(types.RedeemRequest, 1, false, true), 18, later)
	assert.Empty(t, approved.StatusMessage)
}

func TestJournalAndOptimisticFinalize(t *testing.T) {
	r := reconcileRequest(flagRecord(types.DepositRequest, 2, false, true), 6, time.Unix(1700000000, 0))
	applyJournal(&r, &model.RequestJournalDocument{TxHash: "0xaa", ApprovalTxHash: "0xbb"})
	assert.Equal(t, "0xaa", r.TxHash)
	assert.Equal(t, "0xbb", r.ApprovalTxHash)

	markFinalized(&r, "0xcc")
	assert.Equal(t, types.Finalized, r.Status)
	assert.False(t, r.CanFinalize)
	assert.Equal(t, "0xcc", r.FinalizeTxHash)
}
