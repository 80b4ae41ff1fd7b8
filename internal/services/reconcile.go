package services

import (
	"fmt"
	"math/big"
	"time"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/db/model"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
)

const approvalSoonMessage = "The request will be approved soon by the admin."

type VaultRequestPublic struct {
	RequestId        string              `json:"request_id"`
	Type             types.RequestType   `json:"type"`
	Amount           string              `json:"amount"`
	Status           types.RequestStatus `json:"status"`
	Timestamp        int64               `json:"timestamp"`
	EndTimestamp     int64               `json:"end_timestamp"`
	Controller       string              `json:"controller"`
	TxHash           string              `json:"tx_hash,omitempty"`
	ApprovalTxHash   string              `json:"approval_tx_hash,omitempty"`
	FinalizeTxHash   string              `json:"finalize_tx_hash,omitempty"`
	CanFinalize      bool                `json:"can_finalize"`
	RemainingSeconds int64               `json:"remaining_seconds"`
	RemainingDisplay string              `json:"remaining_display"`
	StatusMessage    string              `json:"status_message,omitempty"`

	id *big.Int
}

func (r VaultRequestPublic) GetStatus() types.RequestStatus { return r.Status }
func (r VaultRequestPublic) GetType() types.RequestType     { return r.Type }
func (r VaultRequestPublic) GetRequestedAt() time.Time      { return time.UnixMilli(r.Timestamp) }
func (r VaultRequestPublic) SearchableFields() []string {
	return []string{r.RequestId, r.Amount, r.TxHash, r.ApprovalTxHash, r.FinalizeTxHash}
}

// pendingStatusMessage is the hint shown next to a pending request.
func pendingStatusMessage(remainingDisplay string) string {
	if remainingDisplay == "0m" {
		return approvalSoonMessage
	}
	return fmt.Sprintf(
		"Please wait for about %s. After that, the admin will be able to process your request.", remainingDisplay,
	)
}

// reconcileRequest turns a raw contract record into its user facing view.
// The status only depends on the processed and claimable flags.
func reconcileRequest(record chain.RequestRecord, decimals uint8, now time.Time) VaultRequestPublic {
	requestedAt := bigToInt64(record.RequestedAt)
	end := requestedAt + bigToInt64(record.Duration)
	status := types.DeriveRequestStatus(record.Processed, record.Claimable)
	remaining := utils.Countdown(time.Unix(end, 0), now)

	request := VaultRequestPublic{
		RequestId:        record.RequestId.String(),
		Type:             record.Kind,
		Amount:           utils.FormatAmount(record.Amount, decimals),
		Status:           status,
		Timestamp:        utils.UnixMilli(requestedAt),
		EndTimestamp:     utils.UnixMilli(end),
		Controller:       record.Controller.Hex(),
		CanFinalize:      types.CanFinalize(status),
		RemainingSeconds: remaining,
		RemainingDisplay: utils.FormatDuration(remaining),
		id:               record.RequestId,
	}
	if status == types.Pending {
		request.StatusMessage = pendingStatusMessage(request.RemainingDisplay)
	}
	return request
}

// applyJournal copies the known transaction hashes onto the request.
func applyJournal(request *VaultRequestPublic, entry *model.RequestJournalDocument) {
	if entry == nil {
		return
	}
	if entry.TxHash != "" {
		request.TxHash = entry.TxHash
	}
	if entry.ApprovalTxHash != "" {
		request.ApprovalTxHash = entry.ApprovalTxHash
	}
	if entry.FinalizeTxHash != "" {
		request.FinalizeTxHash = entry.FinalizeTxHash
	}
}

// markFinalized advances a request once its finalize transaction is mined,
// before the contracts report it as processed.
func markFinalized(request *VaultRequestPublic, finalizeTxHash string) {
	request.Status = types.Finalized
	request.CanFinalize = types.CanFinalize(types.Finalized)
	request.FinalizeTxHash = finalizeTxHash
	request.StatusMessage = ""
}
