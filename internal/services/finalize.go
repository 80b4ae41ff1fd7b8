package services

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
)

type FinalizeRequestResult struct {
	Request  VaultRequestPublic   `json:"request"`
	Requests []VaultRequestPublic `json:"requests"`
	// Reconciled is false when the contracts did not report the request as
	// processed before the poll timeout
	Reconciled bool `json:"reconciled"`
}

// FinalizeRequest claims an approved request of the connected account and
// returns the refreshed request list.
func (s *Services) FinalizeRequest(
	ctx context.Context, vaultId, requestType, requestId string,
) (*FinalizeRequestResult, *types.Error) {
	kind, kindErr := types.FromStringToRequestType(requestType)
	if kindErr != nil {
		return nil, types.NewError(http.StatusBadRequest, types.BadRequest, kindErr)
	}
	if !utils.IsValidRequestId(requestId) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request id")
	}
	id, _ := new(big.Int).SetString(requestId, 10)

	account, err := s.requireAccount()
	if err != nil {
		return nil, err
	}
	info, err := s.resolveVault(ctx, vaultId)
	if err != nil {
		return nil, err
	}
	requests, err := s.fetchUserRequests(ctx, *info, account)
	if err != nil {
		return nil, err
	}
	request := findRequest(requests, kind, requestId)
	if request == nil {
		return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf(
			"%s request %s not found", kind.ToString(), requestId,
		))
	}
	if utils.Contains(utils.OutdatedStatusesForFinalize, request.Status) {
		return nil, types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "request has already been finalized")
	}
	if !utils.Contains(utils.QualifiedStatusesToFinalize(), request.Status) {
		return nil, types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "request is not ready to be finalized")
	}

	tx, err := s.submitFinalize(ctx, kind, *info, account, id)
	if err != nil {
		return nil, err
	}
	finalizeTxHash := tx.Hash.Hex()
	optimistic := *request
	markFinalized(&optimistic, finalizeTxHash)
	s.publishRequestEvent(ctx, queueclient.NewRequestFinalizedEvent(
		info.VaultAddress.Hex(), kind.ToString(), requestId, account.Hex(), finalizeTxHash,
	))

	var refreshed []VaultRequestPublic
	pollErr := utils.PollUntil(ctx, s.cfg.Requests.PollInterval, s.cfg.Requests.PollTimeout, func(ctx context.Context) (bool, error) {
		latest, err := s.fetchUserRequests(ctx, *info, account)
		if err != nil {
			return false, err
		}
		current := findRequest(latest, kind, requestId)
		if current == nil || !utils.Contains(utils.TerminalStatuses(), current.Status) {
			return false, nil
		}
		refreshed = latest
		return true, nil
	})
	if pollErr != nil {
		log.Ctx(ctx).Warn().Err(pollErr).Str("txHash", finalizeTxHash).Msg("finalized request not reconciled yet")
		*request = optimistic
		return &FinalizeRequestResult{Request: optimistic, Requests: requests}, nil
	}

	current := findRequest(refreshed, kind, requestId)
	// the journal may not have consumed the finalize event yet
	if current.FinalizeTxHash == "" {
		current.FinalizeTxHash = finalizeTxHash
	}
	return &FinalizeRequestResult{Request: *current, Requests: refreshed, Reconciled: true}, nil
}

func (s *Services) submitFinalize(
	ctx context.Context, kind types.RequestType, info chain.VaultInfo, account common.Address, id *big.Int,
) (*chain.TxResult, *types.Error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	opts, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	if opts.From != account {
		return nil, types.NewErrorWithMsg(http.StatusConflict, types.AccountChanged, fmt.Sprintf(
			"active account changed to %s while finalizing a request of %s", opts.From.Hex(), account.Hex(),
		))
	}
	return s.ChainClient.FinalizeRequest(ctx, opts, kind, info.VaultAddress, account, account, id)
}
