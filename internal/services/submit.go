package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
	"github.com/erc7540/vault-api-service/internal/wallet"
)

type SubmitRequestResult struct {
	Request        VaultRequestPublic `json:"request"`
	TxHash         string             `json:"tx_hash"`
	ApprovalTxHash string             `json:"approval_tx_hash"`
	// Reconciled is false when the node did not report the new request in time
	Reconciled bool `json:"reconciled"`
}

func (s *Services) transactOpts(ctx context.Context) (*bind.TransactOpts, *types.Error) {
	opts, err := s.Session.TransactOpts(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrNotConnected) {
			return nil, types.NewError(http.StatusPreconditionFailed, types.WalletNotConnected, err)
		}
		return nil, types.NewInternalServiceError(err)
	}
	return opts, nil
}

// SubmitRequest approves the vault to pull the amount and files a deposit or
// redeem request for the connected account.
func (s *Services) SubmitRequest(
	ctx context.Context, vaultId, requestType, amount string,
) (*SubmitRequestResult, *types.Error) {
	kind, kindErr := types.FromStringToRequestType(requestType)
	if kindErr != nil {
		return nil, types.NewError(http.StatusBadRequest, types.BadRequest, kindErr)
	}
	if err := utils.ValidateAmount(amount); err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	if _, err := s.requireAccount(); err != nil {
		return nil, err
	}
	info, err := s.resolveVault(ctx, vaultId)
	if err != nil {
		return nil, err
	}
	tokens, err := s.loadVaultTokens(ctx, *info)
	if err != nil {
		return nil, err
	}
	token := tokens.tokenFor(kind)
	raw, parseErr := utils.ParseAmount(amount, token.Decimals)
	if parseErr != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, parseErr)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// the signer is the account for the whole submission, even if the
	// session switches accounts meanwhile
	opts, err := s.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	account := opts.From

	balance, err := s.ChainClient.GetBalance(ctx, token.Address, account)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(raw) < 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InsufficientBalance, fmt.Sprintf(
			"insufficient %s balance: have %s, need %s",
			token.Symbol, utils.FormatAmount(balance, token.Decimals), utils.FormatAmount(raw, token.Decimals),
		))
	}

	snapshot, err := s.snapshotRequestIds(ctx, kind, *info, account)
	if err != nil {
		return nil, err
	}

	approval, err := s.ChainClient.Approve(ctx, opts, token.Address, info.VaultAddress, raw)
	if err != nil {
		return nil, err
	}
	submitted, err := s.ChainClient.SubmitRequest(ctx, opts, kind, info.VaultAddress, raw, account, account)
	if err != nil {
		return nil, err
	}
	result := &SubmitRequestResult{
		TxHash:         submitted.Hash.Hex(),
		ApprovalTxHash: approval.Hash.Hex(),
	}

	var created *chain.RequestRecord
	pollErr := utils.PollUntil(ctx, s.cfg.Requests.PollInterval, s.cfg.Requests.PollTimeout, func(ctx context.Context) (bool, error) {
		records, err := s.ChainClient.GetRequestsByUser(ctx, kind, info.VaultAddress, account)
		if err != nil {
			return false, err
		}
		created = newestUnknownRecord(records, snapshot.known, snapshot.nextId)
		return created != nil, nil
	})
	if pollErr != nil {
		log.Ctx(ctx).Warn().Err(pollErr).Str("txHash", result.TxHash).Msg("new request not visible yet")
	}

	now := s.now()
	if created == nil {
		result.Request = provisionalRequest(
			kind, utils.FormatAmount(raw, token.Decimals), account.Hex(), bigToInt64(snapshot.timeLock), now,
		)
		result.Request.TxHash = result.TxHash
		result.Request.ApprovalTxHash = result.ApprovalTxHash
		return result, nil
	}

	request := reconcileRequest(*created, token.Decimals, now)
	request.TxHash = result.TxHash
	request.ApprovalTxHash = result.ApprovalTxHash
	result.Request = request
	result.Reconciled = true

	s.publishRequestEvent(ctx, queueclient.NewRequestSubmittedEvent(
		info.VaultAddress.Hex(), kind.ToString(), request.RequestId, account.Hex(),
		result.TxHash, result.ApprovalTxHash,
	))
	return result, nil
}

type requestSnapshot struct {
	known    map[string]bool
	nextId   *big.Int
	timeLock *big.Int
}

// snapshotRequestIds reads the ids the account already holds, the id the
// vault will hand out next and the time-lock a new request will get.
func (s *Services) snapshotRequestIds(
	ctx context.Context, kind types.RequestType, info chain.VaultInfo, account common.Address,
) (*requestSnapshot, *types.Error) {
	snapshot := &requestSnapshot{known: make(map[string]bool)}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.ChainClient.GetRequestsByUser(gctx, kind, info.VaultAddress, account)
		if err != nil {
			return err
		}
		for _, r := range records {
			snapshot.known[r.RequestId.String()] = true
		}
		return nil
	})
	g.Go(func() error {
		id, err := s.ChainClient.GetNextRequestId(gctx, kind, info.VaultAddress)
		if err != nil {
			return err
		}
		snapshot.nextId = id
		return nil
	})
	g.Go(func() error {
		timeLock, err := s.ChainClient.GetTimeLockPeriod(gctx, info.VaultAddress)
		if err != nil {
			return err
		}
		snapshot.timeLock = timeLock
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, toTypesError(err)
	}
	return snapshot, nil
}

// newestUnknownRecord returns the highest id record that was not present
// before the submission and is not older than nextId.
func newestUnknownRecord(records []chain.RequestRecord, known map[string]bool, nextId *big.Int) *chain.RequestRecord {
	var newest *chain.RequestRecord
	for i := range records {
		r := records[i]
		if known[r.RequestId.String()] {
			continue
		}
		if nextId != nil && r.RequestId.Cmp(nextId) < 0 {
			continue
		}
		if newest == nil || r.RequestId.Cmp(newest.RequestId) > 0 {
			newest = &records[i]
		}
	}
	return newest
}

// provisionalRequest stands in for a submitted request the node has not
// reported yet. Its id is unknown and its time-lock starts now.
func provisionalRequest(kind types.RequestType, amount, controller string, timeLock int64, now time.Time) VaultRequestPublic {
	end := now.Unix() + timeLock
	remaining := utils.Countdown(time.Unix(end, 0), now)
	display := utils.FormatDuration(remaining)
	return VaultRequestPublic{
		Type:             kind,
		Amount:           amount,
		Status:           types.Pending,
		Timestamp:        utils.UnixMilli(now.Unix()),
		EndTimestamp:     utils.UnixMilli(end),
		Controller:       controller,
		CanFinalize:      false,
		RemainingSeconds: remaining,
		RemainingDisplay: display,
		StatusMessage:    pendingStatusMessage(display),
		id:               new(big.Int),
	}
}
