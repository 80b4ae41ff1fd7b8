package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/observability/metrics"
	"github.com/erc7540/vault-api-service/internal/types"
)

type ChainClient struct {
	backend           Backend
	poolManager       common.Address
	investmentManager common.Address
	txTimeout         time.Duration
}

// Dial connects to the configured RPC endpoint.
func Dial(ctx context.Context, cfg *config.ChainConfig) (*ChainClient, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc: %w", err)
	}
	return New(client, cfg), nil
}

func New(backend Backend, cfg *config.ChainConfig) *ChainClient {
	return &ChainClient{
		backend:           backend,
		poolManager:       common.HexToAddress(cfg.PoolManagerAddress),
		investmentManager: common.HexToAddress(cfg.InvestmentManagerAddress),
		txTimeout:         cfg.TxTimeout,
	}
}

func (c *ChainClient) bound(address common.Address, contractABI abi.ABI) *bind.BoundContract {
	return bind.NewBoundContract(address, contractABI, c.backend, c.backend, c.backend)
}

func (c *ChainClient) call(
	ctx context.Context, contract *bind.BoundContract, method string, params ...interface{},
) ([]interface{}, *types.Error) {
	done := metrics.StartChainCallTimer(method)
	var out []interface{}
	err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	done(err)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("method", method).Msg("contract call failed")
		return nil, types.NewChainError(fmt.Errorf("%s: %w", method, err))
	}
	if len(out) == 0 {
		return nil, types.NewChainError(fmt.Errorf("%s: empty result", method))
	}
	return out, nil
}

func (c *ChainClient) callBigInt(
	ctx context.Context, contract *bind.BoundContract, method string, params ...interface{},
) (*big.Int, *types.Error) {
	out, err := c.call(ctx, contract, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *ChainClient) ChainID(ctx context.Context) (*big.Int, *types.Error) {
	done := metrics.StartChainCallTimer("eth_chainId")
	id, err := c.backend.ChainID(ctx)
	done(err)
	if err != nil {
		return nil, types.NewChainError(fmt.Errorf("eth_chainId: %w", err))
	}
	return id, nil
}

func (c *ChainClient) Ping(ctx context.Context) error {
	if _, err := c.ChainID(ctx); err != nil {
		return err
	}
	return nil
}

func (c *ChainClient) GetAllVaults(ctx context.Context) ([]VaultInfo, *types.Error) {
	out, err := c.call(ctx, c.bound(c.poolManager, PoolManagerABI), "getAllVaults")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]VaultInfo)).(*[]VaultInfo), nil
}

func (c *ChainClient) GetVaultState(ctx context.Context, vault common.Address) (*VaultState, *types.Error) {
	out, err := c.call(ctx, c.bound(c.investmentManager, InvestmentManagerABI), "vaultStates", vault)
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, types.NewChainError(fmt.Errorf("vaultStates: unexpected %d outputs", len(out)))
	}
	values := make([]*big.Int, len(out))
	for i := range out {
		values[i] = *abi.ConvertType(out[i], new(*big.Int)).(**big.Int)
	}
	return &VaultState{
		TotalAssets:             values[0],
		PendingDepositRequest:   values[1],
		PendingRedeemRequest:    values[2],
		ClaimableDepositRequest: values[3],
		ClaimableRedeemRequest:  values[4],
	}, nil
}

func (c *ChainClient) GetTimeLockPeriod(ctx context.Context, vault common.Address) (*big.Int, *types.Error) {
	return c.callBigInt(ctx, c.bound(vault, VaultABI), "timeLockPeriod")
}

// GetTokenMetadata reads name, symbol and decimals concurrently.
func (c *ChainClient) GetTokenMetadata(ctx context.Context, token common.Address) (*TokenMetadata, *types.Error) {
	contract := c.bound(token, ERC20ABI)
	metadata := &TokenMetadata{Address: token}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := c.call(gctx, contract, "name")
		if err != nil {
			return err
		}
		metadata.Name = *abi.ConvertType(out[0], new(string)).(*string)
		return nil
	})
	g.Go(func() error {
		out, err := c.call(gctx, contract, "symbol")
		if err != nil {
			return err
		}
		metadata.Symbol = *abi.ConvertType(out[0], new(string)).(*string)
		return nil
	})
	g.Go(func() error {
		out, err := c.call(gctx, contract, "decimals")
		if err != nil {
			return err
		}
		metadata.Decimals = *abi.ConvertType(out[0], new(uint8)).(*uint8)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, asTypesError(err)
	}
	return metadata, nil
}

func (c *ChainClient) GetBalance(ctx context.Context, token, owner common.Address) (*big.Int, *types.Error) {
	return c.callBigInt(ctx, c.bound(token, ERC20ABI), "balanceOf", owner)
}

func (c *ChainClient) GetAllowance(
	ctx context.Context, token, owner, spender common.Address,
) (*big.Int, *types.Error) {
	return c.callBigInt(ctx, c.bound(token, ERC20ABI), "allowance", owner, spender)
}

func (c *ChainClient) GetRequestsByUser(
	ctx context.Context, kind types.RequestType, vault, user common.Address,
) ([]RequestRecord, *types.Error) {
	contract := c.bound(c.investmentManager, InvestmentManagerABI)
	switch kind {
	case types.DepositRequest:
		out, err := c.call(ctx, contract, "getDepositRequestsByUser", vault, user)
		if err != nil {
			return nil, err
		}
		raw := *abi.ConvertType(out[0], new([]depositRequest)).(*[]depositRequest)
		records := make([]RequestRecord, 0, len(raw))
		for _, r := range raw {
			records = append(records, r.toRecord())
		}
		return records, nil
	case types.RedeemRequest:
		out, err := c.call(ctx, contract, "getRedeemRequestsByUser", vault, user)
		if err != nil {
			return nil, err
		}
		raw := *abi.ConvertType(out[0], new([]redeemRequest)).(*[]redeemRequest)
		records := make([]RequestRecord, 0, len(raw))
		for _, r := range raw {
			records = append(records, r.toRecord())
		}
		return records, nil
	default:
		return nil, unknownKindError(kind)
	}
}

func (c *ChainClient) GetNextRequestId(
	ctx context.Context, kind types.RequestType, vault common.Address,
) (*big.Int, *types.Error) {
	switch kind {
	case types.DepositRequest:
		return c.callBigInt(ctx, c.bound(vault, VaultABI), "nextDepositRequestId")
	case types.RedeemRequest:
		return c.callBigInt(ctx, c.bound(vault, VaultABI), "nextRedeemRequestId")
	default:
		return nil, unknownKindError(kind)
	}
}

func (c *ChainClient) ConvertToShares(
	ctx context.Context, vault common.Address, assets *big.Int,
) (*big.Int, *types.Error) {
	return c.callBigInt(ctx, c.bound(vault, VaultABI), "convertToShares", assets)
}

func (c *ChainClient) ConvertToAssets(
	ctx context.Context, vault common.Address, shares *big.Int,
) (*big.Int, *types.Error) {
	return c.callBigInt(ctx, c.bound(vault, VaultABI), "convertToAssets", shares)
}

func (c *ChainClient) Approve(
	ctx context.Context, opts *bind.TransactOpts, token, spender common.Address, amount *big.Int,
) (*TxResult, *types.Error) {
	return c.transact(ctx, opts, c.bound(token, ERC20ABI), "approve", spender, amount)
}

func (c *ChainClient) SubmitRequest(
	ctx context.Context, opts *bind.TransactOpts, kind types.RequestType,
	vault common.Address, amount *big.Int, controller, owner common.Address,
) (*TxResult, *types.Error) {
	contract := c.bound(vault, VaultABI)
	switch kind {
	case types.DepositRequest:
		return c.transact(ctx, opts, contract, "requestDeposit", amount, controller, owner)
	case types.RedeemRequest:
		return c.transact(ctx, opts, contract, "requestRedeem", amount, controller, owner)
	default:
		return nil, unknownKindError(kind)
	}
}

func (c *ChainClient) FinalizeRequest(
	ctx context.Context, opts *bind.TransactOpts, kind types.RequestType,
	vault, receiver, controller common.Address, requestId *big.Int,
) (*TxResult, *types.Error) {
	contract := c.bound(vault, VaultABI)
	switch kind {
	case types.DepositRequest:
		return c.transact(ctx, opts, contract, "deposit", receiver, controller, requestId)
	case types.RedeemRequest:
		return c.transact(ctx, opts, contract, "redeem", receiver, controller, requestId)
	default:
		return nil, unknownKindError(kind)
	}
}

// transact sends the transaction and blocks until it is mined or the tx
// timeout elapses. A mined transaction with a failed status is a revert.
func (c *ChainClient) transact(
	ctx context.Context, opts *bind.TransactOpts, contract *bind.BoundContract,
	method string, params ...interface{},
) (*TxResult, *types.Error) {
	if opts == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusPreconditionFailed, types.WalletNotConnected, "no signer available",
		)
	}
	txCtx, cancel := context.WithTimeout(ctx, c.txTimeout)
	defer cancel()

	sendOpts := *opts
	sendOpts.Context = txCtx
	tx, err := contract.Transact(&sendOpts, method, params...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("method", method).Msg("failed to send transaction")
		metrics.RecordTransactionOutcome(method, metrics.Error)
		return nil, classifySendError(method, err)
	}
	log.Ctx(ctx).Info().Str("method", method).Str("txHash", tx.Hash().Hex()).Msg("transaction sent")

	receipt, err := bind.WaitMined(txCtx, c.backend, tx)
	if err != nil {
		metrics.RecordTransactionOutcome(method, metrics.Error)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, types.NewError(
				http.StatusGatewayTimeout, types.RequestTimeout,
				fmt.Errorf("transaction %s was not mined in time", tx.Hash().Hex()),
			)
		}
		return nil, types.NewChainError(fmt.Errorf("waiting for %s: %w", tx.Hash().Hex(), err))
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		log.Ctx(ctx).Warn().Str("method", method).Str("txHash", tx.Hash().Hex()).Msg("transaction reverted")
		metrics.RecordTransactionOutcome(method, metrics.Reverted)
		return nil, types.NewError(
			http.StatusUnprocessableEntity, types.TransactionReverted,
			fmt.Errorf("transaction %s reverted", tx.Hash().Hex()),
		)
	}
	metrics.RecordTransactionOutcome(method, metrics.Success)
	return &TxResult{Hash: tx.Hash(), Receipt: receipt}, nil
}

// classifySendError maps errors raised before the transaction reaches the
// mempool. Gas estimation surfaces contract reverts as "execution reverted".
func classifySendError(method string, err error) *types.Error {
	switch {
	case errors.Is(err, bind.ErrNotAuthorized):
		return types.NewError(http.StatusPreconditionFailed, types.WalletNotConnected, err)
	case strings.Contains(err.Error(), "execution reverted"):
		return types.NewError(
			http.StatusUnprocessableEntity, types.TransactionReverted, fmt.Errorf("%s: %w", method, err),
		)
	default:
		return types.NewChainError(fmt.Errorf("%s: %w", method, err))
	}
}

func unknownKindError(kind types.RequestType) *types.Error {
	return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unknown request type: "+kind.ToString())
}

func asTypesError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	return types.NewChainError(err)
}
