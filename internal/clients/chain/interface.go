package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/erc7540/vault-api-service/internal/types"
)

// Backend is the subset of ethclient.Client the chain client relies on.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

type ChainClientInterface interface {
	ChainID(ctx context.Context) (*big.Int, *types.Error)
	Ping(ctx context.Context) error
	GetAllVaults(ctx context.Context) ([]VaultInfo, *types.Error)
	GetVaultState(ctx context.Context, vault common.Address) (*VaultState, *types.Error)
	GetTimeLockPeriod(ctx context.Context, vault common.Address) (*big.Int, *types.Error)
	GetTokenMetadata(ctx context.Context, token common.Address) (*TokenMetadata, *types.Error)
	GetBalance(ctx context.Context, token, owner common.Address) (*big.Int, *types.Error)
	GetAllowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, *types.Error)
	GetRequestsByUser(
		ctx context.Context, kind types.RequestType, vault, user common.Address,
	) ([]RequestRecord, *types.Error)
	GetNextRequestId(ctx context.Context, kind types.RequestType, vault common.Address) (*big.Int, *types.Error)
	ConvertToShares(ctx context.Context, vault common.Address, assets *big.Int) (*big.Int, *types.Error)
	ConvertToAssets(ctx context.Context, vault common.Address, shares *big.Int) (*big.Int, *types.Error)
	Approve(
		ctx context.Context, opts *bind.TransactOpts, token, spender common.Address, amount *big.Int,
	) (*TxResult, *types.Error)
	SubmitRequest(
		ctx context.Context, opts *bind.TransactOpts, kind types.RequestType,
		vault common.Address, amount *big.Int, controller, owner common.Address,
	) (*TxResult, *types.Error)
	FinalizeRequest(
		ctx context.Context, opts *bind.TransactOpts, kind types.RequestType,
		vault, receiver, controller common.Address, requestId *big.Int,
	) (*TxResult, *types.Error)
}
