package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/erc7540/vault-api-service/internal/types"
)

// VaultInfo mirrors the PoolManager VaultInfo tuple, field order included.
type VaultInfo struct {
	VaultId      *big.Int
	VaultAddress common.Address
	CreatedAt    *big.Int
	Asset        common.Address
	Share        common.Address
}

type VaultState struct {
	TotalAssets             *big.Int
	PendingDepositRequest   *big.Int
	PendingRedeemRequest    *big.Int
	ClaimableDepositRequest *big.Int
	ClaimableRedeemRequest  *big.Int
}

type TokenMetadata struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
}

// RequestRecord is a deposit or redeem request as reported by the
// InvestmentManager. Amount is in assets for deposits and in shares for redeems.
type RequestRecord struct {
	Kind        types.RequestType
	RequestId   *big.Int
	Vault       common.Address
	Amount      *big.Int
	Controller  common.Address
	RequestedAt *big.Int
	Duration    *big.Int
	Claimable   bool
	Processed   bool
}

type TxResult struct {
	Hash    common.Hash
	Receipt *ethtypes.Receipt
}

type depositRequest struct {
	RequestId   *big.Int
	Vault       common.Address
	Assets      *big.Int
	Controller  common.Address
	RequestedAt *big.Int
	Duration    *big.Int
	Claimable   bool
	Processed   bool
}

type redeemRequest struct {
	RequestId   *big.Int
	Vault       common.Address
	Shares      *big.Int
	Controller  common.Address
	RequestedAt *big.Int
	Duration    *big.Int
	Claimable   bool
	Processed   bool
}

func (r depositRequest) toRecord() RequestRecord {
	return RequestRecord{
		Kind:        types.DepositRequest,
		RequestId:   r.RequestId,
		Vault:       r.Vault,
		Amount:      r.Assets,
		Controller:  r.Controller,
		RequestedAt: r.RequestedAt,
		Duration:    r.Duration,
		Claimable:   r.Claimable,
		Processed:   r.Processed,
	}
}

func (r redeemRequest) toRecord() RequestRecord {
	return RequestRecord{
		Kind:        types.RedeemRequest,
		RequestId:   r.RequestId,
		Vault:       r.Vault,
		Amount:      r.Shares,
		Controller:  r.Controller,
		RequestedAt: r.RequestedAt,
		Duration:    r.Duration,
		Claimable:   r.Claimable,
		Processed:   r.Processed,
	}
}
