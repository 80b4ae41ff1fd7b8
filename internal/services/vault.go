package services

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
)

type VaultPublic struct {
	VaultId                 string `json:"vault_id"`
	VaultAddress            string `json:"vault_address"`
	AssetAddress            string `json:"asset_address"`
	ShareAddress            string `json:"share_address"`
	CreatedAt               int64  `json:"created_at"`
	Name                    string `json:"name"`
	Symbol                  string `json:"symbol"`
	AssetName               string `json:"asset_name"`
	AssetSymbol             string `json:"asset_symbol"`
	AssetDecimals           uint8  `json:"asset_decimals"`
	ShareDecimals           uint8  `json:"share_decimals"`
	Tvl                     string `json:"tvl"`
	PendingDepositRequest   string `json:"pending_deposit_request"`
	PendingRedeemRequest    string `json:"pending_redeem_request"`
	ClaimableDepositRequest string `json:"claimable_deposit_request"`
	ClaimableRedeemRequest  string `json:"claimable_redeem_request"`
	TimeLockPeriod          int64  `json:"time_lock_period"`
	TimeLockDisplay         string `json:"time_lock_display"`
}

type VaultDetailsPublic struct {
	VaultPublic
	User           string `json:"user,omitempty"`
	AssetBalance   string `json:"asset_balance,omitempty"`
	ShareBalance   string `json:"share_balance,omitempty"`
	AssetAllowance string `json:"asset_allowance,omitempty"`
}

type ConversionDirection string

const (
	ToShares ConversionDirection = "to_shares"
	ToAssets ConversionDirection = "to_assets"
)

type ConversionPublic struct {
	Direction ConversionDirection `json:"direction"`
	Amount    string              `json:"amount"`
	Result    string              `json:"result"`
}

// vaultTokens is the resolved vault together with its token metadata.
type vaultTokens struct {
	info  chain.VaultInfo
	asset *chain.TokenMetadata
	share *chain.TokenMetadata
}

func (v *vaultTokens) tokenFor(kind types.RequestType) *chain.TokenMetadata {
	if kind == types.RedeemRequest {
		return v.share
	}
	return v.asset
}

func toTypesError(err error) *types.Error {
	if err == nil {
		return nil
	}
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	return types.NewInternalServiceError(err)
}

func vaultKey(info chain.VaultInfo) string {
	return info.VaultId.String()
}

// refreshVaults reloads the vault registry from the pool manager.
func (s *Services) refreshVaults(ctx context.Context) ([]chain.VaultInfo, *types.Error) {
	vaults, err := s.ChainClient.GetAllVaults(ctx)
	if err != nil {
		return nil, err
	}
	resolved := make(map[string]chain.VaultInfo, len(vaults))
	for _, v := range vaults {
		resolved[vaultKey(v)] = v
	}
	s.vaultsMu.Lock()
	s.vaults = resolved
	s.vaultsMu.Unlock()
	return vaults, nil
}

func (s *Services) lookupVault(vaultId string) (chain.VaultInfo, bool) {
	s.vaultsMu.RLock()
	defer s.vaultsMu.RUnlock()
	if s.vaults == nil {
		return chain.VaultInfo{}, false
	}
	if v, ok := s.vaults[vaultId]; ok {
		return v, true
	}
	if common.IsHexAddress(vaultId) {
		address := common.HexToAddress(vaultId)
		for _, v := range s.vaults {
			if v.VaultAddress == address {
				return v, true
			}
		}
	}
	return chain.VaultInfo{}, false
}

// resolveVault finds a vault by its numeric id or its address. The registry
// is reloaded once on a miss.
func (s *Services) resolveVault(ctx context.Context, vaultId string) (*chain.VaultInfo, *types.Error) {
	vaultId = strings.TrimSpace(vaultId)
	if !utils.IsValidRequestId(vaultId) && !utils.IsValidAddress(vaultId) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid vault id")
	}
	if v, ok := s.lookupVault(vaultId); ok {
		return &v, nil
	}
	if _, err := s.refreshVaults(ctx); err != nil {
		return nil, err
	}
	if v, ok := s.lookupVault(vaultId); ok {
		return &v, nil
	}
	return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "vault not found")
}

func (s *Services) loadVaultTokens(ctx context.Context, info chain.VaultInfo) (*vaultTokens, *types.Error) {
	tokens := &vaultTokens{info: info}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		asset, err := s.ChainClient.GetTokenMetadata(gctx, info.Asset)
		if err != nil {
			return err
		}
		tokens.asset = asset
		return nil
	})
	g.Go(func() error {
		share, err := s.ChainClient.GetTokenMetadata(gctx, info.Share)
		if err != nil {
			return err
		}
		tokens.share = share
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, toTypesError(err)
	}
	return tokens, nil
}

func (s *Services) loadVault(ctx context.Context, info chain.VaultInfo) (*VaultPublic, *types.Error) {
	var (
		tokens   *vaultTokens
		state    *chain.VaultState
		timeLock *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.loadVaultTokens(gctx, info)
		if err != nil {
			return err
		}
		tokens = t
		return nil
	})
	g.Go(func() error {
		st, err := s.ChainClient.GetVaultState(gctx, info.VaultAddress)
		if err != nil {
			return err
		}
		state = st
		return nil
	})
	g.Go(func() error {
		period, err := s.ChainClient.GetTimeLockPeriod(gctx, info.VaultAddress)
		if err != nil {
			return err
		}
		timeLock = period
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, toTypesError(err)
	}
	return fromVaultState(info, tokens, state, timeLock), nil
}

func fromVaultState(info chain.VaultInfo, tokens *vaultTokens, state *chain.VaultState, timeLock *big.Int) *VaultPublic {
	assetDecimals := tokens.asset.Decimals
	shareDecimals := tokens.share.Decimals
	return &VaultPublic{
		VaultId:                 info.VaultId.String(),
		VaultAddress:            info.VaultAddress.Hex(),
		AssetAddress:            info.Asset.Hex(),
		ShareAddress:            info.Share.Hex(),
		CreatedAt:               utils.UnixMilli(bigToInt64(info.CreatedAt)),
		Name:                    tokens.share.Name,
		Symbol:                  tokens.share.Symbol,
		AssetName:               tokens.asset.Name,
		AssetSymbol:             tokens.asset.Symbol,
		AssetDecimals:           assetDecimals,
		ShareDecimals:           shareDecimals,
		Tvl:                     utils.FormatAmount(state.TotalAssets, assetDecimals),
		PendingDepositRequest:   utils.FormatAmount(state.PendingDepositRequest, assetDecimals),
		PendingRedeemRequest:    utils.FormatAmount(state.PendingRedeemRequest, shareDecimals),
		ClaimableDepositRequest: utils.FormatAmount(state.ClaimableDepositRequest, assetDecimals),
		ClaimableRedeemRequest:  utils.FormatAmount(state.ClaimableRedeemRequest, shareDecimals),
		TimeLockPeriod:          bigToInt64(timeLock),
		TimeLockDisplay:         utils.FormatDuration(bigToInt64(timeLock)),
	}
}

func bigToInt64(v *big.Int) int64 {
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}

// ListVaults returns every vault registered in the pool manager.
func (s *Services) ListVaults(ctx context.Context) ([]VaultPublic, *types.Error) {
	infos, err := s.refreshVaults(ctx)
	if err != nil {
		return nil, err
	}

	vaults := make([]VaultPublic, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			v, err := s.loadVault(gctx, info)
			if err != nil {
				return err
			}
			vaults[i] = *v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load vaults")
		return nil, toTypesError(err)
	}
	return vaults, nil
}

// GetVault returns a vault with the balances of user. An empty user falls
// back to the connected account; without one the balances are omitted.
func (s *Services) GetVault(ctx context.Context, vaultId, user string) (*VaultDetailsPublic, *types.Error) {
	info, err := s.resolveVault(ctx, vaultId)
	if err != nil {
		return nil, err
	}
	owner, hasOwner, err := s.resolveUser(user, false)
	if err != nil {
		return nil, err
	}

	details := &VaultDetailsPublic{}
	var assetBalance, shareBalance, allowance *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.loadVault(gctx, *info)
		if err != nil {
			return err
		}
		details.VaultPublic = *v
		return nil
	})
	if hasOwner {
		g.Go(func() error {
			b, err := s.ChainClient.GetBalance(gctx, info.Asset, owner)
			if err != nil {
				return err
			}
			assetBalance = b
			return nil
		})
		g.Go(func() error {
			b, err := s.ChainClient.GetBalance(gctx, info.Share, owner)
			if err != nil {
				return err
			}
			shareBalance = b
			return nil
		})
		g.Go(func() error {
			a, err := s.ChainClient.GetAllowance(gctx, info.Asset, owner, info.VaultAddress)
			if err != nil {
				return err
			}
			allowance = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, toTypesError(err)
	}

	if hasOwner {
		details.User = owner.Hex()
		details.AssetBalance = utils.FormatAmount(assetBalance, details.AssetDecimals)
		details.ShareBalance = utils.FormatAmount(shareBalance, details.ShareDecimals)
		details.AssetAllowance = utils.FormatAmount(allowance, details.AssetDecimals)
	}
	return details, nil
}

// ConvertAmount previews a conversion between assets and shares at the
// vault's current rate.
func (s *Services) ConvertAmount(
	ctx context.Context, vaultId string, direction ConversionDirection, amount string,
) (*ConversionPublic, *types.Error) {
	if direction != ToShares && direction != ToAssets {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "direction must be to_shares or to_assets")
	}
	if err := utils.ValidateAmount(amount); err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	info, err := s.resolveVault(ctx, vaultId)
	if err != nil {
		return nil, err
	}
	tokens, err := s.loadVaultTokens(ctx, *info)
	if err != nil {
		return nil, err
	}

	from, to := tokens.asset, tokens.share
	if direction == ToAssets {
		from, to = tokens.share, tokens.asset
	}
	raw, parseErr := utils.ParseAmount(amount, from.Decimals)
	if parseErr != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, parseErr)
	}

	var converted *big.Int
	if direction == ToShares {
		converted, err = s.ChainClient.ConvertToShares(ctx, info.VaultAddress, raw)
	} else {
		converted, err = s.ChainClient.ConvertToAssets(ctx, info.VaultAddress, raw)
	}
	if err != nil {
		return nil, err
	}
	return &ConversionPublic{
		Direction: direction,
		Amount:    utils.FormatAmount(raw, from.Decimals),
		Result:    utils.FormatAmount(converted, to.Decimals),
	}, nil
}

// resolveUser parses an explicit user address or falls back to the session
// account. With required set, having neither is a bad request.
func (s *Services) resolveUser(user string, required bool) (common.Address, bool, *types.Error) {
	if user != "" {
		if !utils.IsValidAddress(user) {
			return common.Address{}, false, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid user address")
		}
		return common.HexToAddress(user), true, nil
	}
	if account, ok := s.Session.Account(); ok {
		return account, true, nil
	}
	if required {
		return common.Address{}, false, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "user is required when no wallet is connected",
		)
	}
	return common.Address{}, false, nil
}

// requireAccount returns the connected account or a wallet error.
func (s *Services) requireAccount() (common.Address, *types.Error) {
	account, ok := s.Session.Account()
	if !ok {
		return common.Address{}, types.NewErrorWithMsg(
			http.StatusPreconditionFailed, types.WalletNotConnected, "please connect a wallet first",
		)
	}
	return account, nil
}
