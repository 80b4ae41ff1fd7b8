package handlers

import (
	"net/http"

	"github.com/erc7540/vault-api-service/internal/services"
	"github.com/erc7540/vault-api-service/internal/types"
)

// ListVaults @Summary List vaults
// @Description Lists every vault registered in the pool manager with its current state
// @Produce json
// @Success 200 {object} PublicResponse[[]services.VaultPublic]{array} "List of vaults"
// @Failure 502 {object} types.Error "Error: Chain unavailable"
// @Router /v1/vaults [get]
func (h *Handler) ListVaults(request *http.Request) (*Result, *types.Error) {
	vaults, err := h.services.ListVaults(request.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(vaults), nil
}

// GetVault @Summary Get a vault
// @Description Returns a vault. Balances are included for the given user or the connected account
// @Produce json
// @Param vault_id path string true "Vault id or vault address"
// @Param user query string false "User address"
// @Success 200 {object} PublicResponse[services.VaultDetailsPublic] "Vault"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/vaults/{vault_id} [get]
func (h *Handler) GetVault(request *http.Request) (*Result, *types.Error) {
	vaultId, err := parseVaultIdParam(request)
	if err != nil {
		return nil, err
	}
	vault, err := h.services.GetVault(request.Context(), vaultId, request.URL.Query().Get("user"))
	if err != nil {
		return nil, err
	}
	return NewResult(vault), nil
}

// ConvertAmount @Summary Preview a conversion
// @Description Converts assets to shares or shares to assets at the vault's current rate
// @Produce json
// @Param vault_id path string true "Vault id or vault address"
// @Param direction query string true "Conversion direction" Enums(to_shares, to_assets)
// @Param amount query string true "Amount in token units"
// @Success 200 {object} PublicResponse[services.ConversionPublic] "Conversion"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/vaults/{vault_id}/convert [get]
func (h *Handler) ConvertAmount(request *http.Request) (*Result, *types.Error) {
	vaultId, err := parseVaultIdParam(request)
	if err != nil {
		return nil, err
	}
	direction, err := parseRequiredQuery(request, "direction")
	if err != nil {
		return nil, err
	}
	amount, err := parseRequiredQuery(request, "amount")
	if err != nil {
		return nil, err
	}
	conversion, err := h.services.ConvertAmount(
		request.Context(), vaultId, services.ConversionDirection(direction), amount,
	)
	if err != nil {
		return nil, err
	}
	return NewResult(conversion), nil
}
