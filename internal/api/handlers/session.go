package handlers

import (
	"net/http"

	"github.com/erc7540/vault-api-service/internal/types"
)

// GetSession @Summary Get wallet session
// @Description Returns whether a wallet is connected, its account and the chain id
// @Produce json
// @Success 200 {object} PublicResponse[wallet.State] "Session state"
// @Router /v1/session [get]
func (h *Handler) GetSession(request *http.Request) (*Result, *types.Error) {
	return NewResult(h.services.GetSessionState()), nil
}

// ConnectWallet @Summary Connect wallet
// @Description Connects the configured signer after checking the node's chain id
// @Produce json
// @Success 200 {object} PublicResponse[wallet.State] "Session state"
// @Failure 412 {object} types.Error "Error: Wallet not connected"
// @Failure 502 {object} types.Error "Error: Chain unavailable"
// @Router /v1/session/connect [post]
func (h *Handler) ConnectWallet(request *http.Request) (*Result, *types.Error) {
	state, err := h.services.ConnectWallet(request.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(state), nil
}

// DisconnectWallet @Summary Disconnect wallet
// @Produce json
// @Success 200 {object} PublicResponse[wallet.State] "Session state"
// @Router /v1/session/disconnect [post]
func (h *Handler) DisconnectWallet(request *http.Request) (*Result, *types.Error) {
	return NewResult(h.services.DisconnectWallet()), nil
}
