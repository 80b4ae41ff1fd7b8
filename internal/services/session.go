package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/wallet"
)

func (s *Services) GetSessionState() wallet.State {
	return s.Session.State()
}

func (s *Services) ConnectWallet(ctx context.Context) (*wallet.State, *types.Error) {
	if err := s.Session.Connect(ctx); err != nil {
		var typed *types.Error
		switch {
		case errors.As(err, &typed):
			return nil, typed
		case errors.Is(err, wallet.ErrNoSigner), errors.Is(err, wallet.ErrChainMismatch):
			log.Ctx(ctx).Warn().Err(err).Msg("wallet connection rejected")
			return nil, types.NewError(http.StatusPreconditionFailed, types.WalletNotConnected, err)
		default:
			return nil, types.NewInternalServiceError(err)
		}
	}
	state := s.Session.State()
	return &state, nil
}

func (s *Services) DisconnectWallet() wallet.State {
	s.Session.Disconnect()
	return s.Session.State()
}
