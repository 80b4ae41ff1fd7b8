package clients

import (
	"context"

	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/config"
)

type Clients struct {
	Chain chain.ChainClientInterface
}

func New(ctx context.Context, cfg *config.Config) (*Clients, error) {
	chainClient, err := chain.Dial(ctx, &cfg.Chain)
	if err != nil {
		return nil, err
	}

	return &Clients{
		Chain: chainClient,
	}, nil
}
