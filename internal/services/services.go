package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/clients"
	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/db"
	queueclient "github.com/erc7540/vault-api-service/internal/queue/client"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/wallet"
)

// Service layer contains the business logic and is used to interact with
// the contracts, the database and the event queue.
type Services struct {
	DbClient       db.DBClient
	ChainClient    chain.ChainClientInterface
	Session        *wallet.Session
	EventPublisher queueclient.QueueClient
	cfg            *config.Config

	// writes are strictly sequenced so approvals are mined before requests
	// and nonces never race
	writeMu sync.Mutex

	vaultsMu    sync.RWMutex
	vaults      map[string]chain.VaultInfo
	unsubscribe func()

	now func() time.Time
}

func New(
	ctx context.Context, cfg *config.Config, dbClient db.DBClient, clients *clients.Clients,
	session *wallet.Session, publisher queueclient.QueueClient,
) (*Services, error) {
	s := &Services{
		DbClient:       dbClient,
		ChainClient:    clients.Chain,
		Session:        session,
		EventPublisher: publisher,
		cfg:            cfg,
		now:            time.Now,
	}
	s.unsubscribe = session.Subscribe(s.onSessionEvent)
	return s, nil
}

// Close detaches the services from the wallet session.
func (s *Services) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *Services) onSessionEvent(event wallet.Event) {
	if event.Type != wallet.ChainChanged {
		return
	}
	log.Info().Str("chainId", event.ChainID.String()).Msg("chain changed, resetting vault resolution")
	s.vaultsMu.Lock()
	s.vaults = nil
	s.vaultsMu.Unlock()
}

// DoHealthCheck checks the health of the services by pinging the database and the chain node.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	if err := s.DbClient.Ping(ctx); err != nil {
		return err
	}
	return s.ChainClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
