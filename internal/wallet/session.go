package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"

	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/types"
)

var (
	ErrNotConnected  = errors.New("wallet is not connected")
	ErrNoSigner      = errors.New("no signing key configured")
	ErrChainMismatch = errors.New("connected to an unexpected chain")
)

type EventType string

const (
	Connected      EventType = "connected"
	Disconnected   EventType = "disconnected"
	AccountChanged EventType = "account_changed"
	ChainChanged   EventType = "chain_changed"
)

type Event struct {
	Type    EventType
	Account common.Address
	ChainID *big.Int
}

type Listener func(Event)

// ChainIDReader is satisfied by the chain client.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, *types.Error)
}

// Session holds the signer the service acts with. It starts disconnected;
// transactions are only signed while it is connected.
type Session struct {
	mu              sync.RWMutex
	chain           ChainIDReader
	key             *ecdsa.PrivateKey
	account         common.Address
	chainID         *big.Int
	expectedChainID *big.Int
	connected       bool

	listenersMu    sync.Mutex
	listeners      map[int]Listener
	nextListenerID int
}

type State struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account,omitempty"`
	ChainId   string `json:"chain_id,omitempty"`
	HasSigner bool   `json:"has_signer"`
}

func NewSession(cfg *config.ChainConfig, chain ChainIDReader) (*Session, error) {
	s := &Session{
		chain:     chain,
		listeners: make(map[int]Listener),
	}
	if cfg.ChainId > 0 {
		s.expectedChainID = big.NewInt(cfg.ChainId)
	}
	if cfg.PrivateKey != "" {
		key, err := parseKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		s.key = key
		s.account = crypto.PubkeyToAddress(key.PublicKey)
	}
	return s, nil
}

func parseKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// Connect reads the chain id from the node and activates the session.
func (s *Session) Connect(ctx context.Context) error {
	chainID, chainErr := s.chain.ChainID(ctx)
	if chainErr != nil {
		return chainErr
	}

	s.mu.Lock()
	if s.key == nil {
		s.mu.Unlock()
		return ErrNoSigner
	}
	if s.expectedChainID != nil && s.expectedChainID.Cmp(chainID) != 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: got %s, want %s", ErrChainMismatch, chainID, s.expectedChainID)
	}
	wasConnected := s.connected
	s.connected = true
	s.chainID = chainID
	event := Event{Type: Connected, Account: s.account, ChainID: chainID}
	s.mu.Unlock()

	if !wasConnected {
		log.Ctx(ctx).Info().Str("account", event.Account.Hex()).Str("chainId", chainID.String()).Msg("wallet connected")
		s.emit(event)
	}
	return nil
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.connected = false
	event := Event{Type: Disconnected, Account: s.account, ChainID: s.chainID}
	s.mu.Unlock()

	log.Info().Str("account", event.Account.Hex()).Msg("wallet disconnected")
	s.emit(event)
}

// SwitchAccount replaces the signing key.
func (s *Session) SwitchAccount(hexKey string) error {
	key, err := parseKey(hexKey)
	if err != nil {
		return err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)

	s.mu.Lock()
	changed := s.account != address
	s.key = key
	s.account = address
	event := Event{Type: AccountChanged, Account: address, ChainID: s.chainID}
	s.mu.Unlock()

	if changed {
		s.emit(event)
	}
	return nil
}

// UpdateChainID records the chain id reported by the node. A change to a
// chain other than the expected one disconnects the session.
func (s *Session) UpdateChainID(chainID *big.Int) {
	if chainID == nil {
		return
	}
	s.mu.Lock()
	if s.chainID != nil && s.chainID.Cmp(chainID) == 0 {
		s.mu.Unlock()
		return
	}
	s.chainID = new(big.Int).Set(chainID)
	events := []Event{{Type: ChainChanged, Account: s.account, ChainID: s.chainID}}
	if s.connected && s.expectedChainID != nil && s.expectedChainID.Cmp(chainID) != 0 {
		s.connected = false
		events = append(events, Event{Type: Disconnected, Account: s.account, ChainID: s.chainID})
	}
	s.mu.Unlock()

	log.Warn().Str("chainId", chainID.String()).Msg("chain changed")
	for _, event := range events {
		s.emit(event)
	}
}

// Subscribe registers fn for every session event. The returned func removes it.
func (s *Session) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			delete(s.listeners, id)
		})
	}
}

func (s *Session) emit(event Event) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// Account returns the active account, ok is false while disconnected.
func (s *Session) Account() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.connected
}

func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := State{Connected: s.connected, HasSigner: s.key != nil}
	if s.connected {
		state.Account = s.account.Hex()
	}
	if s.chainID != nil {
		state.ChainId = s.chainID.String()
	}
	return state
}

// TransactOpts returns EIP-155 signing options for the active account.
func (s *Session) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected || s.key == nil {
		return nil, ErrNotConnected
	}
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
