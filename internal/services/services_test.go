package services

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erc7540/vault-api-service/internal/clients"
	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/utils"
	"github.com/erc7540/vault-api-service/internal/wallet"
	testmock "github.com/erc7540/vault-api-service/tests/mocks"
)

const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testChainId = 31337
)

var (
	fixedNow = time.Unix(1_700_000_000, 0)

	testVault = chain.VaultInfo{
		VaultId:      big.NewInt(1),
		VaultAddress: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		CreatedAt:    big.NewInt(1_690_000_000),
		Asset:        common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"),
		Share:        common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"),
	}
	assetMeta = &chain.TokenMetadata{Address: testVault.Asset, Name: "USD Coin", Symbol: "USDC", Decimals: 6}
	shareMeta = &chain.TokenMetadata{Address: testVault.Share, Name: "Vault USDC", Symbol: "vUSDC", Decimals: 18}
)

type testEnv struct {
	services  *Services
	chain     *testmock.ChainClientInterface
	db        *testmock.DBClient
	publisher *testmock.QueueClient
	session   *wallet.Session
}

func setupServices(t *testing.T, connected bool) *testEnv {
	t.Helper()
	utils.SetSleepFunc(func(time.Duration) {})
	t.Cleanup(utils.ResetSleepFunc)

	chainMock := new(testmock.ChainClientInterface)
	chainMock.On("ChainID", mock.Anything).Return(big.NewInt(testChainId), nil)
	chainMock.On("GetAllVaults", mock.Anything).Return([]chain.VaultInfo{testVault}, nil)
	chainMock.On("GetTokenMetadata", mock.Anything, testVault.Asset).Return(assetMeta, nil)
	chainMock.On("GetTokenMetadata", mock.Anything, testVault.Share).Return(shareMeta, nil)

	dbMock := new(testmock.DBClient)
	publisher := new(testmock.QueueClient)
	publisher.On("SendMessage", mock.Anything, mock.Anything).Return(nil)
	publisher.On("GetQueueName").Return("vault_request_events")

	session, err := wallet.NewSession(&config.ChainConfig{PrivateKey: testKey, ChainId: testChainId}, chainMock)
	require.NoError(t, err)
	if connected {
		require.NoError(t, session.Connect(context.Background()))
	}

	cfg := &config.Config{Requests: config.DefaultRequestsConfig()}
	s, err := New(context.Background(), cfg, dbMock, &clients.Clients{Chain: chainMock}, session, publisher)
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }
	t.Cleanup(s.Close)

	return &testEnv{services: s, chain: chainMock, db: dbMock, publisher: publisher, session: session}
}

func record(kind types.RequestType, id int64, amount *big.Int, age int64, claimable, processed bool) chain.RequestRecord {
	return chain.RequestRecord{
		Kind:        kind,
		RequestId:   big.NewInt(id),
		Vault:       testVault.VaultAddress,
		Amount:      amount,
		Controller:  common.HexToAddress(testAccount),
		RequestedAt: big.NewInt(fixedNow.Unix() - age),
		Duration:    big.NewInt(3600),
		Claimable:   claimable,
		Processed:   processed,
	}
}

func bigEq(want *big.Int) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(want) == 0 })
}

func TestDoHealthCheck(t *testing.T) {
	env := setupServices(t, false)
	env.db.On("Ping", mock.Anything).Return(nil).Once()
	env.chain.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

	err := env.services.DoHealthCheck(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestChainChangeResetsVaultResolution(t *testing.T) {
	env := setupServices(t, true)
	_, err := env.services.resolveVault(context.Background(), "1")
	require.Nil(t, err)
	_, ok := env.services.lookupVault("1")
	require.True(t, ok)

	env.session.UpdateChainID(big.NewInt(1))

	_, ok = env.services.lookupVault("1")
	assert.False(t, ok, "vaults should be resolved again after a chain change")
}
