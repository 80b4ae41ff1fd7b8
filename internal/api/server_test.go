package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erc7540/vault-api-service/internal/clients"
	"github.com/erc7540/vault-api-service/internal/clients/chain"
	"github.com/erc7540/vault-api-service/internal/config"
	"github.com/erc7540/vault-api-service/internal/services"
	"github.com/erc7540/vault-api-service/internal/types"
	"github.com/erc7540/vault-api-service/internal/wallet"
	testmock "github.com/erc7540/vault-api-service/tests/mocks"
)

const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var testVault = chain.VaultInfo{
	VaultId:      big.NewInt(1),
	VaultAddress: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	CreatedAt:    big.NewInt(1_690_000_000),
	Asset:        common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"),
	Share:        common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"),
}

type testServer struct {
	server *httptest.Server
	chain  *testmock.ChainClientInterface
	db     *testmock.DBClient
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             0,
			WriteTimeout:     time.Minute,
			ReadTimeout:      time.Minute,
			IdleTimeout:      time.Minute,
			AllowedOrigins:   []string{"*"},
			LogLevel:         "error",
			MaxContentLength: 4096,
		},
		Requests: config.DefaultRequestsConfig(),
	}
}

func setupTestServer(t *testing.T, configure func(chain *testmock.ChainClientInterface, db *testmock.DBClient)) *testServer {
	t.Helper()
	chainMock := new(testmock.ChainClientInterface)
	dbMock := new(testmock.DBClient)
	if configure != nil {
		configure(chainMock, dbMock)
	}
	chainMock.On("ChainID", mock.Anything).Return(big.NewInt(31337), nil)
	chainMock.On("GetAllVaults", mock.Anything).Return([]chain.VaultInfo{testVault}, nil)
	chainMock.On("GetTokenMetadata", mock.Anything, testVault.Asset).
		Return(&chain.TokenMetadata{Address: testVault.Asset, Name: "USD Coin", Symbol: "USDC", Decimals: 6}, nil)
	chainMock.On("GetTokenMetadata", mock.Anything, testVault.Share).
		Return(&chain.TokenMetadata{Address: testVault.Share, Name: "Vault USDC", Symbol: "vUSDC", Decimals: 18}, nil)
	chainMock.On("Ping", mock.Anything).Return(nil)
	dbMock.On("Ping", mock.Anything).Return(nil)

	cfg := testConfig()
	session, err := wallet.NewSession(&config.ChainConfig{PrivateKey: testKey}, chainMock)
	require.NoError(t, err)
	svc, err := services.New(context.Background(), cfg, dbMock, &clients.Clients{Chain: chainMock}, session, nil)
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	apiServer, err := New(context.Background(), cfg, svc)
	require.NoError(t, err)
	server := httptest.NewServer(apiServer.Handler())
	t.Cleanup(server.Close)
	return &testServer{server: server, chain: chainMock, db: dbMock}
}

func doRequest(t *testing.T, method, url, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(bodyBytes, &decoded), string(bodyBytes))
	return resp.StatusCode, decoded
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/healthcheck", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Server is up and running", body["data"])
}

func TestHealthCheckDBErrorHidesMessage(t *testing.T) {
	ts := setupTestServer(t, func(_ *testmock.ChainClientInterface, db *testmock.DBClient) {
		db.On("Ping", mock.Anything).Return(io.EOF)
	})

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/healthcheck", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_SERVICE_ERROR", body["errorCode"])
	assert.Equal(t, "Internal service error", body["message"])
}

func TestChainErrorKeepsMessage(t *testing.T) {
	ts := setupTestServer(t, func(c *testmock.ChainClientInterface, _ *testmock.DBClient) {
		c.On("GetAllVaults", mock.Anything).Return(nil, types.NewChainError(errors.New("dial tcp: connection refused")))
	})

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/v1/vaults", "")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "CHAIN_UNAVAILABLE", body["errorCode"])
	assert.Equal(t, "dial tcp: connection refused", body["message"])
}

func TestSessionLifecycle(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/v1/session", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]interface{})["connected"])

	status, body = doRequest(t, http.MethodPost, ts.server.URL+"/v1/session/connect", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["connected"])
	assert.Equal(t, testAccount, data["account"])

	status, body = doRequest(t, http.MethodPost, ts.server.URL+"/v1/session/disconnect", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]interface{})["connected"])
}

func TestSubmitRequestWithoutWallet(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodPost, ts.server.URL+"/v1/vaults/1/requests", `{"type":"deposit","amount":"10"}`)
	assert.Equal(t, http.StatusPreconditionFailed, status)
	assert.Equal(t, "WALLET_NOT_CONNECTED", body["errorCode"])
}

func TestSubmitRequestInvalidPayload(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodPost, ts.server.URL+"/v1/vaults/1/requests", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request payload", body["message"])
}

func TestListRequests(t *testing.T) {
	user := common.HexToAddress(testAccount)
	ts := setupTestServer(t, func(c *testmock.ChainClientInterface, db *testmock.DBClient) {
		now := time.Now().Unix()
		records := make([]chain.RequestRecord, 0, 3)
		for i := int64(1); i <= 3; i++ {
			records = append(records, chain.RequestRecord{
				Kind: types.DepositRequest, RequestId: big.NewInt(i), Vault: testVault.VaultAddress,
				Amount: big.NewInt(i * 1_000_000), Controller: user,
				RequestedAt: big.NewInt(now - 1000 + i), Duration: big.NewInt(60), Claimable: i == 2,
			})
		}
		c.On("GetRequestsByUser", mock.Anything, types.DepositRequest, testVault.VaultAddress, user).Return(records, nil)
		c.On("GetRequestsByUser", mock.Anything, types.RedeemRequest, testVault.VaultAddress, user).Return(nil, nil)
		db.On("FindJournalEntries", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	})

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/v1/vaults/1/requests?user="+testAccount+"&page_size=2", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "3", data[0].(map[string]interface{})["request_id"])
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
	assert.NotEmpty(t, pagination["next_key"])

	status, body = doRequest(t, http.MethodGet, ts.server.URL+"/v1/vaults/1/requests?user="+testAccount+"&status=approved", "")
	require.Equal(t, http.StatusOK, status)
	data = body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "approved", data[0].(map[string]interface{})["status"])

	status, _ = doRequest(t, http.MethodGet, ts.server.URL+"/v1/vaults/1/requests?user="+testAccount+"&page=zero", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetVaultInvalidId(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodGet, ts.server.URL+"/v1/vaults/not-a-vault", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid vault id", body["message"])
}

func TestConvertRejectsHugeExponent(t *testing.T) {
	ts := setupTestServer(t, nil)

	status, body := doRequest(t, http.MethodGet,
		ts.server.URL+"/v1/vaults/1/convert?direction=to_shares&amount=1e10000000", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["errorCode"])
	ts.chain.AssertNotCalled(t, "ConvertToShares", mock.Anything, mock.Anything, mock.Anything)
}
