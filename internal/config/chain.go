package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChainConfig points the service at the EVM node and the deployed contracts.
type ChainConfig struct {
	RpcUrl string `mapstructure:"rpc-url"`
	// Expected chain id, 0 accepts whatever the node reports
	ChainId                  int64  `mapstructure:"chain-id"`
	PoolManagerAddress       string `mapstructure:"pool-manager-address"`
	InvestmentManagerAddress string `mapstructure:"investment-manager-address"`
	// Hex encoded signer key, the session stays read only without it
	PrivateKey         string        `mapstructure:"private-key"`
	ChainWatchInterval int           `mapstructure:"chain-watch-interval"`
	TxTimeout          time.Duration `mapstructure:"tx-timeout"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.RpcUrl == "" {
		return errors.New("missing chain rpc url")
	}

	parsedURL, err := url.ParseRequestURI(cfg.RpcUrl)
	if err != nil {
		return fmt.Errorf("invalid chain rpc url: %w", err)
	}

	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return errors.New("chain rpc url must start with http, https, ws or wss")
	}

	if cfg.ChainId < 0 {
		return errors.New("chain id cannot be negative")
	}

	if !common.IsHexAddress(cfg.PoolManagerAddress) {
		return fmt.Errorf("invalid pool manager address: %s", cfg.PoolManagerAddress)
	}

	if !common.IsHexAddress(cfg.InvestmentManagerAddress) {
		return fmt.Errorf("invalid investment manager address: %s", cfg.InvestmentManagerAddress)
	}

	if cfg.PrivateKey != "" {
		if _, err := crypto.HexToECDSA(trimHexPrefix(cfg.PrivateKey)); err != nil {
			return errors.New("invalid chain private key")
		}
	}

	if cfg.ChainWatchInterval <= 0 {
		return errors.New("chain watch interval must be a positive integer")
	}

	if cfg.TxTimeout <= 0 {
		return errors.New("tx timeout must be positive")
	}

	return nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
