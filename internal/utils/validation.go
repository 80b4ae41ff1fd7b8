package utils

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress checks if the given string is a 20 bytes hex encoded EVM address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsValidTxHash checks if the given string is a 0x prefixed 32 bytes hex hash.
// Note: it does not check the transaction exists on chain.
func IsValidTxHash(txHash string) bool {
	if !strings.HasPrefix(txHash, "0x") || len(txHash) != 2+2*common.HashLength {
		return false
	}
	_, err := hex.DecodeString(txHash[2:])
	return err == nil
}

// IsValidRequestId checks if the given string is a non-negative base 10 integer
func IsValidRequestId(requestId string) bool {
	if requestId == "" {
		return false
	}
	for _, c := range requestId {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
