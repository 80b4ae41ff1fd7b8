package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	assert.False(t, IsValidAddress("0x1234"))
	assert.False(t, IsValidAddress("not-an-address"))
}

func TestIsValidTxHash(t *testing.T) {
	assert.True(t, IsValidTxHash("0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"))
	assert.False(t, IsValidTxHash("88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"))
	assert.False(t, IsValidTxHash("0x88df"))
	assert.False(t, IsValidTxHash("0xzzdf016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"))
}

func TestIsValidRequestId(t *testing.T) {
	assert.True(t, IsValidRequestId("0"))
	assert.True(t, IsValidRequestId("42"))
	assert.False(t, IsValidRequestId(""))
	assert.False(t, IsValidRequestId("-1"))
	assert.False(t, IsValidRequestId("0x2a"))
}
