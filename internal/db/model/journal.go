package model

import (
	"fmt"
	"strings"
)

const RequestJournalCollection = "request_journal"

// RequestJournalDocument keeps the transaction hashes of requests sent by
// this service. Request status is always read from the chain.
type RequestJournalDocument struct {
	Id             string `bson:"_id"` // <vault>:<type>:<request_id>
	VaultAddress   string `bson:"vault_address"`
	RequestType    string `bson:"request_type"`
	RequestId      string `bson:"request_id"`
	Controller     string `bson:"controller"`
	TxHash         string `bson:"tx_hash,omitempty"`
	ApprovalTxHash string `bson:"approval_tx_hash,omitempty"`
	FinalizeTxHash string `bson:"finalize_tx_hash,omitempty"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func BuildJournalId(vaultAddress, requestType, requestId string) string {
	return fmt.Sprintf("%s:%s:%s", NormalizeAddress(vaultAddress), requestType, requestId)
}

func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
