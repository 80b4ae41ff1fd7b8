package client

import (
	"encoding/json"
	"time"
)

const RequestEventsQueueName string = "vault_request_events"

type EventType int

const (
	RequestSubmittedEventType EventType = 1
	RequestFinalizedEventType EventType = 2
)

// RequestEvent is published once a request transaction is mined.
type RequestEvent struct {
	EventType      EventType `json:"event_type"`
	VaultAddress   string    `json:"vault_address"`
	RequestType    string    `json:"request_type"`
	RequestId      string    `json:"request_id"`
	Controller     string    `json:"controller"`
	TxHash         string    `json:"tx_hash,omitempty"`
	ApprovalTxHash string    `json:"approval_tx_hash,omitempty"`
	FinalizeTxHash string    `json:"finalize_tx_hash,omitempty"`
	Timestamp      int64     `json:"timestamp"`
}

func NewRequestSubmittedEvent(vaultAddress, requestType, requestId, controller, txHash, approvalTxHash string) RequestEvent {
	return RequestEvent{
		EventType:      RequestSubmittedEventType,
		VaultAddress:   vaultAddress,
		RequestType:    requestType,
		RequestId:      requestId,
		Controller:     controller,
		TxHash:         txHash,
		ApprovalTxHash: approvalTxHash,
		Timestamp:      time.Now().Unix(),
	}
}

func NewRequestFinalizedEvent(vaultAddress, requestType, requestId, controller, finalizeTxHash string) RequestEvent {
	return RequestEvent{
		EventType:      RequestFinalizedEventType,
		VaultAddress:   vaultAddress,
		RequestType:    requestType,
		RequestId:      requestId,
		Controller:     controller,
		FinalizeTxHash: finalizeTxHash,
		Timestamp:      time.Now().Unix(),
	}
}

func (e RequestEvent) Marshal() (string, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
