package db

import (
	"context"

	"github.com/erc7540/vault-api-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveRequestSubmission records the hashes of the transactions that created a request.
	SaveRequestSubmission(
		ctx context.Context, vaultAddress, requestType, requestId, controller, txHash, approvalTxHash string,
	) error
	// SaveRequestFinalization records the hash of the transaction that finalized a request.
	SaveRequestFinalization(
		ctx context.Context, vaultAddress, requestType, requestId, controller, finalizeTxHash string,
	) error
	FindJournalEntries(ctx context.Context, vaultAddress, controller string) ([]model.RequestJournalDocument, error)
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, id interface{}) error
}
