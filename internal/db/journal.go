package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erc7540/vault-api-service/internal/db/model"
)

// SaveRequestSubmission upserts the journal entry of a request with its
// submission hashes. Hashes already recorded are kept when the new ones are empty.
func (db *Database) SaveRequestSubmission(
	ctx context.Context, vaultAddress, requestType, requestId, controller, txHash, approvalTxHash string,
) error {
	fields := bson.M{}
	if txHash != "" {
		fields["tx_hash"] = txHash
	}
	if approvalTxHash != "" {
		fields["approval_tx_hash"] = approvalTxHash
	}
	return db.upsertJournalEntry(ctx, vaultAddress, requestType, requestId, controller, fields)
}

func (db *Database) SaveRequestFinalization(
	ctx context.Context, vaultAddress, requestType, requestId, controller, finalizeTxHash string,
) error {
	fields := bson.M{}
	if finalizeTxHash != "" {
		fields["finalize_tx_hash"] = finalizeTxHash
	}
	return db.upsertJournalEntry(ctx, vaultAddress, requestType, requestId, controller, fields)
}

func (db *Database) upsertJournalEntry(
	ctx context.Context, vaultAddress, requestType, requestId, controller string, fields bson.M,
) error {
	client := db.collection(model.RequestJournalCollection)
	id := model.BuildJournalId(vaultAddress, requestType, requestId)

	fields["updated_at"] = time.Now().Unix()
	update := bson.M{
		"$set": fields,
		"$setOnInsert": bson.M{
			"vault_address": model.NormalizeAddress(vaultAddress),
			"request_type":  requestType,
			"request_id":    requestId,
			"controller":    model.NormalizeAddress(controller),
		},
	}
	return writeWithRetries(ctx, "upsertJournalEntry", func() error {
		_, err := client.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
		return err
	})
}

// FindJournalEntries returns every journal entry of the controller in the vault.
func (db *Database) FindJournalEntries(
	ctx context.Context, vaultAddress, controller string,
) ([]model.RequestJournalDocument, error) {
	client := db.collection(model.RequestJournalCollection)
	filter := bson.M{
		"vault_address": model.NormalizeAddress(vaultAddress),
		"controller":    model.NormalizeAddress(controller),
	}

	cursor, err := client.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.RequestJournalDocument
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
