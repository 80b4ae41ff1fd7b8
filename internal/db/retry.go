package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erc7540/vault-api-service/internal/utils"
)

const (
	DefaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	DefaultInitialBackoff = 100 * time.Millisecond
	DefaultBackoffFactor  = 2
)

// writeWithRetries runs an idempotent write, retrying transient failures
// with exponential backoff.
func writeWithRetries(ctx context.Context, operation string, write func() error) error {
	backoff := DefaultInitialBackoff
	var err error
	for attempt := 1; attempt <= DefaultMaxAttempts; attempt++ {
		err = write()
		if err == nil {
			return nil
		}
		if !shouldRetry(err) || attempt == DefaultMaxAttempts || ctx.Err() != nil {
			break
		}
		log.Ctx(ctx).Warn().Err(err).Str("operation", operation).Int("attempt", attempt).
			Dur("backoff", backoff).Msg("retrying db write")
		utils.Sleep(backoff)
		backoff *= DefaultBackoffFactor
	}
	return err
}

// Network and timeout errors are transient. A duplicate key on an upsert
// means a concurrent upsert inserted the document first, the retry updates it.
func shouldRetry(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err) || mongo.IsDuplicateKeyError(err)
}
