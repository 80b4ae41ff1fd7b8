package model

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erc7540/vault-api-service/internal/config"
)

type index struct {
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	RequestJournalCollection: {
		{Keys: bson.D{{Key: "vault_address", Value: 1}, {Key: "controller", Value: 1}}, Unique: false},
	},
	UnprocessableMsgCollection: {},
}

// Setup creates the collections and indexes the service expects. Existing
// collections and indexes are left untouched.
func Setup(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Db.Address))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.Db.DbName)
	existing, err := database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for name, idxs := range collections {
		if !present[name] {
			if err := database.CreateCollection(ctx, name); err != nil {
				log.Error().Err(err).Str("collection", name).Msg("failed to create collection")
				return err
			}
			log.Debug().Str("collection", name).Msg("collection created")
		}
		for _, idx := range idxs {
			createIndex(ctx, database, name, idx)
		}
	}

	log.Info().Msg("Collections and Indexes created successfully.")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	if len(idx.Keys) == 0 {
		return
	}

	model := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, model); err != nil {
		log.Debug().Err(err).Str("collection", collectionName).Msg("failed to create index")
		return
	}

	log.Debug().Str("collection", collectionName).Msg("index created")
}
