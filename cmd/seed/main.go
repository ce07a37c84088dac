// Command seed wipes and reloads collections from seed-*.json files found in
// the working directory. The part between "seed-" and ".json" selects the
// target collection: seed-users.json → usuarios, seed-games.json → juegos.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamegestor/catalog-api/internal/infrastructure/config"
	mongodb "github.com/gamegestor/catalog-api/internal/infrastructure/db/mongo"
	"github.com/gamegestor/catalog-api/pkg/logger"
)

var collections = map[string]string{
	"users": "usuarios",
	"games": "juegos",
}

func main() {
	ctx := context.Background()
	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	var mc config.MongoConfig
	if err := envconfig.Process(ctx, &mc); err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: mc.URI, Database: mc.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	entries, err := os.ReadDir(".")
	if err != nil {
		log.Fatal().Err(err).Msg("read working directory")
	}

	loaded := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "seed-") || !strings.HasSuffix(name, ".json") {
			continue
		}

		key := strings.TrimSuffix(strings.TrimPrefix(name, "seed-"), ".json")
		collName, ok := collections[key]
		if !ok {
			log.Warn().Str("file", name).Msg("no collection mapped for seed file, skipping")
			continue
		}

		n, err := loadSeed(ctx, db, collName, name)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("seed failed")
		}
		log.Info().Str("collection", collName).Int("records", n).Msg("seed loaded")
		loaded++
	}

	if loaded == 0 {
		log.Warn().Msg("no seed-*.json files found")
	}
}

// loadSeed replaces the collection contents with the documents in file.
func loadSeed(ctx context.Context, db *mongo.Database, collName, file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", file, err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, fmt.Errorf("parse %s: %w", file, err)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("%s contains no documents", file)
	}

	coll := db.Collection(collName)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear %s: %w", collName, err)
	}

	toInsert := make([]any, 0, len(docs))
	for _, d := range docs {
		toInsert = append(toInsert, d)
	}
	res, err := coll.InsertMany(ctx, toInsert)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", collName, err)
	}
	return len(res.InsertedIDs), nil
}
