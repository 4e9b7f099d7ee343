// Package aicache keeps a qdrant-backed semantic cache of AI augmentor
// results. Documents whose text embeds close enough to an earlier one reuse
// that result instead of calling the model again — re-runs and near-duplicate
// uploads are common in case files.
package aicache

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)

type Cache struct {
	client *qdrant.Client
}

func GetQdrantCache(ctx context.Context) *Cache {
	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient(ctx)
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &Cache{client: qdrantInstance}
}

func newClient(ctx context.Context) *qdrant.Client {
	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	if err := ensureCollection(ctx, client, config.AICacheCollection); err != nil {
		logger.Error("could not create collection: ", "collectionName", config.AICacheCollection, "error:", err)
		return nil
	}
	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
}

func ensureCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

// Lookup returns the nearest cached insights when the similarity clears the
// configured cutoff. Any error reads as a miss; the augmentor treats misses
// and failures identically.
func (c *Cache) Lookup(ctx context.Context, vector []float32) (*ai.Insights, bool) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	searchResult, err := c.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.AICacheCollection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil || len(searchResult) == 0 {
		return nil, false
	}

	if searchResult[0].Score < config.CacheSimilarityCutoff {
		return nil, false
	}

	var insights ai.Insights
	raw := searchResult[0].Payload["insights"].GetStringValue()
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		loggr.Error("cached insights payload is corrupt", "error", err)
		return nil, false
	}
	loggr.Debug("AI cache hit", "score", searchResult[0].Score)
	return &insights, true
}

func (c *Cache) Save(ctx context.Context, id string, vector []float32, insights *ai.Insights) error {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	payload, err := json.Marshal(insights)
	if err != nil {
		return err
	}

	_, err = c.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: config.AICacheCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"insights":  string(payload),
					"timestamp": time.Now().Unix(),
				}),
			},
		},
	})
	if err != nil {
		loggr.Error("Saving insights to cache failed", "error", err)
	}
	return err
}
