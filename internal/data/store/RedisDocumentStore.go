package store

import (
	"context"
	"encoding/json"

	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/data/redisStore"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if inner == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  inner,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc docmodel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", doc.Id)
	log.Debug("saving document")
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, documentKey(doc.Id), data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, id string) (docmodel.Document, bool) {
	var doc docmodel.Document
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", id)

	val, err := s.store.Get(ctx, documentKey(id))
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		log.Error("Error reading document from Redis", "error", err)
		return doc, false
	}

	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		log.Error("Stored document is corrupt", "error", err)
		return doc, false
	}
	return doc, true
}

func (s *RedisDocumentStore) DeleteDocument(ctx context.Context, id string) {
	if err := s.store.Del(ctx, documentKey(id)); err != nil {
		s.logger.Error("Error deleting document from Redis", "documentId", id, "error", err)
		return
	}
	s.logger.Debug("Document deleted from Redis", "documentId", id)
}

func documentKey(id string) string {
	return "document:" + id
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test document store"),
	}
}
