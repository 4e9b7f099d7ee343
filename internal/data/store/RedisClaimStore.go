package store

import (
	"context"
	"encoding/json"

	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/data/redisStore"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

type RedisClaimStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisClaimStore(ctx context.Context) *RedisClaimStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisClaimStore)
	if inner == nil {
		return nil
	}
	return &RedisClaimStore{
		store:  inner,
		logger: logger_i.NewLogger("ClaimStore"),
	}
}

func (s *RedisClaimStore) SaveClaimDetail(ctx context.Context, claim docmodel.ClaimDetail) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "case Id", claim.CaseId)
	data, err := json.Marshal(claim)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, claimKey(claim.CaseId), data, config.RedisClaimStoreTTL)
	if err == nil {
		log.Debug("Saved claim detail to Redis")
	}
	return err
}

func (s *RedisClaimStore) GetClaimDetail(ctx context.Context, caseId string) (docmodel.ClaimDetail, bool) {
	var claim docmodel.ClaimDetail
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "case Id", caseId)

	val, err := s.store.Get(ctx, claimKey(caseId))
	if s.store.IsNil(err) {
		return claim, false
	} else if err != nil {
		log.Error("Error reading claim detail from Redis", "error", err)
		return claim, false
	}

	if err := json.Unmarshal([]byte(val), &claim); err != nil {
		log.Error("Stored claim detail is corrupt", "error", err)
		return claim, false
	}
	return claim, true
}

func claimKey(caseId string) string {
	return "claim:" + caseId
}

func TestClaimStore(store *redisStore.Store) *RedisClaimStore {
	return &RedisClaimStore{
		store:  store,
		logger: logger_i.NewLogger("test claim store"),
	}
}
