package flags

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bookwell:flags:"

// CachedFlagStore is a read-through cache over the database flag store.
// Redis being down degrades to direct reads; it never fails a request.
type CachedFlagStore struct {
	source shared.FeatureFlagStore
	redis  *redis.Client
	ttl    time.Duration
}

func NewCachedFlagStore(source shared.FeatureFlagStore, client *redis.Client, ttl time.Duration) *CachedFlagStore {
	return &CachedFlagStore{source: source, redis: client, ttl: ttl}
}

func (s *CachedFlagStore) TenantFlags(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error) {
	key := keyPrefix + tenantID.String()

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var flags map[string]bool
		if err := json.Unmarshal([]byte(cached), &flags); err == nil {
			return flags, nil
		}
		slog.Warn("discarding corrupt flag cache entry", "tenant_id", tenantID)
	} else if err != redis.Nil {
		slog.Warn("flag cache read failed", "tenant_id", tenantID, "error", err)
	}

	flags, err := s.source.TenantFlags(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(flags); err == nil {
		if err := s.redis.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			slog.Warn("flag cache write failed", "tenant_id", tenantID, "error", err)
		}
	}

	return flags, nil
}
