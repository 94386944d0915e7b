package interactionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/contra-ai/contra/backend/internal/config"
	"github.com/contra-ai/contra/backend/internal/model/interaction"
)

// RedisLog stores records as JSON members of a sorted set scored by id.
// Keys are namespaced as "{prefix}:interactions:seq" and "{prefix}:interactions".
type RedisLog struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ Log = &RedisLog{}

// NewRedisLog wraps an existing client. An empty prefix defaults to "contra".
func NewRedisLog(client redis.UniversalClient, prefix string) *RedisLog {
	if prefix == "" {
		prefix = "contra"
	}
	return &RedisLog{client: client, prefix: prefix, now: time.Now}
}

// DialRedis connects using cfg and verifies the server is reachable.
func DialRedis(ctx context.Context, cfg config.StoreConfig) (*RedisLog, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "redis interaction log: ping %s", cfg.RedisAddr)
	}
	return NewRedisLog(client, cfg.RedisPrefix), nil
}

func (r *RedisLog) seqKey() string {
	return fmt.Sprintf("%s:interactions:seq", r.prefix)
}

func (r *RedisLog) recordsKey() string {
	return fmt.Sprintf("%s:interactions", r.prefix)
}

// Append implements Log.
func (r *RedisLog) Append(ctx context.Context, culture, input, response string) (int64, error) {
	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return 0, errors.Wrap(err, "redis interaction log: next id")
	}

	payload, err := json.Marshal(interaction.Record{
		ID:        id,
		Timestamp: r.now().UTC(),
		Culture:   culture,
		Input:     input,
		Response:  response,
	})
	if err != nil {
		return 0, errors.Wrap(err, "redis interaction log: encode")
	}

	if err := r.client.ZAdd(ctx, r.recordsKey(), redis.Z{Score: float64(id), Member: payload}).Err(); err != nil {
		return 0, errors.Wrap(err, "redis interaction log: append")
	}
	return id, nil
}

// ListRecent implements Log.
func (r *RedisLog) ListRecent(ctx context.Context, limit int) ([]interaction.Record, error) {
	limit = normalizeLimit(limit)

	members, err := r.client.ZRevRange(ctx, r.recordsKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis interaction log: list")
	}

	out := make([]interaction.Record, 0, len(members))
	for _, member := range members {
		var rec interaction.Record
		if err := json.Unmarshal([]byte(member), &rec); err != nil {
			return nil, errors.Wrap(err, "redis interaction log: decode")
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close closes the underlying client.
func (r *RedisLog) Close() error {
	return r.client.Close()
}
