// Package interactionlog persists chat exchanges in an append-only store.
package interactionlog

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/contra-ai/contra/backend/internal/config"
	"github.com/contra-ai/contra/backend/internal/model/interaction"
)

// DefaultLimit is used by ListRecent when the caller passes a non-positive limit.
const DefaultLimit = 50

// Log is an append-only store of interaction records. Each call is one short,
// independent operation; implementations serialise concurrent writers.
type Log interface {
	// Append stores a new record and returns its id.
	Append(ctx context.Context, culture, input, response string) (int64, error)
	// ListRecent returns at most limit records, newest id first.
	ListRecent(ctx context.Context, limit int) ([]interaction.Record, error)
	Close() error
}

// Open 根据配置创建交互日志存储。
func Open(ctx context.Context, cfg config.StoreConfig) (Log, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", config.BackendSQLite:
		dsn, err := SQLiteDSNForFile(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteLog(dsn)
	case config.BackendRedis:
		return DialRedis(ctx, cfg)
	case config.BackendMemory:
		return NewMemoryLog(), nil
	default:
		return nil, errors.Errorf("interaction log: unknown backend %q", cfg.Backend)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
