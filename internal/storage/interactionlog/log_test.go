package interactionlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contra-ai/contra/backend/internal/config"
)

func newSQLiteLog(t *testing.T) Log {
	t.Helper()
	dsn, err := SQLiteDSNForFile(filepath.Join(t.TempDir(), "contra.db"))
	require.NoError(t, err)
	l, err := NewSQLiteLog(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func newRedisLog(t *testing.T) Log {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRedisLog(client, "test")
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func newMemoryLog(t *testing.T) Log {
	t.Helper()
	return NewMemoryLog()
}

var backends = map[string]func(t *testing.T) Log{
	"sqlite": newSQLiteLog,
	"redis":  newRedisLog,
	"memory": newMemoryLog,
}

func TestLogAppendAndListRecent(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			l := open(t)
			ctx := context.Background()

			var ids []int64
			for i := 1; i <= 3; i++ {
				id, err := l.Append(ctx, "Japanese (Keigo)", fmt.Sprintf("message %d", i), fmt.Sprintf("reply %d", i))
				require.NoError(t, err)
				ids = append(ids, id)
			}
			assert.Less(t, ids[0], ids[1])
			assert.Less(t, ids[1], ids[2])

			records, err := l.ListRecent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, ids[2], records[0].ID)
			assert.Equal(t, "message 3", records[0].Input)
			assert.Equal(t, "reply 3", records[0].Response)
			assert.Equal(t, "Japanese (Keigo)", records[0].Culture)
			assert.False(t, records[0].Timestamp.IsZero())
			assert.Equal(t, ids[1], records[1].ID)
		})
	}
}

func TestLogListRecentDefaultsLimit(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			l := open(t)
			ctx := context.Background()

			for i := 0; i < DefaultLimit+5; i++ {
				_, err := l.Append(ctx, "Universal", "m", "r")
				require.NoError(t, err)
			}

			records, err := l.ListRecent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, records, DefaultLimit)
			assert.Equal(t, int64(DefaultLimit+5), records[0].ID)
		})
	}
}

func TestLogListRecentEmpty(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			records, err := open(t).ListRecent(context.Background(), 10)
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestLogConcurrentAppendsGetDistinctIDs(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			l := open(t)
			ctx := context.Background()

			const writers = 8
			var (
				wg  sync.WaitGroup
				mu  sync.Mutex
				ids = map[int64]bool{}
			)
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					id, err := l.Append(ctx, "NYC", fmt.Sprintf("m%d", i), "r")
					assert.NoError(t, err)
					mu.Lock()
					ids[id] = true
					mu.Unlock()
				}(i)
			}
			wg.Wait()

			assert.Len(t, ids, writers)
		})
	}
}

func TestSQLiteLogPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contra.db")
	dsn, err := SQLiteDSNForFile(path)
	require.NoError(t, err)

	first, err := NewSQLiteLog(dsn)
	require.NoError(t, err)
	_, err = first.Append(context.Background(), "Universal", "hello", "Response: hello")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSQLiteLog(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	records, err := second.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Input)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSQLiteLogClosedReturnsError(t *testing.T) {
	dsn, err := SQLiteDSNForFile(filepath.Join(t.TempDir(), "contra.db"))
	require.NoError(t, err)
	l, err := NewSQLiteLog(dsn)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	_, err = l.Append(context.Background(), "Universal", "m", "r")
	assert.ErrorContains(t, err, "sqlite interaction log: append")
}

func TestSQLiteDSNForFileRejectsEmptyPath(t *testing.T) {
	_, err := SQLiteDSNForFile("  ")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, config.StoreConfig{Backend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryLog{}, mem)

	sqlite, err := Open(ctx, config.StoreConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteLog{}, sqlite)
	require.NoError(t, sqlite.Close())

	mr := miniredis.RunT(t)
	rl, err := Open(ctx, config.StoreConfig{Backend: config.BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &RedisLog{}, rl)
	require.NoError(t, rl.Close())

	_, err = Open(ctx, config.StoreConfig{Backend: "cassandra"})
	assert.Error(t, err)
}

func TestRedisLogUsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRedisLog(client, "")
	t.Cleanup(func() { _ = l.Close() })

	_, err := l.Append(context.Background(), "Universal", "m", "r")
	require.NoError(t, err)

	assert.True(t, mr.Exists("contra:interactions"))
	seq, err := mr.Get("contra:interactions:seq")
	require.NoError(t, err)
	assert.Equal(t, "1", seq)
}
