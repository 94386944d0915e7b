package interactionlog

import (
	"context"
	"sync"
	"time"

	"github.com/contra-ai/contra/backend/internal/model/interaction"
)

// MemoryLog keeps records in process memory. Contents are lost on restart.
type MemoryLog struct {
	mu      sync.RWMutex
	records []interaction.Record
	nextID  int64
	now     func() time.Time
}

var _ Log = &MemoryLog{}

// NewMemoryLog returns an empty in-memory log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		records: make([]interaction.Record, 0, 64),
		nextID:  1,
		now:     time.Now,
	}
}

// Append implements Log.
func (m *MemoryLog) Append(_ context.Context, culture, input, response string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := interaction.Record{
		ID:        m.nextID,
		Timestamp: m.now().UTC(),
		Culture:   culture,
		Input:     input,
		Response:  response,
	}
	m.nextID++
	m.records = append(m.records, rec)
	return rec.ID, nil
}

// ListRecent implements Log.
func (m *MemoryLog) ListRecent(_ context.Context, limit int) ([]interaction.Record, error) {
	limit = normalizeLimit(limit)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]interaction.Record, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

// Close implements Log.
func (m *MemoryLog) Close() error {
	return nil
}
