package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatservice "github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/internal/service/responder"
	"github.com/contra-ai/contra/backend/internal/storage/interactionlog"
)

func setupRouter(store interactionlog.Log) *chi.Mux {
	r := chi.NewRouter()
	New(chatservice.NewService(responder.New(), store)).RegisterRoutes(r)
	return r
}

func readEvents(t *testing.T, body string) []StreamResponse {
	t.Helper()
	var events []StreamResponse
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev StreamResponse
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		events = append(events, ev)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestChunksPreserveText(t *testing.T) {
	text := "So basically,  regarding 'hi' - valid point.  no cap."
	assert.Equal(t, text, strings.Join(Chunks(text), ""))
	assert.Empty(t, Chunks(""))
}

func TestStreamEvents(t *testing.T) {
	store := interactionlog.NewMemoryLog()
	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/chat/stream", bytes.NewBufferString(`{"message":"this is bad","culture":"Gen Z (Internet)"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/event-stream", resp.Header().Get("Content-Type"))

	events := readEvents(t, resp.Body.String())
	require.GreaterOrEqual(t, len(events), 4)
	assert.Equal(t, "start", events[0].Event)
	assert.Equal(t, "Gen Z (Internet)", events[0].Culture)
	assert.NotEmpty(t, events[0].ExchangeID)

	var streamed strings.Builder
	for _, ev := range events[1 : len(events)-2] {
		assert.Equal(t, "delta", ev.Event)
		streamed.WriteString(ev.Content)
	}
	final := events[len(events)-2]
	assert.Equal(t, "message", final.Event)
	assert.Equal(t, "Oof. Big yikes. My bad bestie.", final.Content)
	assert.Equal(t, final.Content, streamed.String())
	assert.True(t, events[len(events)-1].Finished)

	records, err := store.ListRecent(req.Context(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStreamRejectsEmptyMessage(t *testing.T) {
	r := setupRouter(interactionlog.NewMemoryLog())

	req := httptest.NewRequest(http.MethodPost, "/chat/stream", bytes.NewBufferString(`{"message":""}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Message cannot be empty.")
}
