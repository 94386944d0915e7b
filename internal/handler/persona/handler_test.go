package persona

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contra-ai/contra/backend/internal/model/persona"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(persona.NewMemoryStore(persona.Seed())).RegisterRoutes(r)
	return r
}

func TestListPersonas(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/personas", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var items []persona.Persona
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, len(persona.Seed()))
	assert.Equal(t, "Universal", items[0].ID)
}

func TestGetPersonaEscapedID(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/personas/Japanese%20(Keigo)", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var p persona.Persona
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "Japanese (Keigo)", p.ID)
	assert.Equal(t, "Harmony Prime", p.Label)
}

func TestGetPersonaNotFound(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/personas/Klingon", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
