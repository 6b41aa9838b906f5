package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"steamlens/cache"
	"steamlens/profile"
	"steamlens/rates"
	"steamlens/steam"
)

func newTestHandler(t *testing.T, upstream http.HandlerFunc) http.Handler {
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	client := steam.NewClient("test-key")
	client.APIBaseURL = ts.URL
	client.HTTPClient = ts.Client()

	svc := profile.New(client, cache.NewMemory(), rates.Default())
	return Register(http.NewServeMux(), svc)
}

func TestResolve_MissingInput(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resolve", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolve_NumericInput(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call should be made for numeric input")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resolve?input=76561197960265729", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "76561197960265729", body["steam_id"])
}

func TestProfile_InvalidID(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile/12345", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfile_Private(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"players":[]}}`))
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile/76561197960265729", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfile_UpstreamBusy(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile/76561197960265729", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
