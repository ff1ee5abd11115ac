package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/lead-intake/internal/infra/http/handlers"
)

func TestHealthHandler(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response handlers.HealthResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "healthy", response.Status)
	assert.False(t, response.Timestamp.IsZero())
	assert.Equal(t, "not configured", response.Dependencies["database"])
	assert.Equal(t, "not configured", response.Dependencies["rabbitmq"])
}

func TestHealthHandlerDegradedStillAnswers200(t *testing.T) {
	// An unparseable DSN makes Ping fail without touching the network.
	db, err := sql.Open("postgres", "this is not a dsn")
	assert.NoError(t, err)
	defer db.Close()

	handler := handlers.NewHealthHandler(db, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response handlers.HealthResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "degraded", response.Status)
	assert.Contains(t, response.Dependencies["database"], "unhealthy")
}
