package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHealthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return db
}

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.Check(c))

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body.Data
}

func TestHealthHandler_Check(t *testing.T) {
	db := newHealthTestDB(t)
	h := NewHealthHandler(HealthHandlerParams{
		DB:     db,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	code, data := checkHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, map[string]any{"postgres": "ok"}, data["checks"])

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, data = checkHealth(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", data["status"])
}
