package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/qa-forum/backend/internal/router"
	"github.com/anonto42/qa-forum/backend/internal/test/ioc"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := ioc.InitDB(t)
	ioc.SeedForum(t, db)

	e := echo.New()
	router.SetupRoutes(e, db)
	return e, db
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decode unwraps the success envelope into dst
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
