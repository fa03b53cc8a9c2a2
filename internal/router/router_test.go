package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/router"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preflight(t *testing.T, baseURL, origin string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodOptions, baseURL+"/games", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCORS_AllowsAnyOriginByDefault(t *testing.T) {
	srv := testutil.NewCatalogServer(t)

	resp := preflight(t, srv.URL, "http://localhost:5173")
	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowList(t *testing.T) {
	testutil.NewCatalogServer(t)
	config.AppConfig.CORSOrigins = "https://admin.example.com, http://localhost:5173"

	srv := httptest.NewServer(router.New())
	t.Cleanup(srv.Close)

	resp := preflight(t, srv.URL+"/api", "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = preflight(t, srv.URL+"/api", "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPing(t *testing.T) {
	testutil.NewCatalogServer(t)
	srv := httptest.NewServer(router.New())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
