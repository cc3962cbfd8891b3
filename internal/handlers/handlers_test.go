package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/frame/internal/assets"
	"github.com/vangoframework/frame/internal/config"
	"github.com/vangoframework/frame/internal/handlers"
	"github.com/vangoframework/frame/internal/router"
	"github.com/vangoframework/frame/internal/shell"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		BaseURL:         "http://localhost:8080",
		Environment:     "development",
		MountID:         "root",
		MetricsEnabled:  true,
		ShutdownTimeout: time.Second,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testServer mounts the default app behind the full router
func testServer(t *testing.T, cfg *config.Config, opts ...shell.Option) *httptest.Server {
	t.Helper()

	app, err := shell.Mount(assets.HostDocument(), opts...)
	require.NoError(t, err)

	logger := testLogger()
	h := handlers.New(cfg, app, logger)
	server := httptest.NewServer(h.Router(logger))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRootRendersShell(t *testing.T) {
	server := testServer(t, testConfig())

	resp, body := get(t, server.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `<div id="root"><div class="frame-container`)
	assert.Contains(t, body, `<a class="frame-link" href="/">Home</a>`)
	assert.Less(t, strings.Index(body, "<header"), strings.Index(body, "<footer"))
}

func TestUnknownPathsRenderNotFound(t *testing.T) {
	server := testServer(t, testConfig())

	for _, p := range []string{"/missing", "/deep/nested/path", "/static-ish"} {
		resp, body := get(t, server.URL+p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Contains(t, body, "404 - Page Not Found", p)
	}
}

func TestThemeStylesheet(t *testing.T) {
	server := testServer(t, testConfig())

	resp, body := get(t, server.URL+"/static/theme.css")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Contains(t, body, "background-color: #000000;")
	assert.Contains(t, body, "color: #FFFFFF;")
	assert.Contains(t, body, "text-decoration: none;")
	assert.Contains(t, body, ".frame-button:disabled {\n  background-color: #fdd835;\n}")
}

func TestThemeStylesheetCachedInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"
	server := testServer(t, cfg)

	resp, _ := get(t, server.URL+"/static/theme.css")
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
}

func TestFontAssets(t *testing.T) {
	server := testServer(t, testConfig())

	resp, body := get(t, server.URL+"/static/fonts/roboto-700.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "font-weight: 700")
}

func TestHealth(t *testing.T) {
	server := testServer(t, testConfig())

	resp, body := get(t, server.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestMetricsEndpoint(t *testing.T) {
	server := testServer(t, testConfig())

	get(t, server.URL+"/nowhere")
	resp, body := get(t, server.URL+"/metrics")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `frame_renders_total{outcome="not_found"}`)
	assert.Contains(t, body, "frame_http_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	server := testServer(t, cfg)

	_, body := get(t, server.URL+"/metrics")
	assert.Contains(t, body, "404 - Page Not Found")
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPM = 2
	server := testServer(t, cfg)

	var codes []int
	for i := 0; i < 3; i++ {
		resp, _ := get(t, server.URL+"/health")
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRenderErrorReturns500(t *testing.T) {
	table, err := router.New(router.Route{
		Path: "*",
		Component: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return errors.New("broken component")
		}),
	})
	require.NoError(t, err)
	server := testServer(t, testConfig(), shell.WithTable(table))

	resp, body := get(t, server.URL+"/anything")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to render page\n", body)
}
