package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/health-panel/internal/config"
	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/panel/render"
	"github.com/darkkaiser/health-panel/internal/pkg/version"
	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	panelhandler "github.com/darkkaiser/health-panel/internal/service/api/handler/panel"
	"github.com/darkkaiser/health-panel/internal/service/api/handler/system"
	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Test Helpers
// =============================================================================

// newTestServer 기본 설정과 기본 패널 데이터로 라우트까지 등록된 Echo 인스턴스를 생성합니다.
func newTestServer(t *testing.T, mutate func(cfg *HTTPServerConfig)) (*echo.Echo, *metrics.Metrics) {
	t.Helper()

	r, err := render.New()
	require.NoError(t, err)

	m := metrics.New()
	defaults := config.Default()

	cfg := HTTPServerConfig{
		AllowOrigins:      defaults.HTTPServer.CORS.AllowOrigins,
		RequestsPerSecond: defaults.HTTPServer.RateLimit.RequestsPerSecond,
		Burst:             defaults.HTTPServer.RateLimit.Burst,
		Renderer:          r,
		Metrics:           m,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	store := panel.NewStore(panel.DefaultData())

	e := NewHTTPServer(cfg)
	RegisterRoutes(e,
		panelhandler.NewHandler(store, m),
		system.NewHandler(store, r, version.Get()),
		m,
	)

	return e, m
}

func serveRequest(e *echo.Echo, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewHTTPServer_Panics(t *testing.T) {
	t.Parallel()

	r, err := render.New()
	require.NoError(t, err)

	assert.PanicsWithValue(t, constants.PanicMsgRendererRequired, func() {
		NewHTTPServer(HTTPServerConfig{RequestsPerSecond: 1, Burst: 1, Metrics: metrics.New()})
	})
	assert.PanicsWithValue(t, constants.PanicMsgMetricsRequired, func() {
		NewHTTPServer(HTTPServerConfig{RequestsPerSecond: 1, Burst: 1, Renderer: r})
	})
}

func TestNewHTTPServer_Settings(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, func(cfg *HTTPServerConfig) { cfg.Debug = true })

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.TLSServer.ReadHeaderTimeout)
	assert.NotNil(t, e.Renderer)
}

// =============================================================================
// Route Tests
// =============================================================================

func TestRoutes(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, nil)

	tests := []struct {
		name        string
		path        string
		wantCode    int
		contentType string
		contains    string
	}{
		{"패널 페이지", "/", http.StatusOK, echo.MIMETextHTMLCharsetUTF8, "<!DOCTYPE html>"},
		{"패널 조각", "/panel", http.StatusOK, echo.MIMETextHTMLCharsetUTF8, `class="hp-panel"`},
		{"패널 JSON", "/api/v1/panel", http.StatusOK, echo.MIMEApplicationJSON, `"title":"SYSTEM HEALTH"`},
		{"헬스체크", "/health", http.StatusOK, echo.MIMEApplicationJSON, `"status":"healthy"`},
		{"버전 정보", "/version", http.StatusOK, echo.MIMEApplicationJSON, `"go_version"`},
		{"Prometheus 지표", "/metrics", http.StatusOK, "", "healthpanel_panel_renders_total"},
		{"Swagger 문서", "/swagger/doc.json", http.StatusOK, "", `"title": "Health Panel API"`},
	}

	// /metrics에 렌더링 지표가 나타나도록 먼저 한 번 렌더링
	require.Equal(t, http.StatusOK, serveRequest(e, http.MethodGet, "/panel", nil).Code)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveRequest(e, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get(echo.HeaderContentType))
			}
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRoutes_Errors(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, nil)

	t.Run("없는 경로는 404 JSON", func(t *testing.T) {
		rec := serveRequest(e, http.MethodGet, "/unknown", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int64(http.StatusNotFound), gjson.Get(rec.Body.String(), "result_code").Int())
		assert.Equal(t, constants.ErrMsgNotFound, gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("허용되지 않은 메서드는 405 JSON", func(t *testing.T) {
		rec := serveRequest(e, http.MethodPost, "/panel", nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, constants.ErrMsgMethodNotAllowed, gjson.Get(rec.Body.String(), "message").String())
	})
}

// =============================================================================
// Middleware Chain Tests
// =============================================================================

func TestMiddlewareChain_Headers(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, nil)

	rec := serveRequest(e, http.MethodGet, "/panel", map[string]string{
		echo.HeaderOrigin: "https://status.example.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "TLS가 아니면 HSTS를 보내지 않습니다")
}

func TestMiddlewareChain_HSTS(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, func(cfg *HTTPServerConfig) { cfg.EnableHSTS = true })

	// Secure 미들웨어는 TLS 요청이거나 X-Forwarded-Proto가 https일 때만 HSTS를 추가
	rec := serveRequest(e, http.MethodGet, "/panel", map[string]string{
		echo.HeaderXForwardedProto: "https",
	})

	assert.Contains(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "max-age=31536000")
}

func TestMiddlewareChain_RateLimit(t *testing.T) {
	t.Parallel()

	e, m := newTestServer(t, func(cfg *HTTPServerConfig) {
		cfg.RequestsPerSecond = 1
		cfg.Burst = 2
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serveRequest(e, http.MethodGet, "/health", nil).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	metricsBody := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsBody, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metricsBody.Body.String(), "healthpanel_rate_limit_rejections_total 1")
	assert.Contains(t, metricsBody.Body.String(), `healthpanel_http_requests_total{code="429",method="GET",route="/health"} 1`)
}
