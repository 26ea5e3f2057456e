package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue Counter의 현재 값을 읽습니다.
func counterValue(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	return m.Gauge.GetValue()
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		a := New()
		b := New()
		assert.NotSame(t, a.Registry(), b.Registry())
	}, "인스턴스마다 별도의 Registry를 사용해야 합니다")
}

func TestMetrics_Observe(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveRequest(http.MethodGet, "/panel", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/panel", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/panel", http.StatusInternalServerError, time.Millisecond)
	assert.Equal(t, 2.0, counterValue(t, m.RequestsTotal.WithLabelValues(http.MethodGet, "/panel", "200")))
	assert.Equal(t, 1.0, counterValue(t, m.RequestsTotal.WithLabelValues(http.MethodGet, "/panel", "500")))

	m.ObserveRender("panel", nil)
	m.ObserveRender("panel", errors.New("boom"))
	assert.Equal(t, 1.0, counterValue(t, m.RendersTotal.WithLabelValues("panel", ResultSuccess)))
	assert.Equal(t, 1.0, counterValue(t, m.RendersTotal.WithLabelValues("panel", ResultFailure)))

	m.ObserveConfigReload(nil)
	assert.Equal(t, 1.0, counterValue(t, m.ConfigReloadsTotal.WithLabelValues(ResultSuccess)))

	m.IncRateLimitRejections()
	assert.Equal(t, 1.0, counterValue(t, m.RateLimitRejectionsTotal))

	m.SetPanelServices(4)
	assert.Equal(t, 4.0, counterValue(t, m.PanelServices))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRender("page", nil)
	m.IncRateLimitRejections()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `healthpanel_panel_renders_total{result="success",template="page"} 1`)
	assert.Contains(t, body, "healthpanel_rate_limit_rejections_total 1")
	assert.Contains(t, body, "go_goroutines")
}
