// Package metrics 상태 패널 서버의 Prometheus 지표를 수집합니다.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "healthpanel"

// 지표 라벨 값입니다.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics 서버에서 사용하는 모든 Prometheus 지표를 보관합니다.
//
// 인스턴스마다 별도의 Registry를 사용하므로 여러 인스턴스를 만들어도 등록 충돌이 발생하지 않습니다.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal            *prometheus.CounterVec
	RequestDuration          *prometheus.HistogramVec
	RendersTotal             *prometheus.CounterVec
	ConfigReloadsTotal       *prometheus.CounterVec
	RateLimitRejectionsTotal prometheus.Counter
	PanelServices            prometheus.Gauge
}

// New 지표를 생성하고 전용 Registry에 등록합니다.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panel_renders_total",
				Help:      "Total number of panel renders by template and result.",
			},
			[]string{"template", "result"},
		),
		ConfigReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of configuration reloads by result.",
			},
			[]string{"result"},
		),
		RateLimitRejectionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_rejections_total",
				Help:      "Total number of requests rejected by rate limiting.",
			},
		),
		PanelServices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "panel_services",
				Help:      "Number of services currently shown on the panel.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.RendersTotal,
		m.ConfigReloadsTotal,
		m.RateLimitRejectionsTotal,
		m.PanelServices,
	)

	return m
}

// Registry 지표가 등록된 Registry를 반환합니다.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest HTTP 요청 하나의 처리 결과를 기록합니다.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveRender 패널 렌더링 결과를 기록합니다.
func (m *Metrics) ObserveRender(template string, err error) {
	m.RendersTotal.WithLabelValues(template, resultOf(err)).Inc()
}

// ObserveConfigReload 설정 파일 재적재 결과를 기록합니다.
func (m *Metrics) ObserveConfigReload(err error) {
	m.ConfigReloadsTotal.WithLabelValues(resultOf(err)).Inc()
}

// IncRateLimitRejections 요청 제한으로 거부된 요청 수를 증가시킵니다.
func (m *Metrics) IncRateLimitRejections() {
	m.RateLimitRejectionsTotal.Inc()
}

// SetPanelServices 현재 패널에 표시되는 서비스 수를 설정합니다.
func (m *Metrics) SetPanelServices(count int) {
	m.PanelServices.Set(float64(count))
}

// Handler Prometheus 텍스트 형식으로 지표를 노출하는 http.Handler를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func resultOf(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
