package api

import (
	"github.com/darkkaiser/health-panel/internal/service/api/handler/panel"
	"github.com/darkkaiser/health-panel/internal/service/api/handler/system"
	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 모든 라우트를 등록합니다.
//
//   - 패널: 페이지(/), 조각(/panel), JSON(/api/v1/panel)
//   - 시스템: 헬스체크(/health), 버전 정보(/version), Prometheus 지표(/metrics)
//   - API 문서: Swagger UI(/swagger/*)
func RegisterRoutes(e *echo.Echo, ph *panel.Handler, sh *system.Handler, m *metrics.Metrics) {
	registerPanelRoutes(e, ph)
	registerSystemRoutes(e, sh, m)
	registerSwaggerRoutes(e)
}

func registerPanelRoutes(e *echo.Echo, h *panel.Handler) {
	e.GET("/", h.PageHandler)
	e.GET("/panel", h.FragmentHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/panel", h.JSONHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler, m *metrics.Metrics) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그 목록만 펼친 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
