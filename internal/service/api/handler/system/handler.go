// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 모니터링 시스템과 운영자가 사용하는 시스템 수준의 API를 처리합니다.
package system

import (
	"io"
	"net/http"
	"time"

	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/pkg/version"
	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	"github.com/darkkaiser/health-panel/internal/service/api/model/system"
	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/labstack/echo/v4"
)

// PanelSource 현재 패널 데이터를 제공합니다.
type PanelSource interface {
	Snapshot() panel.Data
}

// PanelRenderer 패널 조각을 렌더링합니다.
type PanelRenderer interface {
	RenderPanel(w io.Writer, v panel.View) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	source   PanelSource
	renderer PanelRenderer

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(source PanelSource, renderer PanelRenderer, buildInfo version.Info) *Handler {
	if source == nil {
		panic(constants.PanicMsgPanelStoreRequired)
	}
	if renderer == nil {
		panic(constants.PanicMsgRendererRequired)
	}

	return &Handler{
		source:   source,
		renderer: renderer,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 내부 의존성의 상태를 확인합니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 의존성별 상태 (panel_data, panel_renderer)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	data := h.source.Snapshot()

	deps := map[string]system.DependencyStatus{
		constants.DependencyPanelData:     checkPanelData(data),
		constants.DependencyPanelRenderer: h.checkRenderer(data),
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

func checkPanelData(d panel.Data) system.DependencyStatus {
	if len(d.Services) == 0 {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusNoServices,
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
}

// checkRenderer 현재 데이터로 패널 조각을 실제로 렌더링해 보고 결과를 버립니다.
func (h *Handler) checkRenderer(d panel.Data) system.DependencyStatus {
	if err := h.renderer.RenderPanel(io.Discard, panel.NewView(d)); err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전과 실행 플랫폼을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}
