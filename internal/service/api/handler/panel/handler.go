// Package panel 상태 패널 엔드포인트 핸들러를 제공합니다.
//
// 같은 패널 데이터를 세 가지 형태로 제공합니다.
//
//   - GET /             : 패널을 담은 HTML 문서
//   - GET /panel        : 다른 페이지에 삽입할 수 있는 패널 HTML 조각
//   - GET /api/v1/panel : 패널 JSON
package panel

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/panel/render"
	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	"github.com/darkkaiser/health-panel/internal/service/api/httputil"
	model "github.com/darkkaiser/health-panel/internal/service/api/model/panel"
	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/labstack/echo/v4"
)

// PanelSource 현재 패널 데이터를 제공합니다.
type PanelSource interface {
	Snapshot() panel.Data
}

// RenderObserver 렌더링 결과를 기록합니다.
type RenderObserver interface {
	ObserveRender(template string, err error)
}

// Handler 상태 패널 핸들러
//
// HTML 렌더링은 echo.Context.Render를 통해 Echo에 등록된 Renderer로 위임합니다.
type Handler struct {
	source   PanelSource
	observer RenderObserver

	cacheControl string
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(source PanelSource, observer RenderObserver) *Handler {
	if source == nil {
		panic(constants.PanicMsgPanelStoreRequired)
	}
	if observer == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	return &Handler{
		source:   source,
		observer: observer,

		cacheControl: "public, max-age=" + strconv.Itoa(constants.DefaultPanelCacheMaxAge),
	}
}

// PageHandler godoc
// @Summary 상태 패널 페이지
// @Description 상태 패널 하나를 담은 HTML 문서를 반환합니다.
// @Tags Panel
// @Produce html
// @Success 200 {string} string "HTML 문서"
// @Failure 500 {object} response.ErrorResponse "렌더링 실패"
// @Router / [get]
func (h *Handler) PageHandler(c echo.Context) error {
	return h.render(c, render.TemplatePage)
}

// FragmentHandler godoc
// @Summary 상태 패널 조각
// @Description 다른 페이지에 삽입할 수 있도록 패널 section 요소만 반환합니다.
// @Tags Panel
// @Produce html
// @Success 200 {string} string "HTML 조각"
// @Failure 500 {object} response.ErrorResponse "렌더링 실패"
// @Router /panel [get]
func (h *Handler) FragmentHandler(c echo.Context) error {
	return h.render(c, render.TemplatePanel)
}

func (h *Handler) render(c echo.Context, name string) error {
	view := panel.NewView(h.source.Snapshot())

	c.Response().Header().Set(echo.HeaderCacheControl, h.cacheControl)

	err := c.Render(http.StatusOK, name, view)
	h.observer.ObserveRender(name, err)

	fields := applog.Fields{
		"template": name,
		"services": len(view.Rows),
		"path":     c.Request().URL.Path,
	}

	if err != nil {
		fields["error"] = err
		applog.WithComponentAndFields(constants.ComponentHandler, fields).Error(constants.LogMsgPanelRenderFailed)

		// 실패한 응답이 캐시되지 않도록 제거
		c.Response().Header().Del(echo.HeaderCacheControl)

		return httputil.NewInternalServerError(constants.ErrMsgPanelRenderFailed)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, fields).Debug(constants.LogMsgPanelRendered)

	return nil
}

// JSONHandler godoc
// @Summary 상태 패널 JSON
// @Description HTML 패널과 같은 값을 JSON으로 반환합니다.
// @Description 서비스 목록은 표시 순서를 유지하며, 상태 배지는 서비스별 가동률과 무관하게 항상 Operational입니다.
// @Tags Panel
// @Produce json
// @Success 200 {object} model.PanelResponse "패널 데이터"
// @Router /api/v1/panel [get]
func (h *Handler) JSONHandler(c echo.Context) error {
	data := h.source.Snapshot()

	c.Response().Header().Set(echo.HeaderCacheControl, h.cacheControl)

	return c.JSON(http.StatusOK, newPanelResponse(data, panel.NewView(data)))
}

func newPanelResponse(d panel.Data, v panel.View) model.PanelResponse {
	services := make([]model.Service, 0, len(d.Services))
	for i, s := range d.Services {
		services = append(services, model.Service{
			Name:             s.Name,
			UptimePercentage: s.UptimePercentage,
			Latency:          s.Latency,
			Caption:          v.Rows[i].Caption,
			Status:           v.Rows[i].Status,
		})
	}

	resp := model.PanelResponse{
		Title:    v.Title,
		Subtitle: v.Subtitle,
		Aggregate: model.Aggregate{
			Health:    d.AggregateHealth,
			Label:     v.Ring.Label,
			DashArray: v.Ring.DashArray,
		},
		Services: services,
		Overall: model.Overall{
			Label:    v.Footer.Label,
			Status:   v.Footer.Status,
			BarWidth: v.Footer.BarWidth,
		},
	}

	if v.Overlay != nil {
		resp.Overlay = &model.Overlay{
			URL: v.Overlay.URL,
			Alt: v.Overlay.Alt,
		}
	}

	return resp
}
