package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/health-panel/docs"
	"github.com/darkkaiser/health-panel/internal/config"
	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/panel/render"
	"github.com/darkkaiser/health-panel/internal/pkg/version"
	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	panelhandler "github.com/darkkaiser/health-panel/internal/service/api/handler/panel"
	"github.com/darkkaiser/health-panel/internal/service/api/handler/system"
	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 상태 패널 HTTP 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 Echo 서버를 실행하고, serviceStopCtx가 취소되면
// Graceful Shutdown(최대 5초)을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
type Service struct {
	appConfig *config.AppConfig

	store    *panel.Store
	renderer *render.Renderer
	metrics  *metrics.Metrics

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, store *panel.Store, renderer *render.Renderer, m *metrics.Metrics, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if store == nil {
		panic(constants.PanicMsgPanelStoreRequired)
	}
	if renderer == nil {
		panic(constants.PanicMsgRendererRequired)
	}
	if m == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	return &Service{
		appConfig: appConfig,

		store:    store,
		renderer: renderer,
		metrics:  m,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러를 생성하고 미들웨어와 라우트가 설정된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	httpCfg := s.appConfig.HTTPServer

	e := NewHTTPServer(HTTPServerConfig{
		Debug:             s.appConfig.Debug,
		EnableHSTS:        httpCfg.TLSServer,
		AllowOrigins:      httpCfg.CORS.AllowOrigins,
		RequestsPerSecond: httpCfg.RateLimit.RequestsPerSecond,
		Burst:             httpCfg.RateLimit.Burst,
		Renderer:          s.renderer,
		Metrics:           s.metrics,
	})

	RegisterRoutes(e,
		panelhandler.NewHandler(s.store, s.metrics),
		system.NewHandler(s.store, s.renderer, s.buildInfo),
		s.metrics,
	)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다.
// 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpCfg := s.appConfig.HTTPServer
	address := fmt.Sprintf(":%d", httpCfg.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpCfg.ListenPort,
		"tls":  httpCfg.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if httpCfg.TLSServer {
		err = e.StartTLS(address, httpCfg.TLSCertFile, httpCfg.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 원인을 기록합니다. http.ErrServerClosed는 정상적인 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPServer.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 이미 종료됨
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
