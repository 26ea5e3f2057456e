package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	"github.com/darkkaiser/health-panel/internal/service/api/httputil"
	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	appmiddleware "github.com/darkkaiser/health-panel/internal/service/api/middleware"
	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge HSTS 헤더의 max-age(초)입니다. (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS Strict-Transport-Security 헤더 전송 여부 (TLS 서버일 때만 사용)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestsPerSecond, Burst IP별 요청 제한 설정
	RequestsPerSecond int
	Burst             int

	// RequestTimeout 요청 하나의 최대 처리 시간 (0이면 기본값 30초)
	RequestTimeout time.Duration

	// Renderer c.Render에서 사용할 템플릿 렌더러
	Renderer echo.Renderer

	// Metrics 요청 지표 수집기
	Metrics *metrics.Metrics
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery: 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID: 로그에 request_id가 포함되도록 로깅보다 먼저 적용
//  3. ServerHeaderRemover: 응답에서 Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 RateLimiting, Timeout보다 먼저 적용
//  5. Metrics: 요청 수와 처리 시간 기록
//  6. RateLimiting: IP별 요청 제한 (초과 시 429)
//  7. BodyLimit: 요청 본문 크기 제한 (초과 시 413)
//  8. Timeout: 요청 처리 시간 제한 (초과 시 503)
//  9. CORS: 허용된 Origin의 GET 요청만 처리
//  10. Secure: 보안 헤더 추가
//
// 라우트는 포함되지 않으며 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	if cfg.Renderer == nil {
		panic(constants.PanicMsgRendererRequired)
	}
	if cfg.Metrics == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// StartTLS는 e.TLSServer를 사용하므로 두 서버 모두 설정
	for _, srv := range []*http.Server{e.Server, e.TLSServer} {
		srv.ReadTimeout = constants.DefaultReadTimeout
		srv.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
		srv.WriteTimeout = constants.DefaultWriteTimeout
		srv.IdleTimeout = constants.DefaultIdleTimeout
	}

	// Echo 내부 로그도 애플리케이션 로거로 기록
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Renderer = cfg.Renderer

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.ServerHeaderRemover())
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.Metrics(cfg.Metrics))
	e.Use(appmiddleware.RateLimiting(cfg.RequestsPerSecond, cfg.Burst, cfg.Metrics.IncRateLimitRejections))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
