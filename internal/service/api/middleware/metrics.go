package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute 등록된 라우트와 일치하지 않는 요청의 route 라벨 값입니다.
// 임의의 경로가 라벨에 그대로 기록되어 지표 카디널리티가 늘어나는 것을 막습니다.
const unmatchedRoute = "unmatched"

// Metrics 요청 수와 처리 시간을 Prometheus 지표로 기록하는 미들웨어를 반환합니다.
//
// route 라벨에는 실제 요청 경로가 아닌 라우트 패턴(c.Path())이 기록됩니다.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			m.ObserveRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))

			return err
		}
	}
}

// statusOf 응답될 상태 코드를 구합니다.
// 에러는 아직 에러 핸들러가 응답을 쓰기 전이므로 에러에서 상태 코드를 꺼냅니다.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
