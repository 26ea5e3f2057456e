package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	"github.com/darkkaiser/health-panel/internal/service/api/model/response"
	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON으로 변환하여 응답하고, 상태 코드에 따라 Error(5xx) 또는 Warn(4xx)으로 기록합니다.
// echo.HTTPError가 아닌 에러는 내부 정보를 노출하지 않도록 500과 일반 메시지로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}
	}

	// 라우팅 단계의 에러는 한국어 메시지로 통일
	switch code {
	case http.StatusNotFound:
		message = constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		message = constants.ErrMsgMethodNotAllowed
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 상태 코드만 반환
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
