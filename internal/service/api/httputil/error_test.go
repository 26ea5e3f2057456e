package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"ErrorResponse 메시지", http.MethodGet, NewTooManyRequestsError(constants.ErrMsgTooManyRequests), http.StatusTooManyRequests, constants.ErrMsgTooManyRequests},
		{"문자열 메시지", http.MethodGet, echo.NewHTTPError(http.StatusBadRequest, "bad"), http.StatusBadRequest, "bad"},
		{"404 메시지 통일", http.MethodGet, echo.ErrNotFound, http.StatusNotFound, constants.ErrMsgNotFound},
		{"405 메시지 통일", http.MethodPost, echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, constants.ErrMsgMethodNotAllowed},
		{"일반 에러는 500", http.MethodGet, errors.New("template: boom"), http.StatusInternalServerError, constants.ErrMsgInternalServer},
		{"503", http.MethodGet, NewServiceUnavailableError(constants.ErrMsgServiceUnavailable), http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, "/panel", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, int64(tt.wantCode), gjson.Get(body, "result_code").Int())
			assert.Equal(t, tt.wantMessage, gjson.Get(body, "message").String())
			assert.NotContains(t, body, "template: boom", "내부 에러 메시지는 노출되지 않아야 합니다")
		})
	}
}

func TestErrorHandler_Head(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	ErrorHandler(NewInternalServerError("x"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_Committed(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "partial")

	ErrorHandler(NewInternalServerError("x"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
