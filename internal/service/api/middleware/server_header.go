package middleware

import "github.com/labstack/echo/v4"

// ServerHeaderRemover 응답에서 Server 헤더를 제거하여 서버 구현 정보가 노출되지 않도록 합니다.
func ServerHeaderRemover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Before(func() {
				c.Response().Header().Del(echo.HeaderServer)
			})
			return next(c)
		}
	}
}
