// Package middleware 상태 패널 서버의 Echo 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 스택 트레이스 로깅
//   - HTTPLogger: HTTP 요청/응답 로깅 (민감한 쿼리 파라미터 마스킹)
//   - Metrics: 요청 수와 처리 시간을 Prometheus 지표로 기록
//   - RateLimiting: IP 기반 요청 속도 제한
//   - ServerHeaderRemover: Server 헤더 제거
//
// Logger 타입은 Echo 로거를 애플리케이션 로거(logrus)로 연결하는 어댑터입니다.
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(20, 40, nil))
package middleware
