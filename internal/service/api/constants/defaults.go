package constants

import "time"

// HTTP 서버 기본값 상수입니다.
const (
	// DefaultRequestTimeout 요청 하나의 최대 처리 시간입니다. 초과하면 503으로 응답합니다.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기입니다. 패널 API는 본문을 받지 않으므로 작게 유지합니다.
	DefaultMaxBodySize = "16K"

	// Slowloris 공격 등 느린 클라이언트로 인한 연결 고갈을 막기 위한 http.Server 타임아웃입니다.
	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간입니다.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultPanelCacheMaxAge 패널 응답의 Cache-Control max-age(초)입니다.
	// 설정 파일이 바뀌면 값이 달라지므로 짧게 유지합니다.
	DefaultPanelCacheMaxAge = 5
)

// SensitiveQueryParams 로그 기록 시 값을 마스킹해야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_token",
	"token",
	"password",
	"secret",
}
