package constants

// 시스템 구동 시 필수 의존성이 누락된 경우의 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired  = "AppConfig는 필수입니다"
	PanicMsgPanelStoreRequired = "패널 Store는 필수입니다"
	PanicMsgRendererRequired   = "패널 Renderer는 필수입니다"
	PanicMsgMetricsRequired    = "Metrics는 필수입니다"
	PanicMsgObserverRequired   = "재적재 Observer는 필수입니다"

	// PanicMsgRateLimitRequestsPerSecondInvalid requestsPerSecond 설정 오류
	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	// PanicMsgRateLimitBurstInvalid burst 설정 오류
	PanicMsgRateLimitBurstInvalid = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
