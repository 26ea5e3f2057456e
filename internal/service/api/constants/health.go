package constants

// 헬스체크 상태 상수입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyPanelRenderer 의존성 ID: 패널 렌더러
	DependencyPanelRenderer = "panel_renderer"

	// DependencyPanelData 의존성 ID: 패널 데이터 저장소
	DependencyPanelData = "panel_data"

	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotInitialized = "초기화되지 않음"
	MsgDepStatusNoServices     = "표시할 서비스가 없습니다"
)
