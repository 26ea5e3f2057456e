package panel

// PanelResponse 상태 패널 JSON 응답
//
// HTML 패널과 동일한 값을 담으며, 다른 화면에서 패널을 직접 그릴 때 사용합니다.
type PanelResponse struct {
	Title    string `json:"title" example:"SYSTEM HEALTH"`
	Subtitle string `json:"subtitle" example:"Service status monitoring"`

	// 원형 지표
	Aggregate Aggregate `json:"aggregate"`

	// 서비스 목록 (표시 순서)
	Services []Service `json:"services"`

	// 하단 전체 상태
	Overall Overall `json:"overall"`

	// 장식용 오버레이 이미지 (없으면 생략)
	Overlay *Overlay `json:"overlay,omitempty"`
}

// Aggregate 전체 상태 지표
type Aggregate struct {
	// 전체 상태 퍼센트 (0~100)
	Health int `json:"health" example:"98"`
	// 화면 표시 문자열
	Label string `json:"label" example:"98%"`
	// 원형 지표 호의 stroke-dasharray
	DashArray string `json:"dash_array" example:"120 150"`
}

// Service 서비스 한 줄
type Service struct {
	Name             string `json:"name" example:"Blockchain RPC"`
	UptimePercentage string `json:"uptime_percentage" example:"100.0%"`
	Latency          string `json:"latency" example:"108ms"`
	Caption          string `json:"caption" example:"100.0% uptime • 108ms"`
	Status           string `json:"status" example:"Operational"`
}

// Overall 하단 전체 상태
type Overall struct {
	Label    string `json:"label" example:"Overall Status"`
	Status   string `json:"status" example:"All Systems Operational"`
	BarWidth string `json:"bar_width" example:"98%"`
}

// Overlay 장식용 오버레이 이미지
type Overlay struct {
	URL string `json:"url" example:"https://example.com/robot.gif"`
	Alt string `json:"alt" example:"System Robot"`
}
