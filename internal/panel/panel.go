// Package panel 시스템 상태 패널의 데이터 모델과 렌더링용 뷰 모델을 제공합니다.
//
// 패널에 표시되는 모든 값은 Data로 주입되며, 별도의 값이 주어지지 않으면 DefaultData()가 사용됩니다.
// 전체 상태 지표(AggregateHealth)와 상태 배지는 서비스별 값에서 계산되지 않고 주어진 그대로 표시됩니다.
package panel

// ServiceStatus 패널의 서비스 한 줄에 표시되는 값입니다. 모든 값은 표시용 문자열입니다.
type ServiceStatus struct {
	Name             string `json:"name"`
	UptimePercentage string `json:"uptime_percentage"`
	Latency          string `json:"latency"`
}

// Data 패널 렌더링에 필요한 입력 데이터입니다.
//
// 렌더링 중에는 변경되지 않아야 하며, Store를 통해 공유할 때는 Clone()으로 복사본을 주고받습니다.
type Data struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Services []ServiceStatus `json:"services"`

	// AggregateHealth 원형 지표와 하단 진행 막대에 표시되는 전체 상태 퍼센트 (0~100)
	AggregateHealth int `json:"aggregate_health"`

	OverallStatusLabel string `json:"overall_status_label"`
	OverallStatus      string `json:"overall_status"`

	OverlayImageURL string `json:"overlay_image_url"`
	OverlayImageAlt string `json:"overlay_image_alt"`
}

// Clone 서비스 목록까지 복사한 독립적인 Data를 반환합니다.
func (d Data) Clone() Data {
	if d.Services != nil {
		services := make([]ServiceStatus, len(d.Services))
		copy(services, d.Services)
		d.Services = services
	}
	return d
}
