package panel

import (
	"strconv"
)

// StatusOperational 모든 서비스 행의 상태 배지 문구입니다. 서비스별 가동률과 무관하게 고정됩니다.
const StatusOperational = "Operational"

// Ring 헤더 원형 지표의 SVG 형상입니다.
//
// 트랙(전체 원)과 호(부분 원) 두 개의 동심원으로 구성되며, 호의 길이는 stroke-dasharray 상수로 고정되어
// 어떤 서비스 값에도 의존하지 않습니다.
type Ring struct {
	CX          int    `json:"cx"`
	CY          int    `json:"cy"`
	R           int    `json:"r"`
	StrokeWidth int    `json:"stroke_width"`
	TrackStroke string `json:"track_stroke"`
	ArcStroke   string `json:"arc_stroke"`
	DashArray   string `json:"dash_array"`
	LineCap     string `json:"line_cap"`
	Rotation    int    `json:"rotation"`
	Label       string `json:"label"`
}

// Row 서비스 목록의 한 줄입니다.
type Row struct {
	Name    string `json:"name"`
	Caption string `json:"caption"`
	Status  string `json:"status"`
}

// Footer 하단의 전체 상태 문구와 진행 막대입니다.
type Footer struct {
	Label    string `json:"label"`
	Status   string `json:"status"`
	BarWidth string `json:"bar_width"`
}

// Overlay 패널 위에 겹쳐 표시되는 장식용 이미지입니다. 상호작용을 받지 않으며 로드 결과도 처리하지 않습니다.
type Overlay struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Opacity string `json:"opacity"`
}

// View 템플릿이 그대로 출력할 수 있도록 가공된 패널 뷰 모델입니다.
type View struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Ring     Ring     `json:"ring"`
	Rows     []Row    `json:"rows"`
	Footer   Footer   `json:"footer"`
	Overlay  *Overlay `json:"overlay,omitempty"`
}

// NewView 패널 데이터로 뷰 모델을 생성합니다. 같은 입력에 대해 항상 같은 결과를 반환하며 입력을 변경하지 않습니다.
func NewView(d Data) View {
	aggregate := FormatPercent(d.AggregateHealth)

	rows := make([]Row, 0, len(d.Services))
	for _, s := range d.Services {
		rows = append(rows, Row{
			Name:    s.Name,
			Caption: Caption(s),
			Status:  StatusOperational,
		})
	}

	v := View{
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Ring: Ring{
			CX:          28,
			CY:          28,
			R:           24,
			StrokeWidth: 4,
			TrackStroke: "rgba(255,255,255,0.1)",
			ArcStroke:   "#22c55e",
			DashArray:   "120 150",
			LineCap:     "round",
			Rotation:    -90,
			Label:       aggregate,
		},
		Rows: rows,
		Footer: Footer{
			Label:    d.OverallStatusLabel,
			Status:   d.OverallStatus,
			BarWidth: aggregate,
		},
	}

	if d.OverlayImageURL != "" {
		v.Overlay = &Overlay{
			URL:     d.OverlayImageURL,
			Alt:     d.OverlayImageAlt,
			Opacity: "0.15",
		}
	}

	return v
}

// Caption 서비스 행의 보조 문구를 반환합니다. 예: "99.4% uptime • 227ms"
func Caption(s ServiceStatus) string {
	return s.UptimePercentage + " uptime • " + s.Latency
}

// FormatPercent 0~100 범위로 제한한 정수 퍼센트를 "98%" 형태로 반환합니다.
func FormatPercent(p int) string {
	p = min(max(p, 0), 100)
	return strconv.Itoa(p) + "%"
}
