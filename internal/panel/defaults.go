package panel

const (
	DefaultTitle              = "SYSTEM HEALTH"
	DefaultSubtitle           = "Service status monitoring"
	DefaultAggregateHealth    = 98
	DefaultOverallStatusLabel = "Overall Status"
	DefaultOverallStatus      = "All Systems Operational"
	DefaultOverlayImageURL    = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/files-blob/public/assets/bot_greenprint-H9JtPdDs77kivcY7EdoYWFriVul1yT.gif"
	DefaultOverlayImageAlt    = "System Robot"
)

// DefaultData 기본 패널 데이터를 반환합니다. 호출할 때마다 새로운 값을 반환합니다.
//
// 서비스 목록의 순서는 화면 표시 순서입니다.
func DefaultData() Data {
	return Data{
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
		Services: []ServiceStatus{
			{Name: "Blockchain RPC", UptimePercentage: "100.0%", Latency: "108ms"},
			{Name: "IPFS Gateway", UptimePercentage: "99.4%", Latency: "227ms"},
			{Name: "Supabase DB", UptimePercentage: "100.0%", Latency: "59ms"},
			{Name: "Smart Contract", UptimePercentage: "100.0%", Latency: "130ms"},
		},
		AggregateHealth:    DefaultAggregateHealth,
		OverallStatusLabel: DefaultOverallStatusLabel,
		OverallStatus:      DefaultOverallStatus,
		OverlayImageURL:    DefaultOverlayImageURL,
		OverlayImageAlt:    DefaultOverlayImageAlt,
	}
}
