package config

import (
	"fmt"

	"github.com/darkkaiser/health-panel/internal/panel"
	apperrors "github.com/darkkaiser/health-panel/internal/pkg/errors"
	"github.com/darkkaiser/health-panel/pkg/strutil"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultListenPort HTTP 서버의 기본 포트입니다.
	DefaultListenPort = 8080

	// DefaultRequestsPerSecond IP별 초당 허용 요청 수의 기본값입니다.
	DefaultRequestsPerSecond = 20

	// DefaultBurst IP별 순간 최대 요청 수의 기본값입니다.
	DefaultBurst = 40
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	Panel      PanelConfig      `json:"panel"`
}

// Default 설정 파일에 값이 없을 때 사용하는 기본 설정을 반환합니다.
// 패널 기본값은 panel.DefaultData()와 동일합니다.
func Default() AppConfig {
	return AppConfig{
		HTTPServer: HTTPServerConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRequestsPerSecond,
				Burst:             DefaultBurst,
			},
		},
		Panel: NewPanelConfig(panel.DefaultData()),
	}
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTPServer.validate(v); err != nil {
		return err
	}

	return c.Panel.validate(v)
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되는 설정 준수 여부를 진단하고 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	if c.Debug {
		warnings = append(warnings, "디버그 모드가 활성화되어 있습니다. 운영 환경에서는 debug 옵션을 비활성화하세요")
	}

	return warnings
}

// HTTPServerConfig 웹 서버의 포트, TLS, CORS, 요청 제한 설정
type HTTPServerConfig struct {
	ListenPort  int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool            `json:"tls_server"`
	TLSCertFile string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	CORS        CORSConfig      `json:"cors"`
	RateLimit   RateLimitConfig `json:"rate_limit"`
}

func (c *HTTPServerConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "HTTP 서버", "ListenPort", "TLSCertFile", "TLSKeyFile"); err != nil {
		return err
	}

	if err := c.CORS.validate(v); err != nil {
		return err
	}

	return checkStruct(v, c.RateLimit, "요청 제한(rate_limit)")
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(v, c, "CORS")
}

// RateLimitConfig IP별 요청 속도 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"gtefield=RequestsPerSecond"`
}

// PanelConfig 상태 패널에 표시할 데이터 설정
type PanelConfig struct {
	Title              string          `json:"title" validate:"required"`
	Subtitle           string          `json:"subtitle"`
	Services           []ServiceConfig `json:"services" validate:"min=1,unique=Name,dive"`
	AggregateHealth    int             `json:"aggregate_health" validate:"min=0,max=100"`
	OverallStatusLabel string          `json:"overall_status_label"`
	OverallStatus      string          `json:"overall_status" validate:"required"`
	OverlayImageURL    string          `json:"overlay_image_url" validate:"image_url"`
	OverlayImageAlt    string          `json:"overlay_image_alt"`
}

// ServiceConfig 패널의 서비스 한 줄에 대한 설정
type ServiceConfig struct {
	Name             string `json:"name" validate:"required"`
	UptimePercentage string `json:"uptime_percentage" validate:"percent_text"`
	Latency          string `json:"latency" validate:"latency_text"`
}

// NewPanelConfig 패널 데이터를 설정 구조체로 변환합니다.
func NewPanelConfig(d panel.Data) PanelConfig {
	services := make([]ServiceConfig, 0, len(d.Services))
	for _, s := range d.Services {
		services = append(services, ServiceConfig{
			Name:             s.Name,
			UptimePercentage: s.UptimePercentage,
			Latency:          s.Latency,
		})
	}

	return PanelConfig{
		Title:              d.Title,
		Subtitle:           d.Subtitle,
		Services:           services,
		AggregateHealth:    d.AggregateHealth,
		OverallStatusLabel: d.OverallStatusLabel,
		OverallStatus:      d.OverallStatus,
		OverlayImageURL:    d.OverlayImageURL,
		OverlayImageAlt:    d.OverlayImageAlt,
	}
}

// ToData 설정 값을 렌더링에 사용할 패널 데이터로 변환합니다. 서비스명의 불필요한 공백은 정리됩니다.
func (c *PanelConfig) ToData() panel.Data {
	services := make([]panel.ServiceStatus, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, panel.ServiceStatus{
			Name:             strutil.NormalizeSpaces(s.Name),
			UptimePercentage: s.UptimePercentage,
			Latency:          s.Latency,
		})
	}

	return panel.Data{
		Title:              c.Title,
		Subtitle:           c.Subtitle,
		Services:           services,
		AggregateHealth:    c.AggregateHealth,
		OverallStatusLabel: c.OverallStatusLabel,
		OverallStatus:      c.OverallStatus,
		OverlayImageURL:    c.OverlayImageURL,
		OverlayImageAlt:    c.OverlayImageAlt,
	}
}

func (c *PanelConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "패널(panel)")
}
