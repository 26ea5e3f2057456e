package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/health-panel/internal/panel"
	apperrors "github.com/darkkaiser/health-panel/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig 임시 디렉토리에 설정 파일을 만들고 경로를 반환합니다.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoadWithFile_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultListenPort, cfg.HTTPServer.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.HTTPServer.CORS.AllowOrigins)
	assert.Equal(t, DefaultRequestsPerSecond, cfg.HTTPServer.RateLimit.RequestsPerSecond)
	assert.Equal(t, DefaultBurst, cfg.HTTPServer.RateLimit.Burst)
	assert.Equal(t, panel.DefaultData(), cfg.Panel.ToData(), "설정이 없으면 기본 패널 데이터와 동일해야 합니다")
}

func TestLoadWithFile_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(writeConfig(t, `{
		"debug": true,
		"http_server": {
			"listen_port": 9090,
			"cors": { "allow_origins": ["https://status.example.com"] }
		},
		"panel": {
			"title": "NODE HEALTH",
			"services": [
				{ "name": "  Indexer  ", "uptime_percentage": "97.5%", "latency": "310ms" }
			],
			"aggregate_health": 75
		}
	}`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9090, cfg.HTTPServer.ListenPort)
	assert.Equal(t, []string{"https://status.example.com"}, cfg.HTTPServer.CORS.AllowOrigins)
	assert.Equal(t, DefaultBurst, cfg.HTTPServer.RateLimit.Burst, "파일에 없는 값은 기본값을 유지해야 합니다")

	data := cfg.Panel.ToData()
	assert.Equal(t, "NODE HEALTH", data.Title)
	assert.Equal(t, "Service status monitoring", data.Subtitle)
	assert.Equal(t, 75, data.AggregateHealth)
	require.Len(t, data.Services, 1)
	assert.Equal(t, panel.ServiceStatus{Name: "Indexer", UptimePercentage: "97.5%", Latency: "310ms"}, data.Services[0])
}

func TestLoadWithFile_EnvOverrides(t *testing.T) {
	t.Setenv("HEALTH_PANEL_HTTP_SERVER__LISTEN_PORT", "18080")
	t.Setenv("HEALTH_PANEL_PANEL__OVERALL_STATUS", "Degraded Performance")

	cfg, err := LoadWithFile(writeConfig(t, `{ "http_server": { "listen_port": 9090 } }`))
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.HTTPServer.ListenPort, "환경 변수가 파일보다 우선해야 합니다")
	assert.Equal(t, "Degraded Performance", cfg.Panel.OverallStatus)
}

func TestLoadWithFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("파일 없음", func(t *testing.T) {
		_, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		_, err := LoadWithFile(writeConfig(t, `{ "debug": `))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})

	t.Run("정의되지 않은 키", func(t *testing.T) {
		_, err := LoadWithFile(writeConfig(t, `{ "http_server": { "listen_prot": 8080 } }`))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestLoadWithFile_Validation(t *testing.T) {
	t.Parallel()

	certFile := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0600))

	tests := []struct {
		name     string
		content  string
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{
			name:     "포트 범위 초과",
			content:  `{ "http_server": { "listen_port": 70000 } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "listen_port",
		},
		{
			name:     "TLS 인증서 파일 누락",
			content:  `{ "http_server": { "tls_server": true } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "tls_cert_file",
		},
		{
			name:     "TLS 키 파일 없음",
			content:  `{ "http_server": { "tls_server": true, "tls_cert_file": "` + filepath.ToSlash(certFile) + `", "tls_key_file": "/nonexistent/key.pem" } }`,
			wantType: apperrors.NotFound,
			wantMsg:  "tls_key_file",
		},
		{
			name:     "CORS 와일드카드 혼용",
			content:  `{ "http_server": { "cors": { "allow_origins": ["*", "https://example.com"] } } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "와일드카드",
		},
		{
			name:     "CORS 목록 비어있음",
			content:  `{ "http_server": { "cors": { "allow_origins": [] } } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "allow_origins",
		},
		{
			name:     "잘못된 CORS Origin",
			content:  `{ "http_server": { "cors": { "allow_origins": ["example.com"] } } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "CORS Origin 형식",
		},
		{
			name:     "burst가 초당 요청 수보다 작음",
			content:  `{ "http_server": { "rate_limit": { "requests_per_second": 50, "burst": 10 } } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "burst",
		},
		{
			name:     "서비스 목록 비어있음",
			content:  `{ "panel": { "services": [] } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "최소 1개",
		},
		{
			name:     "서비스명 중복",
			content:  `{ "panel": { "services": [{ "name": "A", "uptime_percentage": "1%", "latency": "1ms" }, { "name": "A", "uptime_percentage": "2%", "latency": "2ms" }] } }`,
			wantType: apperrors.Conflict,
			wantMsg:  "중복된 서비스명",
		},
		{
			name:     "서비스명 누락",
			content:  `{ "panel": { "services": [{ "uptime_percentage": "1%", "latency": "1ms" }] } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "서비스명(name)",
		},
		{
			name:     "잘못된 가동률",
			content:  `{ "panel": { "services": [{ "name": "A", "uptime_percentage": "fast", "latency": "1ms" }] } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "uptime_percentage",
		},
		{
			name:     "잘못된 지연 시간",
			content:  `{ "panel": { "services": [{ "name": "A", "uptime_percentage": "1%", "latency": "slow" }] } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "latency",
		},
		{
			name:     "전체 상태 지표 범위 초과",
			content:  `{ "panel": { "aggregate_health": 101 } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "aggregate_health",
		},
		{
			name:     "제목 누락",
			content:  `{ "panel": { "title": "" } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "title",
		},
		{
			name:     "잘못된 오버레이 이미지 주소",
			content:  `{ "panel": { "overlay_image_url": "ftp://example.com/robot.gif" } }`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "overlay_image_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadWithFile(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput), "검증 실패는 InvalidInput으로 감싸져야 합니다")
			assert.Equal(t, tt.wantType, apperrors.UnderlyingType(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Empty(t, cfg.VerifyRecommendations())

	cfg.HTTPServer.ListenPort = 80
	cfg.Debug = true
	warnings := cfg.VerifyRecommendations()

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "port: 80")
	assert.Contains(t, warnings[1], "디버그 모드")
}

func TestNewPanelConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	pc := NewPanelConfig(panel.DefaultData())

	assert.Equal(t, panel.DefaultData(), pc.ToData())
	assert.NoError(t, pc.validate(newValidator()))
}
