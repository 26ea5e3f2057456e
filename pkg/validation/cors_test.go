package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr string
	}{
		{"와일드카드", "*", ""},
		{"앞뒤 공백이 있는 와일드카드", "  *  ", ""},
		{"HTTPS 도메인", "https://status.example.com", ""},
		{"포트 포함 localhost", "http://localhost:8080", ""},
		{"IPv4", "http://192.168.0.10", ""},
		{"IPv6", "http://[::1]:3000", ""},

		{"빈 문자열", "", "비어있을 수 없습니다"},
		{"후행 슬래시", "https://example.com/", "끝날 수 없습니다"},
		{"지원하지 않는 스키마", "ftp://example.com", "스키마"},
		{"경로 포함", "https://example.com/panel", "경로(Path)"},
		{"쿼리 포함", "https://example.com?x=1", "쿼리"},
		{"Fragment 포함", "https://example.com#top", "Fragment"},
		{"UserInfo 포함", "https://user:pw@example.com", "UserInfo"},
		{"포트 범위 초과", "http://localhost:70000", "포트"},
		{"호스트 누락", "http://:8080", "호스트"},
		{"숫자 TLD", "http://example.123", "TLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(8080))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		host  string
		valid bool
	}{
		{"localhost", "localhost", true},
		{"도메인", "api.example.com", true},
		{"하이픈 포함 레이블", "my-panel.example.com", true},
		{"빈 레이블", "example..com", false},
		{"하이픈으로 시작", "-example.com", false},
		{"하이픈으로 끝남", "example-.com", false},
		{"밑줄 포함", "ex_ample.com", false},
		{"긴 레이블", strings.Repeat("a", 64) + ".com", false},
		{"긴 호스트명", strings.Repeat("a.", 127) + "com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHostname(tt.host)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
