package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/darkkaiser/health-panel/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "health-panel", config.AppName)
	assert.Equal(t, "health-panel.json", config.DefaultFilename)
	assert.Contains(t, banner, "%s", "배너에는 버전이 들어갈 자리가 있어야 합니다")
	assert.Equal(t, 1, strings.Count(banner, "%"), "배너에는 다른 포맷 지시자가 없어야 합니다")
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{"기본값", nil, config.DefaultFilename, false},
		{"경로 지정", []string{"-config", "/etc/health-panel/panel.json"}, "/etc/health-panel/panel.json", false},
		{"= 형식", []string{"-config=local.json"}, "local.json", false},
		{"알 수 없는 플래그", []string{"-port", "80"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := parseFlags(tt.args, &out)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, out.String(), "-config", "사용법이 출력되어야 합니다")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
