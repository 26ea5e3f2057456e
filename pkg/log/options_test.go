package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildOpts func(t *testing.T) Options
		errorMsg  string
	}{
		{
			name:      "기본 값",
			buildOpts: func(t *testing.T) Options { return Options{Name: "health-panel"} },
		},
		{
			name:      "유효한 디렉토리",
			buildOpts: func(t *testing.T) Options { return Options{Name: "health-panel", Dir: t.TempDir()} },
		},
		{
			name:      "Name 누락",
			buildOpts: func(t *testing.T) Options { return Options{} },
			errorMsg:  "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name: "디렉토리 경로가 파일",
			buildOpts: func(t *testing.T) Options {
				path := filepath.Join(t.TempDir(), "conflict")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
				return Options{Name: "health-panel", Dir: path}
			},
			errorMsg: "이미 파일로 존재합니다",
		},
		{
			name:      "음수 MaxAge",
			buildOpts: func(t *testing.T) Options { return Options{Name: "health-panel", MaxAge: -1} },
			errorMsg:  "MaxAge",
		},
		{
			name:      "음수 MaxSizeMB",
			buildOpts: func(t *testing.T) Options { return Options{Name: "health-panel", MaxSizeMB: -1} },
			errorMsg:  "MaxSizeMB",
		},
		{
			name:      "음수 MaxBackups",
			buildOpts: func(t *testing.T) Options { return Options{Name: "health-panel", MaxBackups: -1} },
			errorMsg:  "MaxBackups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.buildOpts(t)
			err := opts.Validate()

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSetup_InvalidOptions(t *testing.T) {
	t.Parallel()

	// 검증 실패는 전역 Logger를 건드리기 전에 반환되어야 합니다.
	c, err := setup(Options{})

	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "유효하지 않은 로그 설정")
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("health-panel")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("health-panel")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.Equal(t, callerPathPrefix, dev.CallerPathPrefix)
}
