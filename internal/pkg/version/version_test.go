package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Info
		want  string
	}{
		{
			name:  "버전 없음",
			input: Info{},
			want:  "unknown",
		},
		{
			name:  "버전만 존재",
			input: Info{Version: "v1.0.0"},
			want:  "v1.0.0",
		},
		{
			name: "전체 정보",
			input: Info{
				Version:     "v1.0.0",
				Commit:      "f25b8bf0123456",
				BuildNumber: "12",
				BuildDate:   "2026-01-01",
				GoVersion:   "go1.24.0",
				OS:          "linux",
				Arch:        "amd64",
				DirtyBuild:  true,
			},
			want: "v1.0.0+dirty (commit: f25b8bf, build: 12, date: 2026-01-01, go_version: go1.24.0, platform: linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.String())
		})
	}
}

func TestEnrich(t *testing.T) {
	original := readBuildInfo
	defer func() { readBuildInfo = original }()

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.9.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef1234"},
				{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	}

	bi := enrich(Info{})
	assert.Equal(t, "v0.9.0", bi.Version)
	assert.Equal(t, "abcdef1234", bi.Commit)
	assert.Equal(t, "2026-10-01T00:00:00Z", bi.BuildDate)
	assert.True(t, bi.DirtyBuild)
	assert.Equal(t, runtime.Version(), bi.GoVersion)

	injected := enrich(Info{Version: "v1.0.0", Commit: "1111111"})
	assert.Equal(t, "v1.0.0", injected.Version)
	assert.Equal(t, "1111111", injected.Commit, "주입된 커밋 해시는 덮어쓰지 않아야 합니다")

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	empty := enrich(Info{})
	assert.Equal(t, unknown, empty.Version)
	assert.Equal(t, unknown, empty.Commit)
}

func TestSetAndGet(t *testing.T) {
	previous := Get()
	defer Set(previous)

	Set(Info{Version: "v2.0.0", BuildNumber: "7"})

	got := Get()
	assert.Equal(t, "v2.0.0", got.Version)
	assert.Equal(t, "7", got.BuildNumber)
	assert.Equal(t, runtime.GOOS, got.OS)
	assert.Equal(t, "v2.0.0", got.ToMap()["version"])
}
