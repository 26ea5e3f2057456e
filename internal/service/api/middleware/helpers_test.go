package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	applog "github.com/darkkaiser/health-panel/pkg/log"
	"github.com/stretchr/testify/require"
)

// logMu 전역 로거를 바꾸는 테스트끼리 겹치지 않도록 직렬화합니다.
var logMu sync.Mutex

// captureLogs 테스트 동안 전역 로거 출력을 JSON 형식으로 버퍼에 캡처합니다.
// 테스트가 끝나면 원래 설정으로 복구됩니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logMu.Lock()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	originalOut := logger.Out
	originalFormatter := logger.Formatter
	originalLevel := logger.Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
		logMu.Unlock()
	})

	return buf
}

// parseLastLogEntry 버퍼에 기록된 마지막 JSON 로그를 파싱합니다.
func parseLastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	lines := strings.Split(output, "\n")
	lastLine := lines[len(lines)-1]

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastLine), &entry), "로그 파싱 실패: %s", lastLine)

	return entry
}
