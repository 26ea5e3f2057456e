package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 구성 옵션입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자
	Dir   string // 로그 디렉토리 (기본값: "logs")
	Level Level  // 로그 레벨 (0이면 Info)

	MaxAge     int // 보관 기간 (일, 0: 삭제 안 함)
	MaxSizeMB  int // 파일 최대 크기 (MB, 0: 기본값 100MB)
	MaxBackups int // 백업 파일 최대 개수 (0: 기본값 20개)

	EnableCriticalLog bool // ERROR 이상을 별도 파일(*.critical.log)로도 기록
	EnableVerboseLog  bool // DEBUG 이하를 메인 파일 대신 별도 파일(*.verbose.log)로 기록
	EnableConsoleLog  bool // 모든 레벨을 표준 출력으로도 기록

	ReportCaller     bool   // 호출 위치(함수, 줄 번호) 기록 여부
	CallerPathPrefix string // 호출 위치 표시 시 생략할 함수 경로 접두사
}

// Validate 옵션 값의 유효성을 검사합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
