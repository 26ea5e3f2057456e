package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "100.0%", "99.4%", "98%"
	percentTextRegexp = regexp.MustCompile(`^(\d{1,3})(\.\d+)?%$`)

	// "108ms", "1.2s", "850us"
	latencyTextRegexp = regexp.MustCompile(`^\d+(\.\d+)?(ns|us|µs|ms|s)$`)
)

// ValidatePercentText 가동률 표시 문자열이 0% 이상 100% 이하의 퍼센트 표기인지 검증합니다.
func ValidatePercentText(s string) error {
	m := percentTextRegexp.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("퍼센트 표기 형식이 아닙니다 (예: 99.4%%) (input=%q)", s)
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || v > 100 {
		return fmt.Errorf("퍼센트 값은 0에서 100 사이여야 합니다 (input=%q)", s)
	}

	return nil
}

// ValidateLatencyText 지연 시간 표시 문자열이 숫자와 시간 단위로 구성되었는지 검증합니다.
func ValidateLatencyText(s string) error {
	if !latencyTextRegexp.MatchString(s) {
		return fmt.Errorf("지연 시간 표기 형식이 아닙니다 (예: 108ms) (input=%q)", s)
	}
	return nil
}

// ValidateImageURL 이미지 주소가 http(s) 절대 URL 또는 '/'로 시작하는 서버 상대 경로인지 검증합니다.
// 빈 값은 이미지를 표시하지 않는 것으로 간주하여 허용합니다.
func ValidateImageURL(s string) error {
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("이미지 URL 형식이 올바르지 않습니다 (input=%q): %w", s, err)
	}

	if u.Scheme == "" {
		if !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
			return fmt.Errorf("상대 경로 이미지 URL은 '/'로 시작해야 합니다 (input=%q)", s)
		}
		return nil
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("이미지 URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", s)
	}
	if u.Host == "" {
		return fmt.Errorf("이미지 URL에 호스트가 없습니다 (input=%q)", s)
	}

	return nil
}
