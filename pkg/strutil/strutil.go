// Package strutil 문자열 처리 유틸리티 함수들을 제공합니다.
package strutil

import "strings"

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  Blockchain   RPC " -> "Blockchain RPC"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MaskSensitiveData 로그에 남길 민감한 값을 마스킹합니다.
//
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 표시
//   - 그 외: 앞 4자와 뒤 4자만 표시
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
