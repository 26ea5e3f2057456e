/*
Package validation 설정 파일과 API 입력 값의 유효성을 검사하는 함수들을 제공합니다.

주요 기능:

  - CORS Origin, 포트, 호스트명 검증
  - 파일 경로 검증 (TLS 인증서 등)
  - 패널 표시 문자열 검증 (가동률 "99.4%", 지연 시간 "108ms")
  - 이미지 URL 검증

모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며, 상태를 갖지 않습니다.
*/
package validation
